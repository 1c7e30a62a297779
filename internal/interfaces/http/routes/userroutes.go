package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/subwatch-inc/subwatch/internal/interfaces/http/handlers"
	"github.com/subwatch-inc/subwatch/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures user account routes.
func SetupUserRoutes(v1 *gin.RouterGroup, cfg *UserRouteConfig) {
	users := v1.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("", cfg.UserHandler.ListUsers)
		users.GET("/:id", cfg.UserHandler.GetUser)
		users.PUT("/:id", cfg.UserHandler.UpdateUser)
		users.DELETE("/:id", cfg.UserHandler.DeleteUser)
	}
}
