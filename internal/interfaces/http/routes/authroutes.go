package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/subwatch-inc/subwatch/internal/interfaces/http/handlers"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(v1 *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := v1.Group("/auth")
	{
		auth.POST("/sign-up", cfg.AuthHandler.SignUp)
		auth.POST("/sign-in", cfg.AuthHandler.SignIn)
	}
}
