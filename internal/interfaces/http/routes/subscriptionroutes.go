package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/subwatch-inc/subwatch/internal/interfaces/http/handlers"
	"github.com/subwatch-inc/subwatch/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupSubscriptionRoutes configures subscription routes. The fixed
// upcoming-renewals path is registered before the :id parameter routes
// so gin does not swallow it as an identifier.
func SetupSubscriptionRoutes(v1 *gin.RouterGroup, cfg *SubscriptionRouteConfig) {
	subs := v1.Group("/subscriptions")
	subs.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subs.GET("", cfg.SubscriptionHandler.ListSubscriptions)
		subs.POST("", cfg.SubscriptionHandler.CreateSubscription)
		subs.GET("/upcoming-renewals", cfg.SubscriptionHandler.UpcomingRenewals)
		subs.GET("/user/:id", cfg.SubscriptionHandler.ListUserSubscriptions)
		subs.GET("/:id", cfg.SubscriptionHandler.GetSubscription)
		subs.PUT("/:id", cfg.SubscriptionHandler.UpdateSubscription)
		subs.PUT("/:id/cancel", cfg.SubscriptionHandler.CancelSubscription)
		subs.DELETE("/:id", cfg.SubscriptionHandler.DeleteSubscription)
	}
}
