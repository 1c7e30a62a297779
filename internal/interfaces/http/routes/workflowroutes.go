package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/subwatch-inc/subwatch/internal/interfaces/http/handlers"
)

// WorkflowRouteConfig holds dependencies for workflow callback routes.
type WorkflowRouteConfig struct {
	WorkflowHandler *handlers.WorkflowHandler
}

// SetupWorkflowRoutes configures the scheduler callback routes. These
// are not behind user auth; the scheduler authenticates with its own
// signature, not a user token.
func SetupWorkflowRoutes(v1 *gin.RouterGroup, cfg *WorkflowRouteConfig) {
	workflows := v1.Group("/workflows")
	{
		workflows.POST("/subscription/reminder", cfg.WorkflowHandler.SendReminders)
	}
}
