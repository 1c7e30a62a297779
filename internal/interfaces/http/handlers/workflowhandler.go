package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subwatch-inc/subwatch/internal/application/workflow/usecases"
	"github.com/subwatch-inc/subwatch/internal/shared/id"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
	"github.com/subwatch-inc/subwatch/internal/shared/utils"
)

// WorkflowHandler receives reminder callbacks from the workflow scheduler
type WorkflowHandler struct {
	processUseCase *usecases.ProcessReminderUseCase
	logger         logger.Interface
}

// NewWorkflowHandler creates a new workflow handler
func NewWorkflowHandler(processUC *usecases.ProcessReminderUseCase, logger logger.Interface) *WorkflowHandler {
	return &WorkflowHandler{
		processUseCase: processUC,
		logger:         logger,
	}
}

type ReminderCallbackRequest struct {
	SubscriptionID string `json:"subscriptionId" binding:"required"`
}

// SendReminders handles one scheduled reminder delivery for a subscription
func (h *WorkflowHandler) SendReminders(c *gin.Context) {
	var req ReminderCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid workflow callback body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := id.ValidatePrefix(req.SubscriptionID, id.PrefixSubscription); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription ID format, expected sub_xxxxx")
		return
	}

	result, err := h.processUseCase.Execute(c.Request.Context(), usecases.ProcessReminderCommand{
		SubscriptionSID: req.SubscriptionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
