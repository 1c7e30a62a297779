package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/subwatch-inc/subwatch/internal/application/subscription/usecases"
	"github.com/subwatch-inc/subwatch/internal/shared/biztime"
	"github.com/subwatch-inc/subwatch/internal/shared/constants"
	"github.com/subwatch-inc/subwatch/internal/shared/id"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
	"github.com/subwatch-inc/subwatch/internal/shared/utils"
)

// SubscriptionHandler handles subscription operations
type SubscriptionHandler struct {
	createUseCase   *usecases.CreateSubscriptionUseCase
	getUseCase      *usecases.GetSubscriptionUseCase
	updateUseCase   *usecases.UpdateSubscriptionUseCase
	cancelUseCase   *usecases.CancelSubscriptionUseCase
	deleteUseCase   *usecases.DeleteSubscriptionUseCase
	listUseCase     *usecases.ListSubscriptionsUseCase
	listUserUseCase *usecases.ListUserSubscriptionsUseCase
	upcomingUseCase *usecases.UpcomingRenewalsUseCase
	logger          logger.Interface
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(
	createUC *usecases.CreateSubscriptionUseCase,
	getUC *usecases.GetSubscriptionUseCase,
	updateUC *usecases.UpdateSubscriptionUseCase,
	cancelUC *usecases.CancelSubscriptionUseCase,
	deleteUC *usecases.DeleteSubscriptionUseCase,
	listUC *usecases.ListSubscriptionsUseCase,
	listUserUC *usecases.ListUserSubscriptionsUseCase,
	upcomingUC *usecases.UpcomingRenewalsUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createUseCase:   createUC,
		getUseCase:      getUC,
		updateUseCase:   updateUC,
		cancelUseCase:   cancelUC,
		deleteUseCase:   deleteUC,
		listUseCase:     listUC,
		listUserUseCase: listUserUC,
		upcomingUseCase: upcomingUC,
		logger:          logger,
	}
}

// CreateSubscriptionRequest represents the request to create a subscription
type CreateSubscriptionRequest struct {
	Name          string                 `json:"name" binding:"required,min=2,max=100"`
	Price         float64                `json:"price" binding:"min=0"`
	Currency      string                 `json:"currency" binding:"required,oneof=USD EUR GBP"`
	Frequency     string                 `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	Category      string                 `json:"category"`
	PaymentMethod string                 `json:"paymentMethod" binding:"required"`
	StartDate     *time.Time             `json:"startDate"`
	RenewalDate   *time.Time             `json:"renewalDate"`
	Metadata      map[string]interface{} `json:"metadata"`
}

// UpdateSubscriptionRequest represents a partial subscription update.
// Pointers distinguish absent fields from zero values.
type UpdateSubscriptionRequest struct {
	Name          *string                `json:"name" binding:"omitempty,min=2,max=100"`
	Price         *float64               `json:"price" binding:"omitempty,min=0"`
	Currency      *string                `json:"currency" binding:"omitempty,oneof=USD EUR GBP"`
	Frequency     *string                `json:"frequency" binding:"omitempty,oneof=daily weekly monthly yearly"`
	Category      *string                `json:"category"`
	PaymentMethod *string                `json:"paymentMethod"`
	Status        *string                `json:"status" binding:"omitempty,oneof=active cancelled expired"`
	RenewalDate   *time.Time             `json:"renewalDate"`
	Metadata      map[string]interface{} `json:"metadata"`
}

func callerSID(c *gin.Context) (string, bool) {
	sid, exists := c.Get(constants.ContextKeyUserSID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return "", false
	}
	return sid.(string), true
}

// CreateSubscription creates a subscription owned by the caller and
// schedules its renewal reminder workflow
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	caller, ok := callerSID(c)
	if !ok {
		return
	}

	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	startDate := biztime.NowUTC()
	if req.StartDate != nil {
		startDate = req.StartDate.UTC()
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateSubscriptionCommand{
		CallerSID:     caller,
		Name:          req.Name,
		Price:         req.Price,
		Currency:      req.Currency,
		Frequency:     req.Frequency,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		StartDate:     startDate,
		RenewalDate:   req.RenewalDate,
		Metadata:      req.Metadata,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponseWithRun(c, result.Subscription, result.RunID, "subscription created successfully")
}

// GetSubscription returns a single subscription owned by the caller
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	caller, ok := callerSID(c)
	if !ok {
		return
	}

	sid := c.Param("id")
	if err := id.ValidatePrefix(sid, id.PrefixSubscription); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription ID format, expected sub_xxxxx")
		return
	}

	sub, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetSubscriptionCommand{
		CallerSID:       caller,
		SubscriptionSID: sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", sub)
}

// UpdateSubscription merges a partial payload over the caller's subscription
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	caller, ok := callerSID(c)
	if !ok {
		return
	}

	sid := c.Param("id")
	if err := id.ValidatePrefix(sid, id.PrefixSubscription); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription ID format, expected sub_xxxxx")
		return
	}

	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update subscription", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	sub, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateSubscriptionCommand{
		CallerSID:       caller,
		SubscriptionSID: sid,
		Name:            req.Name,
		Price:           req.Price,
		Currency:        req.Currency,
		Frequency:       req.Frequency,
		Category:        req.Category,
		PaymentMethod:   req.PaymentMethod,
		Status:          req.Status,
		RenewalDate:     req.RenewalDate,
		Metadata:        req.Metadata,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription updated successfully", sub)
}

// CancelSubscription transitions the caller's subscription to cancelled
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	caller, ok := callerSID(c)
	if !ok {
		return
	}

	sid := c.Param("id")
	if err := id.ValidatePrefix(sid, id.PrefixSubscription); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription ID format, expected sub_xxxxx")
		return
	}

	sub, err := h.cancelUseCase.Execute(c.Request.Context(), usecases.CancelSubscriptionCommand{
		CallerSID:       caller,
		SubscriptionSID: sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription cancelled successfully", sub)
}

// DeleteSubscription removes the caller's subscription permanently
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	caller, ok := callerSID(c)
	if !ok {
		return
	}

	sid := c.Param("id")
	if err := id.ValidatePrefix(sid, id.PrefixSubscription); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription ID format, expected sub_xxxxx")
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteSubscriptionCommand{
		CallerSID:       caller,
		SubscriptionSID: sid,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListSubscriptions returns a page of every subscription in the system
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	if _, ok := callerSID(c); !ok {
		return
	}

	pg := utils.ParsePagination(c)
	subs, total, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListSubscriptionsCommand{
		Page:     pg.Page,
		PageSize: pg.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, subs, total, pg.Page, pg.PageSize)
}

// ListUserSubscriptions returns the subscriptions owned by the user in
// the path; only that user may call it
func (h *SubscriptionHandler) ListUserSubscriptions(c *gin.Context) {
	caller, ok := callerSID(c)
	if !ok {
		return
	}

	userSID := c.Param("id")
	if err := id.ValidatePrefix(userSID, id.PrefixUser); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID format, expected user_xxxxx")
		return
	}

	subs, err := h.listUserUseCase.Execute(c.Request.Context(), usecases.ListUserSubscriptionsCommand{
		CallerSID: caller,
		UserSID:   userSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", subs)
}

// UpcomingRenewals returns the caller's active subscriptions renewing
// within the next seven days
func (h *SubscriptionHandler) UpcomingRenewals(c *gin.Context) {
	caller, ok := callerSID(c)
	if !ok {
		return
	}

	subs, err := h.upcomingUseCase.Execute(c.Request.Context(), usecases.UpcomingRenewalsCommand{
		CallerSID: caller,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", subs)
}
