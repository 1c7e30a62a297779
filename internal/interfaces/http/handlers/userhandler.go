package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/subwatch-inc/subwatch/internal/application/user/usecases"
	"github.com/subwatch-inc/subwatch/internal/shared/id"
	"github.com/subwatch-inc/subwatch/internal/shared/logger"
	"github.com/subwatch-inc/subwatch/internal/shared/utils"
)

// UserHandler handles user account operations
type UserHandler struct {
	getUseCase    *usecases.GetUserUseCase
	listUseCase   *usecases.ListUsersUseCase
	updateUseCase *usecases.UpdateUserUseCase
	deleteUseCase *usecases.DeleteUserUseCase
	logger        logger.Interface
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	getUC *usecases.GetUserUseCase,
	listUC *usecases.ListUsersUseCase,
	updateUC *usecases.UpdateUserUseCase,
	deleteUC *usecases.DeleteUserUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getUseCase:    getUC,
		listUseCase:   listUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

// UpdateUserRequest represents a partial profile update. Pointers
// distinguish absent fields from zero values.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// ListUsers returns a page of registered accounts
func (h *UserHandler) ListUsers(c *gin.Context) {
	pg := utils.ParsePagination(c)
	users, total, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListUsersCommand{
		Page:     pg.Page,
		PageSize: pg.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, users, total, pg.Page, pg.PageSize)
}

// GetUser returns a single account by its public identifier
func (h *UserHandler) GetUser(c *gin.Context) {
	userSID := c.Param("id")
	if err := id.ValidatePrefix(userSID, id.PrefixUser); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID format, expected user_xxxxx")
		return
	}

	account, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetUserCommand{UserSID: userSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", account)
}

// UpdateUser updates the caller's own account
func (h *UserHandler) UpdateUser(c *gin.Context) {
	caller, ok := callerSID(c)
	if !ok {
		return
	}

	userSID := c.Param("id")
	if err := id.ValidatePrefix(userSID, id.PrefixUser); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID format, expected user_xxxxx")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	account, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		CallerSID: caller,
		UserSID:   userSID,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user updated successfully", account)
}

// DeleteUser removes the caller's own account
func (h *UserHandler) DeleteUser(c *gin.Context) {
	caller, ok := callerSID(c)
	if !ok {
		return
	}

	userSID := c.Param("id")
	if err := id.ValidatePrefix(userSID, id.PrefixUser); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID format, expected user_xxxxx")
		return
	}

	err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		CallerSID: caller,
		UserSID:   userSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
