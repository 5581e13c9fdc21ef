package http

import (
	"net/http"

	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/calldeck/calldeck/internal/pkg/middleware"
	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/internal/utils"
	"github.com/calldeck/calldeck/services/accounts"
	"github.com/labstack/echo/v4"
)

// AdminHandler handles HTTP requests on the elevated account surface
type AdminHandler struct {
	accountUC accounts.AccountUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(accountUC accounts.AccountUC) *AdminHandler {
	return &AdminHandler{
		accountUC: accountUC,
	}
}

// CreateAccount handles subordinate account creation requests
func (h *AdminHandler) CreateAccount(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.accountUC.CreateAccount(c.Request().Context(), actor, &req)
	if err != nil {
		logger.Error("Failed to create account",
			logger.ErrorField(err),
			logger.String("actor_id", actor.ID.Hex()),
			logger.String("role", req.Role),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created successfully", user)
}

// ListUsers returns the accounts visible to the actor
func (h *AdminHandler) ListUsers(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	users, err := h.accountUC.ListUsers(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if len(users) == 0 {
		return utils.NoContentResponse(c, "No users found")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", users)
}

// UpdateUser edits a subordinate account's name or role
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	targetID := c.Param("id")
	if targetID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.accountUC.UpdateUser(c.Request().Context(), actor, targetID, &req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", nil)
}

// ChangeUserPassword sets a new password for a subordinate account
func (h *AdminHandler) ChangeUserPassword(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	targetID := c.Param("id")
	if targetID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req models.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.accountUC.ChangeUserPassword(c.Request().Context(), actor, targetID, req.NewPassword); err != nil {
		logger.Error("Failed to change user password",
			logger.ErrorField(err),
			logger.String("actor_id", actor.ID.Hex()),
			logger.String("target_id", targetID),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}
