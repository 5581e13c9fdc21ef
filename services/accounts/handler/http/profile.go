package http

import (
	"net/http"

	"github.com/calldeck/calldeck/internal/pkg/middleware"
	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/internal/utils"
	"github.com/calldeck/calldeck/services/accounts"
	"github.com/labstack/echo/v4"
)

// ProfileHandler handles HTTP requests for the self-service account surface
type ProfileHandler struct {
	accountUC accounts.AccountUC
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(accountUC accounts.AccountUC) *ProfileHandler {
	return &ProfileHandler{
		accountUC: accountUC,
	}
}

// GetProfile returns the actor's own account record
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.accountUC.GetProfile(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile changes the actor's own name and password
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.accountUC.UpdateProfile(c.Request().Context(), actor, &req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", nil)
}

// CheckUsedPassword reports whether a candidate password was used before
func (h *ProfileHandler) CheckUsedPassword(c echo.Context) error {
	var req models.CheckUsedPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.accountUC.CheckUsedPassword(c.Request().Context(), req.Email, req.NewPassword); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password has not been used before", nil)
}
