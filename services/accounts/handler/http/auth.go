package http

import (
	"net/http"
	"time"

	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/calldeck/calldeck/internal/pkg/middleware"
	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/internal/utils"
	"github.com/calldeck/calldeck/services/accounts"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles HTTP requests for registration, login and the
// password reset flow
type AuthHandler struct {
	accountUC accounts.AccountUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountUC accounts.AccountUC) *AuthHandler {
	return &AuthHandler{
		accountUC: accountUC,
	}
}

// setSessionCookie attaches the signed session token to the response.
// SameSite=None because the dashboard frontend is served from another origin.
func setSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   -1,
	})
}

// Signup handles self-service registration requests
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for signup",
			logger.ErrorField(err),
			logger.String("endpoint", "Signup"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.accountUC.Signup(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to sign up",
			logger.ErrorField(err),
			logger.String("email", req.Email),
		)
		return utils.DomainErrorResponse(c, err)
	}

	setSessionCookie(c, resp.Token, resp.ExpiresAt)
	return utils.SuccessResponse(c, http.StatusCreated, "Account created successfully", resp)
}

// Login handles credential login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.accountUC.Login(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	setSessionCookie(c, resp.Token, resp.ExpiresAt)
	return utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", resp)
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c echo.Context) error {
	clearSessionCookie(c)
	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// ForgotPassword issues a reset OTP for the email
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.accountUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		logger.Error("Failed to issue password reset OTP",
			logger.ErrorField(err),
			logger.String("email", req.Email),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent to your email", nil)
}

// ValidateOTP checks a reset OTP without consuming it
func (h *AuthHandler) ValidateOTP(c echo.Context) error {
	var req models.ValidateOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.accountUC.ValidateOTP(c.Request().Context(), req.Email, req.OTP); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP is valid", nil)
}

// ResetPassword completes the OTP reset flow
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.accountUC.ResetPassword(c.Request().Context(), &req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password reset successfully", nil)
}
