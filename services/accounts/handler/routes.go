package handler

import (
	"github.com/calldeck/calldeck/services/accounts/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the HTTP handlers for the accounts service
type Handler struct {
	authHandler    *http.AuthHandler
	adminHandler   *http.AdminHandler
	profileHandler *http.ProfileHandler
}

// NewHandler creates and initializes all accounts handlers
func NewHandler(
	authHandler *http.AuthHandler,
	adminHandler *http.AdminHandler,
	profileHandler *http.ProfileHandler,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		adminHandler:   adminHandler,
		profileHandler: profileHandler,
	}
}

// RegisterRoutes registers the accounts routes. The credential endpoints are
// public behind the rate limiter; everything else requires a session.
func (h *Handler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc, rateLimiter echo.MiddlewareFunc) {
	authGroup := e.Group("/auth", rateLimiter)
	authGroup.POST("/signup", h.authHandler.Signup)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/logout", h.authHandler.Logout)
	authGroup.POST("/forgot-password", h.authHandler.ForgotPassword)
	authGroup.POST("/validate-otp", h.authHandler.ValidateOTP)
	authGroup.POST("/reset-password", h.authHandler.ResetPassword)

	// Public so the reset form can check reuse before submitting
	e.POST("/user/check-used-password", h.profileHandler.CheckUsedPassword, rateLimiter)

	adminGroup := e.Group("/admin-and-reseller", session)
	adminGroup.POST("/add-reseller", h.adminHandler.CreateAccount)
	adminGroup.GET("/users", h.adminHandler.ListUsers)
	adminGroup.PUT("/update-user/:id", h.adminHandler.UpdateUser)
	adminGroup.PUT("/change-password/:id", h.adminHandler.ChangeUserPassword)

	userGroup := e.Group("/user", session)
	userGroup.GET("/profile", h.profileHandler.GetProfile)
	userGroup.PUT("/update-profile", h.profileHandler.UpdateProfile)
}
