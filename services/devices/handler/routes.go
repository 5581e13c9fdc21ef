package handler

import (
	"github.com/calldeck/calldeck/services/devices/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the HTTP handlers for the devices service
type Handler struct {
	deviceHandler  *http.DeviceHandler
	callLogHandler *http.CallLogHandler
}

// NewHandler creates and initializes all devices handlers
func NewHandler(
	deviceHandler *http.DeviceHandler,
	callLogHandler *http.CallLogHandler,
) *Handler {
	return &Handler{
		deviceHandler:  deviceHandler,
		callLogHandler: callLogHandler,
	}
}

// RegisterRoutes registers the devices routes. The webhook is public: the
// per-device path is the caller's identity.
func (h *Handler) RegisterRoutes(e *echo.Echo, session echo.MiddlewareFunc) {
	e.POST("/webhook/call-log/:deviceId", h.callLogHandler.IngestCallLog)

	adminGroup := e.Group("/admin-and-reseller", session)
	adminGroup.POST("/add-device", h.deviceHandler.RegisterDevice)
	adminGroup.GET("/devices", h.deviceHandler.ListDevices)

	userGroup := e.Group("/user", session)
	userGroup.DELETE("/delete-device/:id", h.deviceHandler.DeleteDevice)
	userGroup.GET("/device-call-logs/:deviceName", h.callLogHandler.DeviceCallLogs)
	userGroup.GET("/analytics-calls", h.callLogHandler.Analytics)
	userGroup.GET("/call-logs", h.callLogHandler.SearchCallLogs)
}
