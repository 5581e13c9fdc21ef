package http

import (
	"net/http"

	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/calldeck/calldeck/internal/pkg/middleware"
	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/internal/utils"
	"github.com/calldeck/calldeck/services/devices"
	"github.com/labstack/echo/v4"
)

// DeviceHandler handles HTTP requests for the device registry
type DeviceHandler struct {
	deviceUC devices.DeviceUC
}

// NewDeviceHandler creates a new device handler
func NewDeviceHandler(deviceUC devices.DeviceUC) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: deviceUC,
	}
}

// RegisterDevice handles device registration requests
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DeviceRegistration
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), actor, &req)
	if err != nil {
		logger.Error("Failed to register device",
			logger.ErrorField(err),
			logger.String("user_id", actor.ID.Hex()),
			logger.String("device_name", req.DeviceName),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Device registered successfully", device)
}

// ListDevices returns the actor's devices with their call counters
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	views, err := h.deviceUC.ListDevices(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if len(views) == 0 {
		return utils.NoContentResponse(c, "No devices found")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Devices retrieved successfully", views)
}

// DeleteDevice soft deletes the actor's device
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	deviceID := c.Param("id")
	if deviceID == "" {
		return utils.BadRequestResponse(c, "Invalid device ID")
	}

	if err := h.deviceUC.DeleteDevice(c.Request().Context(), actor, deviceID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Device deleted successfully", nil)
}
