package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/calldeck/calldeck/internal/pkg/middleware"
	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/internal/utils"
	"github.com/calldeck/calldeck/services/devices"
	"github.com/labstack/echo/v4"
)

// CallLogHandler handles HTTP requests for the call ledger, including the
// public per-device webhook.
type CallLogHandler struct {
	deviceUC devices.DeviceUC
}

// NewCallLogHandler creates a new call log handler
func NewCallLogHandler(deviceUC devices.DeviceUC) *CallLogHandler {
	return &CallLogHandler{
		deviceUC: deviceUC,
	}
}

// IngestCallLog handles webhook pushes from devices. The device identifies
// itself through its webhook path, not a session.
func (h *CallLogHandler) IngestCallLog(c echo.Context) error {
	deviceID := c.Param("deviceId")
	if deviceID == "" {
		return utils.BadRequestResponse(c, "Invalid device ID")
	}

	var push models.CallLogPush
	if err := c.Bind(&push); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	record, err := h.deviceUC.IngestCallLog(c.Request().Context(), deviceID, &push)
	if err != nil {
		logger.Error("Failed to ingest call log",
			logger.ErrorField(err),
			logger.String("device_id", deviceID),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Call log recorded successfully", record)
}

// DeviceCallLogs returns one device's ledger rows for its owner
func (h *CallLogHandler) DeviceCallLogs(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	deviceName := c.Param("deviceName")
	logs, err := h.deviceUC.DeviceCallLogs(c.Request().Context(), actor, deviceName)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if len(logs) == 0 {
		return utils.NoContentResponse(c, "No call logs found")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Call logs retrieved successfully", logs)
}

// Analytics returns the actor's call counters for the requested window
func (h *CallLogHandler) Analytics(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	query := &models.AnalyticsQuery{Filter: c.QueryParam("filter")}

	if query.Filter == models.WindowCustom {
		start, err := time.Parse(time.RFC3339, c.QueryParam("startDate"))
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid startDate")
		}
		end, err := time.Parse(time.RFC3339, c.QueryParam("endDate"))
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid endDate")
		}
		query.Start = start
		query.End = end
	}

	analytics, err := h.deviceUC.Analytics(c.Request().Context(), actor, query)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Analytics retrieved successfully", analytics)
}

// SearchCallLogs pages through the actor's ledger
func (h *CallLogHandler) SearchCallLogs(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	page, _ := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	search := c.QueryParam("search")

	result, err := h.deviceUC.SearchCallLogs(c.Request().Context(), actor, page, limit, search)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if len(result.CallLogs) == 0 {
		return utils.NoContentResponse(c, "No call logs found")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Call logs retrieved successfully", result)
}
