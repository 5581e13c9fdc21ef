package utils

import (
	"errors"
	"net/http"

	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Permission denied"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// NoContentResponse reports an explicit empty result, distinct from an
// empty success page.
func NoContentResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    []interface{}{},
	})
}

// DomainErrorResponse maps a domain error to its HTTP status. Unexpected
// errors become a generic 500; internals are never echoed to the caller.
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrValidation):
		return BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrConflict):
		return BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrUnauthorized):
		return UnauthorizedResponse(c, err.Error())
	case errors.Is(err, models.ErrPermission):
		return ForbiddenResponse(c, err.Error())
	case errors.Is(err, models.ErrNotFound):
		return NotFoundResponse(c, err.Error())
	default:
		return InternalServerErrorResponse(c, "")
	}
}
