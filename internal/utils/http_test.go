package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{
			name:       "Success with map data",
			statusCode: http.StatusOK,
			message:    "Operation successful",
			data:       map[string]interface{}{"id": "123"},
		},
		{
			name:       "Created with nil data",
			statusCode: http.StatusCreated,
			message:    "Resource created",
			data:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			assert.Equal(t, tt.data, response.Data)
		})
	}
}

func TestNoContentResponse(t *testing.T) {
	c, rec := newTestContext()

	err := NoContentResponse(c, "No devices found")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response Response
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "No devices found", response.Message)
	// An explicit empty list, not an omitted field
	assert.Equal(t, []interface{}{}, response.Data)
}

func TestDomainErrorResponse(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Validation maps to 400",
			err:            fmt.Errorf("%w: name is required", models.ErrValidation),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "validation failed: name is required",
		},
		{
			name:           "Conflict maps to 400",
			err:            fmt.Errorf("%w: email already registered", models.ErrConflict),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "already exists: email already registered",
		},
		{
			name:           "Unauthorized maps to 401",
			err:            fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized),
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "unauthorized: invalid credentials",
		},
		{
			name:           "Permission maps to 403",
			err:            fmt.Errorf("%w: member cannot create accounts", models.ErrPermission),
			expectedStatus: http.StatusForbidden,
			expectedError:  "permission denied: member cannot create accounts",
		},
		{
			name:           "Not found maps to 404",
			err:            fmt.Errorf("%w: user not found", models.ErrNotFound),
			expectedStatus: http.StatusNotFound,
			expectedError:  "not found: user not found",
		},
		{
			name:           "Unexpected error maps to generic 500",
			err:            errors.New("mongo: connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := DomainErrorResponse(c, tt.err)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			var response ErrorResponse
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.False(t, response.Success)
			assert.Equal(t, tt.expectedError, response.Error)
			assert.Equal(t, tt.expectedStatus, response.Code)
		})
	}
}
