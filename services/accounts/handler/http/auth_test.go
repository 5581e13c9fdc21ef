package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/calldeck/calldeck/internal/pkg/middleware"
	"github.com/calldeck/calldeck/internal/pkg/models"
	"github.com/calldeck/calldeck/services/accounts/mocks"
)

func newAuthRequest(method, target string, body interface{}) (*http.Request, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*mocks.MockAccountUC)
		expectedStatus int
		expectCookie   bool
	}{
		{
			name: "Success",
			requestBody: models.SignupRequest{
				Name:     "Asha Rao",
				Email:    "asha@example.com",
				Password: "Str0ng#Pass",
				Role:     models.RoleUser,
			},
			mockSetup: func(mockUC *mocks.MockAccountUC) {
				mockUC.EXPECT().
					Signup(gomock.Any(), gomock.Any()).
					Return(&models.AuthResponse{
						Token:     "signed-token",
						User:      &models.User{ID: primitive.NewObjectID(), Email: "asha@example.com"},
						ExpiresAt: time.Now().Add(24 * time.Hour),
					}, nil).
					Times(1)
			},
			expectedStatus: http.StatusCreated,
			expectCookie:   true,
		},
		{
			name:        "Invalid request body",
			requestBody: "not json",
			mockSetup: func(mockUC *mocks.MockAccountUC) {
				// Bind fails before the usecase is reached
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Duplicate email",
			requestBody: models.SignupRequest{
				Name:     "Asha Rao",
				Email:    "asha@example.com",
				Password: "Str0ng#Pass",
				Role:     models.RoleUser,
			},
			mockSetup: func(mockUC *mocks.MockAccountUC) {
				mockUC.EXPECT().
					Signup(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: email already registered", models.ErrConflict)).
					Times(1)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockAccountUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewAuthHandler(mockUC)

			e := echo.New()
			req, rec := newAuthRequest(http.MethodPost, "/auth/signup", tt.requestBody)
			c := e.NewContext(req, rec)

			err := handler.Signup(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectCookie {
				cookie := sessionCookie(rec)
				assert.NotNil(t, cookie)
				assert.Equal(t, "signed-token", cookie.Value)
				assert.True(t, cookie.HttpOnly)
				assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*mocks.MockAccountUC)
		expectedStatus int
		expectCookie   bool
	}{
		{
			name: "Success",
			requestBody: models.LoginRequest{
				Email:    "asha@example.com",
				Password: "Str0ng#Pass",
			},
			mockSetup: func(mockUC *mocks.MockAccountUC) {
				mockUC.EXPECT().
					Login(gomock.Any(), gomock.Any()).
					Return(&models.AuthResponse{
						Token:     "signed-token",
						User:      &models.User{ID: primitive.NewObjectID(), Email: "asha@example.com"},
						ExpiresAt: time.Now().Add(24 * time.Hour),
					}, nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
			expectCookie:   true,
		},
		{
			name: "Wrong credentials",
			requestBody: models.LoginRequest{
				Email:    "asha@example.com",
				Password: "Wr0ng#Pass",
			},
			mockSetup: func(mockUC *mocks.MockAccountUC) {
				mockUC.EXPECT().
					Login(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)).
					Times(1)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockAccountUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewAuthHandler(mockUC)

			e := echo.New()
			req, rec := newAuthRequest(http.MethodPost, "/auth/login", tt.requestBody)
			c := e.NewContext(req, rec)

			err := handler.Login(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectCookie {
				cookie := sessionCookie(rec)
				assert.NotNil(t, cookie)
				assert.Equal(t, "signed-token", cookie.Value)
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAccountUC(ctrl)
	handler := NewAuthHandler(mockUC)

	e := echo.New()
	req, rec := newAuthRequest(http.MethodPost, "/auth/logout", nil)
	c := e.NewContext(req, rec)

	err := handler.Logout(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	assert.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*mocks.MockAccountUC)
		expectedStatus int
	}{
		{
			name:        "Success",
			requestBody: models.ForgotPasswordRequest{Email: "asha@example.com"},
			mockSetup: func(mockUC *mocks.MockAccountUC) {
				mockUC.EXPECT().
					ForgotPassword(gomock.Any(), "asha@example.com").
					Return(nil).
					Times(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Unknown email",
			requestBody: models.ForgotPasswordRequest{Email: "nobody@example.com"},
			mockSetup: func(mockUC *mocks.MockAccountUC) {
				mockUC.EXPECT().
					ForgotPassword(gomock.Any(), "nobody@example.com").
					Return(fmt.Errorf("%w: user not found", models.ErrNotFound)).
					Times(1)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockAccountUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewAuthHandler(mockUC)

			e := echo.New()
			req, rec := newAuthRequest(http.MethodPost, "/auth/forgot-password", tt.requestBody)
			c := e.NewContext(req, rec)

			err := handler.ForgotPassword(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
