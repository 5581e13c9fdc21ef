package middleware

import (
	"time"

	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// RequestLoggerMiddleware logs every HTTP request with latency and status
func RequestLoggerMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			userID := "anonymous"
			if user, ok := CurrentUser(c); ok {
				userID = user.ID.Hex()
			}

			requestID := c.Response().Header().Get(RequestIDHeader)

			zapLogger.LogHTTPRequest(method, path, clientIP, userID, requestID, statusCode, latency, err)

			return err
		}
	}
}
