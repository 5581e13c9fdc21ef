package middleware

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/calldeck/calldeck/internal/utils"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryConfig holds configuration for panic recovery middleware
type PanicRecoveryConfig struct {
	StackSize int
	Logger    *logger.ZapLogger
}

// DefaultPanicRecoveryConfig returns default configuration for panic recovery
func DefaultPanicRecoveryConfig() PanicRecoveryConfig {
	return PanicRecoveryConfig{
		StackSize: 4 << 10, // 4 KB
		Logger:    nil,
	}
}

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs the stack trace and answers with a generic 500.
func PanicRecoveryMiddleware(config PanicRecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, config)
				}
			}()

			return next(c)
		}
	}
}

// PanicRecoveryWithZapMiddleware creates panic recovery middleware with Zap logger
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	config := DefaultPanicRecoveryConfig()
	config.Logger = zapLogger
	return PanicRecoveryMiddleware(config)
}

// handlePanic handles the panic recovery, logging, and response
func handlePanic(c echo.Context, r interface{}, config PanicRecoveryConfig) {
	stackTrace := string(debug.Stack())

	method := c.Request().Method
	path := c.Request().URL.Path
	clientIP := c.RealIP()
	userAgent := c.Request().UserAgent()

	userID := "anonymous"
	if user, ok := CurrentUser(c); ok {
		userID = user.ID.Hex()
	}

	requestID := c.Response().Header().Get(RequestIDHeader)
	if requestID == "" {
		requestID = c.Request().Header.Get(RequestIDHeader)
	}

	var callerInfo string
	if pc, file, line, ok := runtime.Caller(4); ok {
		fn := runtime.FuncForPC(pc)
		if fn != nil {
			callerInfo = fmt.Sprintf("%s:%d %s", file, line, fn.Name())
		} else {
			callerInfo = fmt.Sprintf("%s:%d", file, line)
		}
	}

	config.Logger.WithFields(map[string]interface{}{
		"panic_value": r,
		"panic_type":  fmt.Sprintf("%T", r),
		"stack_trace": stackTrace,
		"caller":      callerInfo,
		"method":      method,
		"path":        path,
		"client_ip":   clientIP,
		"user_agent":  userAgent,
		"user_id":     userID,
		"request_id":  requestID,
		"component":   "panic_recovery",
	}).Error("Panic recovered")

	if !c.Response().Committed {
		_ = utils.InternalServerErrorResponse(c, "")
	}
}
