package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/calldeck/calldeck/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// GracefulServer wraps the Echo server with graceful shutdown handling
type GracefulServer struct {
	echo     *echo.Echo
	logger   *logger.ZapLogger
	port     int
	cleanups []func(context.Context) error
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int) *GracefulServer {
	return &GracefulServer{
		echo:   e,
		logger: zapLogger,
		port:   port,
	}
}

// RegisterCleanup adds a function to run during shutdown, after the HTTP
// server has stopped accepting requests.
func (s *GracefulServer) RegisterCleanup(fn func(context.Context) error) {
	s.cleanups = append(s.cleanups, fn)
}

// Start starts the server and blocks until an interrupt or SIGTERM arrives
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server and runs registered cleanups
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	for i, fn := range s.cleanups {
		if err := fn(ctx); err != nil {
			// Continue with other components even if one fails
			s.logger.Error("Error during component shutdown",
				logger.Int("component", i),
				logger.Err(err))
		}
	}

	s.logger.Info("Server shutdown completed")
	return nil
}
