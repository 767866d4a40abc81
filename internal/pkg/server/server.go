package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/arcpay/internal/pkg/logger"
)

const defaultShutdownTimeout = 30 * time.Second

type component struct {
	name  string
	close func(context.Context) error
}

// Server runs the echo server until its context ends, then shuts it down
// and closes the registered components in reverse registration order.
type Server struct {
	echo    *echo.Echo
	logger  *logger.ZapLogger
	addr    string
	timeout time.Duration

	mu         sync.Mutex
	components []component
	once       sync.Once
	shutdown   error
}

// New creates a server listening on addr. A non-positive timeout uses 30s.
func New(e *echo.Echo, zapLogger *logger.ZapLogger, addr string, timeout time.Duration) *Server {
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	return &Server{echo: e, logger: zapLogger, addr: addr, timeout: timeout}
}

// OnShutdown registers a cleanup function run after the HTTP server stops
func (s *Server) OnShutdown(name string, fn func(context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = append(s.components, component{name: name, close: fn})
}

// Run starts the server and blocks until ctx is done or the listener fails
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			_ = s.Shutdown()
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}
	return s.Shutdown()
}

// Shutdown stops the HTTP server and closes every component. Only the first call does work.
func (s *Server) Shutdown() error {
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		s.logger.Info("Shutting down HTTP server...")
		if err := s.echo.Shutdown(ctx); err != nil {
			s.logger.Error("Server forced to shutdown", logger.Err(err))
			s.shutdown = err
		}

		s.mu.Lock()
		components := append([]component(nil), s.components...)
		s.mu.Unlock()

		for i := len(components) - 1; i >= 0; i-- {
			c := components[i]
			s.logger.Info("Closing component", logger.String("component", c.name))
			if err := c.close(ctx); err != nil {
				s.logger.Error("Error during component shutdown",
					logger.String("component", c.name),
					logger.Err(err))
			}
		}
		s.logger.Info("Server exiting gracefully")
	})
	return s.shutdown
}
