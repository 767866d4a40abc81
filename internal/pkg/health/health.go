package health

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/arcpay/internal/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// DependencyInfo is the health of one dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse is the body of /health/detailed and a failing /ready
type HealthResponse struct {
	Status       string                    `json:"status"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Timestamp    time.Time                 `json:"timestamp"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
	Extra        map[string]interface{}    `json:"extra,omitempty"`
}

// HealthService aggregates dependency checkers
type HealthService struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
	extras   map[string]func() interface{}
}

// NewHealthService creates an empty health service
func NewHealthService() *HealthService {
	return &HealthService{
		checkers: make(map[string]HealthChecker),
		extras:   make(map[string]func() interface{}),
	}
}

// AddChecker registers checker under name
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// AddInfo registers a value rendered on the detailed endpoint, for example breaker stats
func (h *HealthService) AddInfo(name string, fn func() interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.extras[name] = fn
}

// CheckAllHealth runs every checker
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	h.mu.RLock()
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	h.mu.RUnlock()
	sort.Strings(names)

	response := HealthResponse{
		Status:       StatusHealthy,
		Timestamp:    time.Now().UTC(),
		Dependencies: make(map[string]DependencyInfo, len(names)),
	}

	for _, name := range names {
		h.mu.RLock()
		checker := h.checkers[name]
		h.mu.RUnlock()

		if err := checker.CheckHealth(ctx); err != nil {
			logger.Error("Health check failed", logger.String("dependency", name), logger.Err(err))
			response.Dependencies[name] = DependencyInfo{Status: StatusUnhealthy, Error: err.Error()}
			response.Status = StatusUnhealthy
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: StatusHealthy}
	}

	h.mu.RLock()
	if len(h.extras) > 0 {
		response.Extra = make(map[string]interface{}, len(h.extras))
		for name, fn := range h.extras {
			response.Extra[name] = fn()
		}
	}
	h.mu.RUnlock()

	return response
}

// RegisterHealthEndpoints registers /ping, /health, /health/detailed, /healthz and /ready
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, svc *HealthService) {
	ok := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now().UTC(),
		})
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"service": serviceName, "version": version})
	})
	e.GET("/health", ok)
	e.GET("/healthz", ok)

	e.GET("/health/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		response := svc.CheckAllHealth(ctx)
		response.Service = serviceName
		response.Version = version

		status := http.StatusOK
		if response.Status == StatusUnhealthy {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, response)
	})

	e.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		response := svc.CheckAllHealth(ctx)
		response.Service = serviceName
		if response.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ready", "service": serviceName})
	})
}
