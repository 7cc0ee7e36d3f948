package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is any dependency that can report its own reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlers handles health check and monitoring endpoints
type HealthHandlers struct {
	version string
	started time.Time
	checks  map[string]Pinger
}

// NewHealthHandlers creates a new health handlers instance. Nil dependencies
// are reported as "disabled" and never fail readiness.
func NewHealthHandlers(version string, db, redis, storage Pinger) *HealthHandlers {
	checks := map[string]Pinger{"database": db}
	if redis != nil {
		checks["redis"] = redis
	}
	if storage != nil {
		checks["storage"] = storage
	}
	return &HealthHandlers{version: version, started: time.Now(), checks: checks}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services,omitempty"`
	Uptime    string            `json:"uptime"`
	Version   string            `json:"version"`
}

// LivenessCheck determines if the application is running (basic liveness probe)
func (h *HealthHandlers) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, h.status("alive"))
}

// ReadinessCheck determines if the application is ready to serve traffic
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	health := h.status("ready")
	health.Services = map[string]string{"redis": "disabled", "storage": "disabled"}

	statusCode := http.StatusOK
	for name, dep := range h.checks {
		if dep == nil || dep.Ping(ctx) != nil {
			health.Services[name] = "unhealthy"
			health.Status = "not_ready"
			statusCode = http.StatusServiceUnavailable
			continue
		}
		health.Services[name] = "healthy"
	}

	return c.JSON(statusCode, health)
}

func (h *HealthHandlers) status(s string) *HealthStatus {
	return &HealthStatus{
		Status:    s,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.started).Round(time.Second).String(),
		Version:   h.version,
	}
}
