package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/byestunting/byestunting/internal/infrastructure/monitoring/logging"
)

const readinessTimeout = 5 * time.Second

// ReadinessCheck probes one dependency. A nil return means ready.
type ReadinessCheck struct {
	Name  string
	Probe func(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	version string
	checks  []ReadinessCheck
	logger  logging.Logger
}

// NewHealthHandler wires the handler with its readiness checks.
func NewHealthHandler(version string, logger logging.Logger, checks ...ReadinessCheck) *HealthHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &HealthHandler{version: version, checks: checks, logger: logger}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// Readiness probes every registered dependency and reports 503 when any
// fails. The body names each check's state so operators can see which
// dependency is down.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	results := make(map[string]string, len(h.checks))
	healthy := true

	for _, check := range h.checks {
		if err := check.Probe(ctx); err != nil {
			h.logger.Warn("readiness check failed",
				logging.String("check", check.Name),
				logging.Err(err),
			)
			results[check.Name] = err.Error()
			healthy = false
			continue
		}
		results[check.Name] = "ok"
	}

	status := http.StatusOK
	overall := "ready"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "not ready"
	}

	writeJSON(w, status, map[string]interface{}{
		"status": overall,
		"checks": results,
	})
}
