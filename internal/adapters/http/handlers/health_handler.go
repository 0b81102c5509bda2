package handlers

import (
	"net/http"
	"slices"

	"github.com/jsamuelsen11/marketplace-core/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler serves /health/live and /health/ready.
type HealthHandler struct {
	registry ports.HealthRegistry
	optional []string
}

// NewHealthHandler reports readiness from registry. A failing check named
// in optional marks the service degraded but still ready: lifecycle
// operations keep working when, say, notification delivery is down.
func NewHealthHandler(registry ports.HealthRegistry, optional ...string) *HealthHandler {
	return &HealthHandler{registry: registry, optional: optional}
}

// Liveness always answers 200.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness answers 200 with status "ready" or "degraded", or 503
// "not_ready" when a required check fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	status, code := statusReady, http.StatusOK
	for name, err := range results {
		if err == nil {
			checks[name] = statusOK
			continue
		}
		checks[name] = err.Error()
		switch {
		case !slices.Contains(h.optional, name):
			status, code = statusNotReady, http.StatusServiceUnavailable
		case status == statusReady:
			status = statusDegraded
		}
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
