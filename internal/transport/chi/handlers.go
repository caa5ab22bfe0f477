package chi

import (
	"net/http"

	healthuc "github.com/kailas-cloud/docsgate/internal/usecase/health"
)

// HealthResponse is the liveness body.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse is the readiness body.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type handlers struct {
	readiness ReadinessChecker
}

// health handles GET /health. Liveness only; the backend is not consulted.
func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// ready handles GET /ready.
func (h *handlers) ready(w http.ResponseWriter, r *http.Request) {
	if h.readiness == nil {
		writeJSON(w, http.StatusOK, ReadyResponse{Status: string(healthuc.Healthy), Checks: map[string]string{}})
		return
	}

	report := h.readiness.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, ReadyResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}
