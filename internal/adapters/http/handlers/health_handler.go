package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

// readinessBudget caps how long a readiness probe waits on dependencies.
const readinessBudget = 3 * time.Second

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness answers 200 whenever the process can serve HTTP.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Readiness answers 200 when the course store (and the course API in remote
// mode) pass their checks and 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessBudget)
	defer cancel()

	resp, ready := dto.ToReadinessResponse(h.registry.CheckAll(ctx))
	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, r, status, resp)
}
