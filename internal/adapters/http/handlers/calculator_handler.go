package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

// CalculatorHandler handles HTTP requests for the calculator.
type CalculatorHandler struct {
	svc ports.CalculatorService
}

// NewCalculatorHandler creates a new CalculatorHandler with the given service port.
func NewCalculatorHandler(svc ports.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{svc: svc}
}

// Calculate handles POST /api/v1/calculator.
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	op := req.Op()
	result, err := h.svc.Calculate(r.Context(), *req.Left, op, *req.Right)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCalculationResponse(*req.Left, op, *req.Right, result))
}
