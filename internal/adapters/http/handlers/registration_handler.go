package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/registration"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

// RegistrationHandler handles HTTP requests for the registration form:
// stateless validation and server-held form sessions.
type RegistrationHandler struct {
	svc ports.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler with the given service port.
func NewRegistrationHandler(svc ports.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// Validate handles POST /api/v1/registrations/validate. A rejected form is
// answered with a problem document naming the failing field.
func (h *RegistrationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.RegistrationRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	result := h.svc.Validate(r.Context(), req.ToFields())
	if err := result.Err(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ValidationResponse{Valid: true, Message: h.svc.SuccessHeadline()})
}

// OpenSession handles POST /api/v1/registrations/sessions.
func (h *RegistrationHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.OpenSession(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", r.URL.Path+"/"+s.ID)
	writeJSON(w, r, http.StatusCreated, dto.ToFormSessionResponse(s))
}

// GetSession handles GET /api/v1/registrations/sessions/{id}.
func (h *RegistrationHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToFormSessionResponse(s))
}

// SetField handles PUT /api/v1/registrations/sessions/{id}/fields/{name}.
func (h *RegistrationHandler) SetField(w http.ResponseWriter, r *http.Request) {
	name, err := registration.ParseFieldName(chi.URLParam(r, "name"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SetFieldRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	s, err := h.svc.SetField(r.Context(), chi.URLParam(r, "id"), name, *req.Value)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToFormSessionResponse(s))
}

// ResetSession handles POST /api/v1/registrations/sessions/{id}/reset.
func (h *RegistrationHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.ResetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToFormSessionResponse(s))
}

// SubmitSession handles POST /api/v1/registrations/sessions/{id}/submit.
// A rejected form is answered like Validate; the session keeps its values.
func (h *RegistrationHandler) SubmitSession(w http.ResponseWriter, r *http.Request) {
	s, result, err := h.svc.SubmitSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if err := result.Err(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToFormSessionResponse(s))
}

// CloseSession handles DELETE /api/v1/registrations/sessions/{id}.
func (h *RegistrationHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.CloseSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
