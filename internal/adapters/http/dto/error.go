package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/registration"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail points at one offending input. Location is "body" for the
// request body as a whole, "body.<field>" for a body field and
// "path.<param>" for a URL parameter.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// sentinelStatus is checked in order; the first match wins.
var sentinelStatus = []struct {
	target error
	status int
}{
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

// pathParams are the URL parameters that can fail to parse.
var pathParams = map[string]bool{"week": true, "lesson": true}

// NewErrorResponse describes err as a problem for request r.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusOf(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var (
		failure *registration.ValidationFailure
		verr    *domain.ValidationError
	)
	if errors.As(err, &failure) {
		resp.Detail = failure.Reason
		resp.Errors = []ErrorDetail{{Location: locationOf(failure.Field.String()), Message: failure.Reason}}
	} else if errors.As(err, &verr) {
		for _, field := range slices.Sorted(maps.Keys(verr.Fields)) {
			resp.Errors = append(resp.Errors, ErrorDetail{Location: locationOf(field), Message: verr.Fields[field]})
		}
	}
	return resp
}

// WriteErrorResponse sends err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", encErr))
	}
}

// statusOf maps err to an HTTP status. A failed course generation is the
// service's own outage and reads as 503 rather than a bad gateway.
func statusOf(err error) int {
	var genErr *course.GenerationError
	if errors.As(err, &genErr) {
		return http.StatusServiceUnavailable
	}
	for _, s := range sentinelStatus {
		if errors.Is(err, s.target) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

func locationOf(field string) string {
	switch {
	case field == "body":
		return "body"
	case pathParams[field]:
		return "path." + field
	default:
		return "body." + field
	}
}
