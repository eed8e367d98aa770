package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exercise-kit/internal/domain"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/logging"
)

// maxBodyBytes caps JSON request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

// pathInt reads a numeric chi path parameter such as {week}.
func pathInt(r *http.Request, name string) (int, error) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, domain.FieldError(name, "must be a valid integer")
	}
	return n, nil
}

// writeJSON encodes v before any header is written, so a value that cannot
// be encoded is answered with a 500 problem instead of a truncated body.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		ctx := r.Context()
		logging.FromContext(ctx).ErrorContext(ctx, "failed to encode response", slog.Any("error", err))
		dto.WriteErrorResponse(w, r, errUnencodable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		ctx := r.Context()
		logging.FromContext(ctx).DebugContext(ctx, "response write failed", slog.Any("error", err))
	}
}

// decodeJSONBody reads exactly one JSON value into dst. Failures are
// answered with a 400 problem naming "body", and false is returned.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errTrailingData
	}
	if err == nil {
		return true
	}

	dto.WriteErrorResponse(w, r, domain.FieldError("body", bodyProblem(err)))
	return false
}

var (
	errTrailingData = errors.New("trailing data")
	errUnencodable  = errors.New("response could not be encoded")
)

func bodyProblem(err error) string {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return "exceeds 1 MiB"
	case errors.Is(err, io.EOF):
		return "is empty"
	case errors.Is(err, errTrailingData):
		return "must hold a single JSON value"
	default:
		return "invalid JSON"
	}
}

type validatable interface {
	Validate() error
}

// decodeAndValidate is decodeJSONBody followed by dst.Validate.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
