package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/logging"
)

func TestRecovery_PassesThroughWithoutPanic(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(jsonLogger(new(bytes.Buffer)))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("queued"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/calculator", http.NoBody))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "queued", rec.Body.String())
}

func TestRecovery_PanicBecomesProblem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{name: "string", value: "lesson index out of range"},
		{name: "error", value: errors.New("nil course")},
		{name: "int", value: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := middleware.Recovery(jsonLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic(tt.value)
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/courses/c1", http.NoBody))

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			var problem dto.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&problem))
			assert.Equal(t, "Internal Server Error", problem.Title)
			assert.Equal(t, "internal server error", problem.Detail)

			logged := logRecords(t, &buf)["panic recovered"]
			require.NotNil(t, logged)
			assert.Equal(t, "ERROR", logged["level"])
			assert.Contains(t, logged["stack"], "goroutine")
		})
	}
}

func TestRecovery_PrefersRequestLogger(t *testing.T) {
	t.Parallel()

	var base, scoped bytes.Buffer
	h := middleware.Recovery(jsonLogger(&base))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	ctx := logging.WithLogger(t.Context(), jsonLogger(&scoped).With("request_id", "req-9"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequestWithContext(ctx, http.MethodGet, "/", http.NoBody))

	assert.Zero(t, base.Len(), "base logger should stay quiet")
	logged := logRecords(t, &scoped)["panic recovered"]
	require.NotNil(t, logged)
	assert.Equal(t, "req-9", logged["request_id"])
}

func TestRecovery_KeepsCommittedResponse(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(jsonLogger(new(bytes.Buffer)))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		panic("after header")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/courses", http.NoBody))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRecovery_RepanicsOnAbortHandler(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(jsonLogger(new(bytes.Buffer)))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	})
}
