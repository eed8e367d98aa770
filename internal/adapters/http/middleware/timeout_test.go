package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/middleware"
)

func TestTimeout_ForwardsBufferedResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handle     http.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name: "explicit status and header",
			handle: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Location", "/api/v1/courses/c1")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":"c1"}`))
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":"c1"}`,
		},
		{
			name: "implicit 200",
			handle: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("3"))
			},
			wantStatus: http.StatusOK,
			wantBody:   "3",
		},
		{
			name: "no content",
			handle: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			middleware.Timeout(time.Second)(tt.handle).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/courses", http.NoBody))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestTimeout_DeadlineYieldsGatewayTimeout(t *testing.T) {
	t.Parallel()

	writeErr := make(chan error, 1)
	h := middleware.Timeout(30 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		<-r.Context().Done()
		time.Sleep(10 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		writeErr <- err
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/courses/generate", http.NoBody))

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var problem dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&problem))
	assert.Equal(t, "/api/v1/courses/generate", problem.Instance)

	select {
	case err := <-writeErr:
		assert.ErrorIs(t, err, http.ErrHandlerTimeout)
	case <-time.After(time.Second):
		t.Fatal("handler never finished")
	}
}

func TestTimeout_HandlerSeesDeadline(t *testing.T) {
	t.Parallel()

	var remaining time.Duration
	h := middleware.Timeout(time.Minute)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		if dl, ok := r.Context().Deadline(); ok {
			remaining = time.Until(dl)
		}
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Greater(t, remaining, 50*time.Second)
}

func TestTimeout_PanicReachesCaller(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("week out of range")
	}))

	assert.PanicsWithValue(t, "week out of range", func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	})
}
