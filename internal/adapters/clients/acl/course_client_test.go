package acl_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/exercise-kit/internal/domain"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/config"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at baseURL with a
// single attempt and the given breaker threshold.
func newTestClient(t *testing.T, baseURL string, maxFailures int) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   maxFailures,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	return httpclient.New(cfg, "course-api-test", nil, slog.New(slog.DiscardHandler))
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func TestCourseClient_Generate(t *testing.T) {
	t.Parallel()

	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/courses:generate" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"title":         "Rust Essentials",
			"level":         "Intermediate",
			"durationWeeks": 2,
			"focusAreas":    []string{"practical"},
			"outline": []map[string]any{
				{"week": 1, "title": "Ownership", "lessons": []string{"Moves", "Borrows"}},
				{"week": 2, "title": "Traits", "lessons": []string{"Generics"}},
			},
		})
	}))
	t.Cleanup(ts.Close)

	client := acl.NewCourseClient(newTestClient(t, ts.URL, 5), slog.New(slog.DiscardHandler))
	req := course.NewRequest("Rust")
	req.DurationWeeks = 2

	c, err := client.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	wantBody := map[string]any{
		"topic":         "Rust",
		"level":         "Beginner",
		"durationWeeks": float64(2),
		"focusAreas":    []any{"technical", "practical"},
	}
	if diff := cmp.Diff(wantBody, got); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
	if c.Title != "Rust Essentials" || c.Level != course.LevelIntermediate {
		t.Errorf("course = %q/%q, want Rust Essentials/Intermediate", c.Title, c.Level)
	}
	if c.TotalLessons() != 3 {
		t.Errorf("TotalLessons() = %d, want 3", c.TotalLessons())
	}
}

func TestCourseClient_Generate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    any
		wantErr error
	}{
		{
			name:    "validation problem",
			status:  http.StatusUnprocessableEntity,
			body:    map[string]any{"title": "Unprocessable", "errors": []map[string]any{{"location": "body.topic", "message": "is required"}}},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "upstream failure",
			status:  http.StatusBadGateway,
			body:    map[string]any{"title": "Bad Gateway"},
			wantErr: domain.ErrUnavailable,
		},
		{
			name:    "empty outline",
			status:  http.StatusOK,
			body:    map[string]any{"title": "Nothing"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(t, w, tt.status, tt.body)
			}))
			t.Cleanup(ts.Close)

			client := acl.NewCourseClient(newTestClient(t, ts.URL, 5), slog.New(slog.DiscardHandler))
			_, err := client.Generate(context.Background(), course.NewRequest("Go"))
			if err == nil {
				t.Fatal("Generate() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCourseClient_HealthCheck(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	client := acl.NewCourseClient(newTestClient(t, ts.URL, 1), slog.New(slog.DiscardHandler))
	if client.Name() != "course-api" {
		t.Errorf("Name() = %q, want course-api", client.Name())
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck() on fresh client = %v, want nil", err)
	}

	_, _ = client.Generate(context.Background(), course.NewRequest("Go"))

	if err := client.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() after breaker trip = nil, want error")
	}
}
