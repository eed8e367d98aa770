package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/registration"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validCourse() course.Course {
	return course.Course{
		ID:            "c-1",
		Title:         "Go Essentials",
		Level:         course.LevelBeginner,
		DurationWeeks: 2,
		FocusAreas:    []course.FocusArea{course.FocusTechnical},
		Outline: []course.Week{
			{Number: 1, Title: "Basics", Lessons: []string{"a", "b"}},
			{Number: 2, Title: "Concurrency", Lessons: []string{"c"}},
		},
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validSession() *ports.FormSession {
	return &ports.FormSession{
		ID:        "s-1",
		Fields:    registration.Fields{FirstName: "Ann"},
		ExpiresAt: testTime.Add(30 * time.Minute),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
