package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/exercise-kit/internal/adapters/http"
	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/calculator"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/mocks"
)

type testRouter struct {
	http.Handler

	registrations *mocks.MockRegistrationService
	courses       *mocks.MockCourseService
	calculator    *mocks.MockCalculatorService
	registry      *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) *testRouter {
	t.Helper()

	tr := &testRouter{
		registrations: mocks.NewMockRegistrationService(t),
		courses:       mocks.NewMockCourseService(t),
		calculator:    mocks.NewMockCalculatorService(t),
		registry:      mocks.NewMockHealthRegistry(t),
	}
	tr.Handler = adapthttp.NewRouter(
		handlers.NewRegistrationHandler(tr.registrations),
		handlers.NewCourseHandler(tr.courses),
		handlers.NewCalculatorHandler(tr.calculator),
		handlers.NewHealthHandler(tr.registry),
		middlewares...,
	)
	return tr
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/v1/registrations/validate"},
		{http.MethodPost, "/api/v1/registrations/sessions"},
		{http.MethodGet, "/api/v1/registrations/sessions/{id}"},
		{http.MethodDelete, "/api/v1/registrations/sessions/{id}"},
		{http.MethodPut, "/api/v1/registrations/sessions/{id}/fields/{name}"},
		{http.MethodPost, "/api/v1/registrations/sessions/{id}/reset"},
		{http.MethodPost, "/api/v1/registrations/sessions/{id}/submit"},
		{http.MethodGet, "/api/v1/courses/focus-areas"},
		{http.MethodPost, "/api/v1/courses/generate"},
		{http.MethodGet, "/api/v1/courses"},
		{http.MethodPost, "/api/v1/courses"},
		{http.MethodGet, "/api/v1/courses/{id}"},
		{http.MethodDelete, "/api/v1/courses/{id}"},
		{http.MethodPatch, "/api/v1/courses/{id}/progress"},
		{http.MethodPost, "/api/v1/courses/{id}/weeks/{week}/lessons/{lesson}/toggle"},
		{http.MethodPost, "/api/v1/calculator"},
	}

	chiRouter, ok := router.Handler.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := newTestRouter(t, testMW)
	router.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_FocusAreasNotTreatedAsID(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses/focus-areas", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_IntegrationListCourses(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	router.courses.EXPECT().List(mock.Anything).Return([]course.Course{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_IntegrationCalculate(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	router.calculator.EXPECT().
		Calculate(mock.Anything, 6.0, calculator.OpDivide, 3.0).
		Return(2.0, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculator",
		strings.NewReader(`{"left":6,"operator":"/","right":3}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/courses", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
