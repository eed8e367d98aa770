// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	registrationHandler *handlers.RegistrationHandler,
	courseHandler *handlers.CourseHandler,
	calculatorHandler *handlers.CalculatorHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Registration: stateless validation and form sessions.
		r.Post("/registrations/validate", registrationHandler.Validate)
		r.Post("/registrations/sessions", registrationHandler.OpenSession)
		r.Get("/registrations/sessions/{id}", registrationHandler.GetSession)
		r.Delete("/registrations/sessions/{id}", registrationHandler.CloseSession)
		r.Put("/registrations/sessions/{id}/fields/{name}", registrationHandler.SetField)
		r.Post("/registrations/sessions/{id}/reset", registrationHandler.ResetSession)
		r.Post("/registrations/sessions/{id}/submit", registrationHandler.SubmitSession)

		// Courses. Static segments win over {id} in chi's tree.
		r.Get("/courses/focus-areas", courseHandler.Options)
		r.Post("/courses/generate", courseHandler.Generate)
		r.Get("/courses", courseHandler.ListCourses)
		r.Post("/courses", courseHandler.SaveCourse)
		r.Get("/courses/{id}", courseHandler.GetCourse)
		r.Delete("/courses/{id}", courseHandler.DeleteCourse)
		r.Patch("/courses/{id}/progress", courseHandler.UpdateProgress)
		r.Post("/courses/{id}/weeks/{week}/lessons/{lesson}/toggle", courseHandler.ToggleLesson)

		r.Post("/calculator", calculatorHandler.Calculate)
	})

	return r
}
