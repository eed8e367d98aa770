package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

// CourseHandler handles HTTP requests for course generation and the saved
// course library.
type CourseHandler struct {
	svc ports.CourseService
}

// NewCourseHandler creates a new CourseHandler with the given service port.
func NewCourseHandler(svc ports.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

// Options handles GET /api/v1/courses/focus-areas.
func (h *CourseHandler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToCourseOptionsResponse())
}

// Generate handles POST /api/v1/courses/generate. The course is returned
// unsaved.
func (h *CourseHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateCourseRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	c, err := h.svc.Generate(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCourseResponse(c))
}

// ListCourses handles GET /api/v1/courses.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.svc.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCourseListResponse(courses))
}

// SaveCourse handles POST /api/v1/courses.
func (h *CourseHandler) SaveCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveCourseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	saved, err := h.svc.Save(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", r.URL.Path+"/"+saved.ID)
	writeJSON(w, r, http.StatusCreated, dto.ToCourseResponse(saved))
}

// GetCourse handles GET /api/v1/courses/{id}.
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCourseResponse(c))
}

// DeleteCourse handles DELETE /api/v1/courses/{id} and answers with the
// remaining courses.
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	remaining, err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCourseListResponse(remaining))
}

// UpdateProgress handles PATCH /api/v1/courses/{id}/progress.
func (h *CourseHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProgressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c, err := h.svc.UpdateProgress(r.Context(), chi.URLParam(r, "id"), *req.Progress)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCourseResponse(c))
}

// ToggleLesson handles POST /api/v1/courses/{id}/weeks/{week}/lessons/{lesson}/toggle.
func (h *CourseHandler) ToggleLesson(w http.ResponseWriter, r *http.Request) {
	week, err := pathInt(r, "week")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	lesson, err := pathInt(r, "lesson")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	c, err := h.svc.ToggleLesson(r.Context(), chi.URLParam(r, "id"), week, lesson)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCourseResponse(c))
}
