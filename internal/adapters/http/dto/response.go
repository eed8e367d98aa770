// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/exercise-kit/internal/domain/calculator"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/registration"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

// FieldsResponse is a form's current values. The password is never echoed;
// PasswordSet says whether one has been entered.
type FieldsResponse struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PasswordSet bool   `json:"passwordSet"`
	Address     string `json:"address"`
}

// ResultResponse is a validation outcome. Field and Reason are set only
// when Valid is false.
type ResultResponse struct {
	Valid  bool   `json:"valid"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// FormSessionResponse represents one registration form session.
type FormSessionResponse struct {
	ID         string          `json:"id"`
	Fields     FieldsResponse  `json:"fields"`
	LastResult *ResultResponse `json:"lastResult,omitempty"`
	Message    string          `json:"message,omitempty"`
	ExpiresAt  string          `json:"expiresAt"`
}

// ValidationResponse is the body of a successful stateless validation.
type ValidationResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// ToFieldsResponse converts form fields, hiding the password.
func ToFieldsResponse(f registration.Fields) FieldsResponse {
	return FieldsResponse{
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Email:       f.Email,
		PasswordSet: f.Password != "",
		Address:     f.Address,
	}
}

// ToResultResponse converts a validation result.
func ToResultResponse(r registration.Result) ResultResponse {
	return ResultResponse{
		Valid:  r.Valid(),
		Field:  r.Field.String(),
		Reason: r.Reason,
	}
}

// ToFormSessionResponse converts a form session snapshot.
func ToFormSessionResponse(s *ports.FormSession) FormSessionResponse {
	resp := FormSessionResponse{
		ID:        s.ID,
		Fields:    ToFieldsResponse(s.Fields),
		Message:   s.Message,
		ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339),
	}
	if s.LastResult != nil {
		r := ToResultResponse(*s.LastResult)
		resp.LastResult = &r
	}
	return resp
}

// WeekResponse is one outline week.
type WeekResponse struct {
	Week        int      `json:"week" yaml:"week"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Duration    string   `json:"duration" yaml:"duration"`
	Difficulty  string   `json:"difficulty" yaml:"difficulty"`
	Lessons     []string `json:"lessons" yaml:"lessons"`
	Resources   []string `json:"resources" yaml:"resources"`
}

// CourseResponse represents a generated or saved course. ID and the
// timestamps are empty for a course that has not been saved.
type CourseResponse struct {
	ID               string         `json:"id,omitempty" yaml:"id,omitempty"`
	Title            string         `json:"title" yaml:"title"`
	Description      string         `json:"description" yaml:"description"`
	Level            string         `json:"level" yaml:"level"`
	DurationWeeks    int            `json:"durationWeeks" yaml:"durationWeeks"`
	FocusAreas       []string       `json:"focusAreas" yaml:"focusAreas"`
	Prerequisites    []string       `json:"prerequisites" yaml:"prerequisites"`
	Outcomes         []string       `json:"outcomes" yaml:"outcomes"`
	Outline          []WeekResponse `json:"outline" yaml:"outline"`
	Progress         int            `json:"progress" yaml:"progress"`
	CompletedLessons map[int][]int  `json:"completedLessons" yaml:"completedLessons"`
	CreatedAt        string         `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt        string         `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// CourseListResponse represents the saved courses.
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses" yaml:"courses"`
	Count   int              `json:"count" yaml:"count"`
}

// FocusAreaResponse describes one selectable focus area.
type FocusAreaResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CourseOptionsResponse lists what a generate request may contain.
type CourseOptionsResponse struct {
	FocusAreas       []FocusAreaResponse `json:"focusAreas"`
	Levels           []string            `json:"levels"`
	MinDurationWeeks int                 `json:"minDurationWeeks"`
	MaxDurationWeeks int                 `json:"maxDurationWeeks"`
}

// ToCourseResponse converts a course entity to an HTTP response DTO.
func ToCourseResponse(c *course.Course) CourseResponse {
	areas := make([]string, len(c.FocusAreas))
	for i, a := range c.FocusAreas {
		areas[i] = a.String()
	}
	weeks := make([]WeekResponse, len(c.Outline))
	for i, w := range c.Outline {
		weeks[i] = WeekResponse{
			Week:        w.Number,
			Title:       w.Title,
			Description: w.Description,
			Duration:    w.Duration,
			Difficulty:  w.Difficulty,
			Lessons:     nonNil(w.Lessons),
			Resources:   nonNil(w.Resources),
		}
	}
	completed := c.CompletedLessons
	if completed == nil {
		completed = map[int][]int{}
	}

	resp := CourseResponse{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		Level:            c.Level.String(),
		DurationWeeks:    c.DurationWeeks,
		FocusAreas:       areas,
		Prerequisites:    nonNil(c.Prerequisites),
		Outcomes:         nonNil(c.Outcomes),
		Outline:          weeks,
		Progress:         c.Progress,
		CompletedLessons: completed,
	}
	if !c.CreatedAt.IsZero() {
		resp.CreatedAt = c.CreatedAt.Format(time.RFC3339)
		resp.UpdatedAt = c.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

// ToCourseListResponse converts saved courses to a list response DTO.
func ToCourseListResponse(courses []course.Course) CourseListResponse {
	items := make([]CourseResponse, len(courses))
	for i := range courses {
		items[i] = ToCourseResponse(&courses[i])
	}
	return CourseListResponse{Courses: items, Count: len(items)}
}

// ToCourseOptionsResponse describes the generate form's choices.
func ToCourseOptionsResponse() CourseOptionsResponse {
	catalog := course.FocusAreaCatalog()
	areas := make([]FocusAreaResponse, len(catalog))
	for i, info := range catalog {
		areas[i] = FocusAreaResponse{
			ID:          info.ID.String(),
			Name:        info.Name,
			Description: info.Description,
			Icon:        info.Icon,
		}
	}
	levels := make([]string, 0, 3)
	for _, l := range course.Levels() {
		levels = append(levels, l.String())
	}
	return CourseOptionsResponse{
		FocusAreas:       areas,
		Levels:           levels,
		MinDurationWeeks: course.MinDurationWeeks,
		MaxDurationWeeks: course.MaxDurationWeeks,
	}
}

// CalculationResponse is the outcome of POST /calculator. Display is the
// result as the calculator prints it.
type CalculationResponse struct {
	Left     float64 `json:"left"`
	Operator string  `json:"operator"`
	Right    float64 `json:"right"`
	Result   float64 `json:"result"`
	Display  string  `json:"display"`
}

// ToCalculationResponse builds a calculation response.
func ToCalculationResponse(left float64, op calculator.Operator, right, result float64) CalculationResponse {
	return CalculationResponse{
		Left:     left,
		Operator: op.String(),
		Right:    right,
		Result:   result,
		Display:  calculator.Format(result),
	}
}

// HealthResponse is the body of both health probes. Checks is only set on
// readiness and maps each dependency to "ok" or its failure.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse folds check results into a response and reports
// whether every dependency passed.
func ToReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: "ready", Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "not_ready"
			continue
		}
		resp.Checks[name] = "ok"
	}
	return resp, resp.Status == "ready"
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
