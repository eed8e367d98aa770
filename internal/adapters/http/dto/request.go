package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/calculator"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/registration"
)

const msgRequired = "is required"

// RegistrationRequest is the JSON body of POST /registrations/validate. Every
// field is optional; a missing field validates as empty.
type RegistrationRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Address   string `json:"address"`
}

// ToFields converts the body to form fields.
func (r *RegistrationRequest) ToFields() registration.Fields {
	return registration.Fields{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Address:   r.Address,
	}
}

// SetFieldRequest is the JSON body of PUT /registrations/sessions/{id}/fields/{name}.
// An empty string is a valid value; an absent one is not.
type SetFieldRequest struct {
	Value *string `json:"value"`
}

// Validate checks that a value was sent.
func (r *SetFieldRequest) Validate() error {
	if r.Value == nil {
		return &domain.ValidationError{Fields: map[string]string{"value": msgRequired}}
	}
	return nil
}

// GenerateCourseRequest is the JSON body of POST /courses/generate. Zero
// level and duration take the form defaults; focus areas do not.
type GenerateCourseRequest struct {
	Topic         string   `json:"topic"`
	Level         string   `json:"level,omitempty"`
	DurationWeeks int      `json:"durationWeeks,omitempty"`
	FocusAreas    []string `json:"focusAreas"`
}

// ToDomain converts the body to a course request. Values are checked by the
// course service.
func (r *GenerateCourseRequest) ToDomain() course.Request {
	areas := make([]course.FocusArea, len(r.FocusAreas))
	for i, a := range r.FocusAreas {
		areas[i] = course.FocusArea(a)
	}
	return course.Request{
		Topic:         r.Topic,
		Level:         course.Level(r.Level),
		DurationWeeks: r.DurationWeeks,
		FocusAreas:    areas,
	}
}

// WeekBody is one outline week in a course body.
type WeekBody struct {
	Week        int      `json:"week"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Lessons     []string `json:"lessons"`
	Resources   []string `json:"resources,omitempty"`
}

// SaveCourseRequest is the JSON body of POST /courses: a generated course as
// returned by POST /courses/generate, optionally with progress.
type SaveCourseRequest struct {
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Level            string        `json:"level"`
	DurationWeeks    int           `json:"durationWeeks"`
	FocusAreas       []string      `json:"focusAreas"`
	Prerequisites    []string      `json:"prerequisites"`
	Outcomes         []string      `json:"outcomes"`
	Outline          []WeekBody    `json:"outline"`
	Progress         int           `json:"progress"`
	CompletedLessons map[int][]int `json:"completedLessons,omitempty"`
}

// Validate checks the fields the service cannot default.
// Returns a *domain.ValidationError if any checks fail.
func (r *SaveCourseRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if len(r.Outline) == 0 {
		fields["outline"] = msgRequired
	}
	for i, w := range r.Outline {
		if w.Week < 1 {
			fields[fmt.Sprintf("outline[%d].week", i)] = fmt.Sprintf("must be at least 1, got %d", w.Week)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the body to a course without ID or timestamps.
func (r *SaveCourseRequest) ToDomain() *course.Course {
	areas := make([]course.FocusArea, len(r.FocusAreas))
	for i, a := range r.FocusAreas {
		areas[i] = course.FocusArea(a)
	}
	weeks := make([]course.Week, len(r.Outline))
	for i, w := range r.Outline {
		weeks[i] = course.Week{
			Number:      w.Week,
			Title:       w.Title,
			Description: w.Description,
			Duration:    w.Duration,
			Difficulty:  w.Difficulty,
			Lessons:     w.Lessons,
			Resources:   w.Resources,
		}
	}
	return &course.Course{
		Title:            r.Title,
		Description:      r.Description,
		Level:            course.Level(r.Level),
		DurationWeeks:    r.DurationWeeks,
		FocusAreas:       areas,
		Prerequisites:    r.Prerequisites,
		Outcomes:         r.Outcomes,
		Outline:          weeks,
		Progress:         r.Progress,
		CompletedLessons: r.CompletedLessons,
	}
}

// UpdateProgressRequest is the JSON body of PATCH /courses/{id}/progress.
type UpdateProgressRequest struct {
	Progress *int `json:"progress"`
}

// Validate checks that progress is present and within 0-100.
func (r *UpdateProgressRequest) Validate() error {
	switch {
	case r.Progress == nil:
		return &domain.ValidationError{Fields: map[string]string{"progress": msgRequired}}
	case *r.Progress < 0 || *r.Progress > 100:
		return &domain.ValidationError{Fields: map[string]string{
			"progress": fmt.Sprintf("must be 0-100, got %d", *r.Progress),
		}}
	}
	return nil
}

// CalculateRequest is the JSON body of POST /calculator.
type CalculateRequest struct {
	Left     *float64 `json:"left"`
	Operator string   `json:"operator"`
	Right    *float64 `json:"right"`
}

// Validate checks that both operands are present. The operator is checked
// by the calculator so its message reaches the caller unchanged.
func (r *CalculateRequest) Validate() error {
	fields := make(map[string]string)
	if r.Left == nil {
		fields["left"] = msgRequired
	}
	if r.Right == nil {
		fields["right"] = msgRequired
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Op returns the operator as a calculator operator.
func (r *CalculateRequest) Op() calculator.Operator {
	return calculator.Operator(strings.TrimSpace(r.Operator))
}
