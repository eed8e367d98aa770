package course

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
)

// Duration bounds for generated courses, in weeks.
const (
	MinDurationWeeks     = 2
	MaxDurationWeeks     = 12
	DefaultDurationWeeks = 4
)

// User-facing validation messages.
const (
	MsgTopicRequired = "Please enter a course topic"
	MsgFocusRequired = "Please select at least one focus area"
	msgRequired      = "is required"
)

// Request describes the course to generate.
type Request struct {
	Topic         string      `json:"topic"         validate:"notblank"`
	FocusAreas    []FocusArea `json:"focusAreas"    validate:"min=1,unique,dive,oneof=technical theoretical practical creative"`
	Level         Level       `json:"level"         validate:"oneof=Beginner Intermediate Advanced"`
	DurationWeeks int         `json:"durationWeeks" validate:"min=2,max=12"`
}

// NewRequest returns a request for topic with the form defaults: Beginner,
// four weeks, technical and practical focus.
func NewRequest(topic string) Request {
	return Request{
		Topic:         topic,
		Level:         LevelBeginner,
		DurationWeeks: DefaultDurationWeeks,
		FocusAreas:    []FocusArea{FocusTechnical, FocusPractical},
	}
}

// Normalize trims the topic and fills a zero level or duration with the
// defaults. Focus areas are left as given; an empty selection is an error.
func (r *Request) Normalize() {
	r.Topic = strings.TrimSpace(r.Topic)
	if r.Level == "" {
		r.Level = LevelBeginner
	}
	if r.DurationWeeks == 0 {
		r.DurationWeeks = DefaultDurationWeeks
	}
}

// ToggleFocusArea adds area to the selection, or removes it if already
// selected. Selection order is preserved.
func (r *Request) ToggleFocusArea(area FocusArea) {
	if i := slices.Index(r.FocusAreas, area); i >= 0 {
		r.FocusAreas = slices.Delete(slices.Clone(r.FocusAreas), i, i+1)
		return
	}
	r.FocusAreas = append(slices.Clone(r.FocusAreas), area)
}

// Validate checks the request. Returns a *domain.ValidationError keyed by
// JSON field name, or nil.
func (r *Request) Validate() error {
	err := requestValidate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating course request: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name, _, _ := strings.Cut(fe.Field(), "[")
		if _, seen := fields[name]; seen {
			continue
		}
		fields[name] = requestMessage(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func requestMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Topic":
		return MsgTopicRequired
	case "Level":
		return fmt.Sprintf("invalid: %q", fe.Value())
	case "DurationWeeks":
		return fmt.Sprintf("must be %d-%d, got %v", MinDurationWeeks, MaxDurationWeeks, fe.Value())
	}

	switch fe.Tag() {
	case "min":
		return MsgFocusRequired
	case "unique":
		return "must not repeat"
	default:
		return fmt.Sprintf("invalid: %q", fe.Value())
	}
}

var requestValidate = newRequestValidate()

func newRequestValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}
