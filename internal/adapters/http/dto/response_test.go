package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/calculator"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/registration"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func TestToFormSessionResponse(t *testing.T) {
	t.Parallel()

	result := registration.Result{Field: registration.FieldEmail, Reason: "Please enter a valid email address."}
	s := &ports.FormSession{
		ID:         "s-1",
		Fields:     registration.Fields{FirstName: "Ann", Password: "secret1"},
		LastResult: &result,
		Message:    result.Reason,
		ExpiresAt:  testTime,
	}

	want := dto.FormSessionResponse{
		ID:         "s-1",
		Fields:     dto.FieldsResponse{FirstName: "Ann", PasswordSet: true},
		LastResult: &dto.ResultResponse{Valid: false, Field: "email", Reason: result.Reason},
		Message:    result.Reason,
		ExpiresAt:  "2026-02-12T15:04:05Z",
	}
	got := dto.ToFormSessionResponse(s)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToFormSessionResponse() mismatch (-want +got):\n%s", diff)
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(raw), "secret1") {
		t.Errorf("session JSON echoes the password: %s", raw)
	}
}

func TestToCourseResponse(t *testing.T) {
	t.Parallel()

	c := &course.Course{
		ID:            "c-1",
		Title:         "Go",
		Level:         course.LevelBeginner,
		DurationWeeks: 2,
		FocusAreas:    []course.FocusArea{course.FocusTechnical},
		Outline:       []course.Week{{Number: 1, Title: "Basics", Lessons: []string{"a"}}},
		CreatedAt:     testTime,
		UpdatedAt:     testTime,
	}

	got := dto.ToCourseResponse(c)
	if got.CreatedAt != "2026-02-12T15:04:05Z" {
		t.Errorf("CreatedAt = %q", got.CreatedAt)
	}
	if got.Outline[0].Week != 1 || got.Outline[0].Resources == nil {
		t.Errorf("Outline[0] = %+v, want week 1 with non-nil resources", got.Outline[0])
	}
	if got.CompletedLessons == nil || got.Prerequisites == nil {
		t.Error("nil collections should encode as empty JSON values")
	}

	unsaved := dto.ToCourseResponse(&course.Course{Title: "Draft"})
	if unsaved.ID != "" || unsaved.CreatedAt != "" {
		t.Errorf("unsaved course has ID %q, CreatedAt %q", unsaved.ID, unsaved.CreatedAt)
	}
}

func TestToCourseListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToCourseListResponse([]course.Course{{ID: "a"}, {ID: "b"}})
	if got.Count != 2 || got.Courses[1].ID != "b" {
		t.Errorf("ToCourseListResponse() = %+v", got)
	}
	if empty := dto.ToCourseListResponse(nil); empty.Courses == nil || empty.Count != 0 {
		t.Errorf("empty list = %+v, want non-nil empty slice", empty)
	}
}

func TestToCourseOptionsResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToCourseOptionsResponse()
	if len(got.FocusAreas) != 4 || got.FocusAreas[0].ID != "technical" {
		t.Errorf("FocusAreas = %+v", got.FocusAreas)
	}
	if diff := cmp.Diff([]string{"Beginner", "Intermediate", "Advanced"}, got.Levels); diff != "" {
		t.Errorf("Levels mismatch (-want +got):\n%s", diff)
	}
	if got.MinDurationWeeks != 2 || got.MaxDurationWeeks != 12 {
		t.Errorf("duration bounds = %d-%d, want 2-12", got.MinDurationWeeks, got.MaxDurationWeeks)
	}
}

func TestToCalculationResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToCalculationResponse(7, calculator.OpDivide, 2, 3.5)
	want := dto.CalculationResponse{Left: 7, Operator: "/", Right: 2, Result: 3.5, Display: "3.5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToCalculationResponse() mismatch (-want +got):\n%s", diff)
	}
}
