// Package storetest is the behavioral suite every ports.CourseStore adapter
// runs from its own tests.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

// Base is the creation time of the first Sample course.
var Base = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// Sample returns a saved-course fixture created n hours after Base.
func Sample(id string, n int) *course.Course {
	created := Base.Add(time.Duration(n) * time.Hour)
	return &course.Course{
		ID:            id,
		Title:         "Go Essentials " + id,
		Description:   "A short course",
		Level:         course.LevelIntermediate,
		DurationWeeks: 2,
		FocusAreas:    []course.FocusArea{course.FocusTechnical, course.FocusPractical},
		Prerequisites: []string{"None"},
		Outcomes:      []string{"Write Go"},
		Outline: []course.Week{
			{Number: 1, Title: "Basics", Description: "Syntax", Duration: "4 hours", Difficulty: "Introductory", Lessons: []string{"a", "b"}, Resources: []string{"tour"}},
			{Number: 2, Title: "Concurrency", Lessons: []string{"c"}},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

// Run exercises store. newStore must return an empty store per call.
func Run(t *testing.T, newStore func(t *testing.T) ports.CourseStore) {
	t.Helper()

	// Stores may drop monotonic clock readings and sub-microsecond precision.
	opts := cmp.Options{
		cmpopts.EquateApproxTime(time.Millisecond),
		cmpopts.EquateEmpty(),
	}

	t.Run("save and get", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		want := Sample("c-1", 0)

		if err := s.Save(ctx, want); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		got, err := s.Get(ctx, "c-1")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if diff := cmp.Diff(want, got, opts); diff != "" {
			t.Errorf("Get() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		s := newStore(t)
		if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Get() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("save replaces", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		c := Sample("c-1", 0)
		mustSave(t, s, c)

		c.Title = "Renamed"
		c.Progress = 50
		mustSave(t, s, c)

		got, err := s.Get(ctx, "c-1")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.Title != "Renamed" || got.Progress != 50 {
			t.Errorf("Get() = %q/%d, want Renamed/50", got.Title, got.Progress)
		}
		list, err := s.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(list) != 1 {
			t.Errorf("len(List()) = %d, want 1", len(list))
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		s := newStore(t)
		mustSave(t, s, Sample("old", 0))
		mustSave(t, s, Sample("new", 2))
		mustSave(t, s, Sample("mid", 1))

		list, err := s.List(context.Background())
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		ids := make([]string, len(list))
		for i := range list {
			ids[i] = list[i].ID
		}
		if diff := cmp.Diff([]string{"new", "mid", "old"}, ids); diff != "" {
			t.Errorf("List() order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("list empty", func(t *testing.T) {
		s := newStore(t)
		list, err := s.List(context.Background())
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(list) != 0 {
			t.Errorf("List() = %d courses, want 0", len(list))
		}
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		mustSave(t, s, Sample("c-1", 0))

		if err := s.Delete(ctx, "c-1"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := s.Get(ctx, "c-1"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
		}
		if err := s.Delete(ctx, "c-1"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("second Delete() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("update progress", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		mustSave(t, s, Sample("c-1", 0))

		completed := map[int][]int{1: {0, 1}}
		got, err := s.UpdateProgress(ctx, "c-1", 67, completed)
		if err != nil {
			t.Fatalf("UpdateProgress() error = %v", err)
		}
		if got.Progress != 67 {
			t.Errorf("Progress = %d, want 67", got.Progress)
		}
		if diff := cmp.Diff(completed, got.CompletedLessons); diff != "" {
			t.Errorf("CompletedLessons mismatch (-want +got):\n%s", diff)
		}
		if !got.UpdatedAt.After(got.CreatedAt) {
			t.Errorf("UpdatedAt = %v, want after CreatedAt %v", got.UpdatedAt, got.CreatedAt)
		}

		completed[1] = append(completed[1], 5)
		stored, err := s.Get(ctx, "c-1")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if diff := cmp.Diff(map[int][]int{1: {0, 1}}, stored.CompletedLessons); diff != "" {
			t.Errorf("stored CompletedLessons aliased caller map (-want +got):\n%s", diff)
		}
	})

	t.Run("update progress missing", func(t *testing.T) {
		s := newStore(t)
		if _, err := s.UpdateProgress(context.Background(), "nope", 10, nil); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("UpdateProgress() error = %v, want ErrNotFound", err)
		}
	})
}

func mustSave(t *testing.T, s ports.CourseStore, c *course.Course) {
	t.Helper()
	if err := s.Save(context.Background(), c); err != nil {
		t.Fatalf("Save(%s) error = %v", c.ID, err)
	}
}
