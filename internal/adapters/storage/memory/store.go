// Package memory is the in-process CourseStore. Saved courses are lost when
// the process exits.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

// Compile-time interface check.
var _ ports.CourseStore = (*Store)(nil)

// Store keeps courses in a map guarded by a RWMutex. Every read and write
// copies, so callers never share state with the store.
type Store struct {
	mu      sync.RWMutex
	courses map[string]*course.Course
	now     func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		courses: make(map[string]*course.Course),
		now:     time.Now,
	}
}

// Save inserts or replaces c.
func (s *Store) Save(_ context.Context, c *course.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.courses[c.ID] = c.Clone()
	return nil
}

// Get returns a copy of the course with id.
func (s *Store) Get(_ context.Context, id string) (*course.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.courses[id]
	if !ok {
		return nil, notFound(id)
	}
	return c.Clone(), nil
}

// List returns every course, newest first. Courses created at the same
// instant are ordered by ID.
func (s *Store) List(_ context.Context) ([]course.Course, error) {
	s.mu.RLock()
	out := make([]course.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, *c.Clone())
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b course.Course) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// Delete removes the course with id.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return notFound(id)
	}
	delete(s.courses, id)
	return nil
}

// UpdateProgress replaces the progress state of the course with id.
func (s *Store) UpdateProgress(_ context.Context, id string, progress int, completed map[int][]int) (*course.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[id]
	if !ok {
		return nil, notFound(id)
	}

	updated := (&course.Course{CompletedLessons: completed}).Clone()
	c.Progress = progress
	c.CompletedLessons = updated.CompletedLessons
	c.UpdatedAt = s.now().UTC()
	return c.Clone(), nil
}

// Name identifies the store in health reports.
func (s *Store) Name() string {
	return "course-store"
}

// HealthCheck always succeeds.
func (s *Store) HealthCheck(context.Context) error {
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

func notFound(id string) error {
	return fmt.Errorf("course %s: %w", id, domain.ErrNotFound)
}
