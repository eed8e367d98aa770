package ports

import (
	"context"

	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/registration"
)

// Notifier is the notification collaborator: it surfaces a message to the
// user and returns nothing. Implemented by the notify adapters.
type Notifier = registration.Notifier

// CourseGenerator defines the client port for course generation.
// Implemented by the local template generator and by the remote ACL client.
// The returned course is passed through to callers unchanged.
type CourseGenerator interface {
	// Generate builds a course for the given request. The request has
	// already been normalized and validated by the caller.
	// Returns domain.ErrUnavailable if the generator cannot be reached.
	Generate(ctx context.Context, req course.Request) (*course.Course, error)
}

// CourseStore defines the client port for saved-course persistence.
// Implemented by the memory, sqlite, and mysql storage adapters.
// Courses are keyed by an opaque string ID assigned by the caller.
type CourseStore interface {
	// Save inserts the course, or replaces it if the ID already exists.
	Save(ctx context.Context, c *course.Course) error

	// Get returns a single course by ID.
	// Returns domain.ErrNotFound if the course does not exist.
	Get(ctx context.Context, id string) (*course.Course, error)

	// List returns every saved course, newest first.
	List(ctx context.Context) ([]course.Course, error)

	// Delete removes a course by ID.
	// Returns domain.ErrNotFound if the course does not exist.
	Delete(ctx context.Context, id string) error

	// UpdateProgress replaces the progress percentage and completed lessons
	// of a saved course and returns the updated course.
	// Returns domain.ErrNotFound if the course does not exist.
	UpdateProgress(ctx context.Context, id string, progress int, completed map[int][]int) (*course.Course, error)
}
