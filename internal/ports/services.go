package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/exercise-kit/internal/domain/calculator"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/registration"
)

// RegistrationService defines the service port for the registration form.
// Implemented by the application layer; called by inbound adapters (handlers,
// CLI). Each form session owns one registration.Controller.
type RegistrationService interface {
	// Validate runs the validator against a complete form without opening a
	// session. The outcome is also sent to the notifier.
	Validate(ctx context.Context, fields registration.Fields) registration.Result

	// SuccessHeadline returns the configured headline of the success
	// notification.
	SuccessHeadline() string

	// OpenSession starts a new form session with every field empty.
	// Returns domain.ErrConflict if the session limit has been reached.
	OpenSession(ctx context.Context) (*FormSession, error)

	// GetSession returns the current state of a form session.
	// Returns domain.ErrNotFound if the session does not exist or expired.
	GetSession(ctx context.Context, id string) (*FormSession, error)

	// SetField replaces one field of a session.
	// Returns domain.ErrNotFound for unknown sessions and
	// registration.ErrUnknownField for names outside the closed set.
	SetField(ctx context.Context, id string, name registration.FieldName, value string) (*FormSession, error)

	// ResetSession clears every field of a session.
	// Returns domain.ErrNotFound if the session does not exist.
	ResetSession(ctx context.Context, id string) (*FormSession, error)

	// SubmitSession validates a session's fields and notifies the outcome.
	// A rejected form is not an error: the result carries the reason and
	// the session keeps its values.
	// Returns domain.ErrNotFound if the session does not exist.
	SubmitSession(ctx context.Context, id string) (*FormSession, registration.Result, error)

	// CloseSession discards a session.
	// Returns domain.ErrNotFound if the session does not exist.
	CloseSession(ctx context.Context, id string) error
}

// FormSession is a snapshot of one registration form session.
type FormSession struct {
	ID         string
	Fields     registration.Fields
	LastResult *registration.Result

	// Message is the last message sent to the notifier for this session.
	Message   string
	ExpiresAt time.Time
}

// CourseService defines the service port for the course generator.
// Implemented by the application layer; called by inbound adapters.
type CourseService interface {
	// Generate validates the request and asks the generator for a course.
	// The course is not saved.
	// Returns domain.ErrValidation for bad requests and domain.ErrUnavailable
	// when generation fails.
	Generate(ctx context.Context, req course.Request) (*course.Course, error)

	// Save stores a course and returns it with server-assigned fields (ID,
	// timestamps).
	// Returns domain.ErrValidation if the course fails validation.
	Save(ctx context.Context, c *course.Course) (*course.Course, error)

	// List returns every saved course, newest first.
	List(ctx context.Context) ([]course.Course, error)

	// Get returns a saved course by ID.
	// Returns domain.ErrNotFound if the course does not exist.
	Get(ctx context.Context, id string) (*course.Course, error)

	// Delete removes a saved course and returns the remaining courses.
	// Returns domain.ErrNotFound if the course does not exist.
	Delete(ctx context.Context, id string) ([]course.Course, error)

	// UpdateProgress sets an explicit progress percentage (0-100).
	// Returns domain.ErrNotFound or domain.ErrValidation.
	UpdateProgress(ctx context.Context, id string, progress int) (*course.Course, error)

	// ToggleLesson flips one lesson's completion and recomputes progress.
	// week is 1-based, lesson is 0-based.
	// Returns domain.ErrNotFound if the course, week, or lesson does not exist.
	ToggleLesson(ctx context.Context, id string, week, lesson int) (*course.Course, error)
}

// CalculatorService defines the service port for the calculator.
type CalculatorService interface {
	// Calculate applies op to left and right.
	// Returns calculator.ErrDivisionByZero or calculator.ErrInvalidOperator.
	Calculate(ctx context.Context, left float64, op calculator.Operator, right float64) (float64, error)
}
