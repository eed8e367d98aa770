package course

import "github.com/jsamuelsen11/exercise-kit/internal/domain"

// User-facing notifications of the course library.
const (
	MsgGenerateFailed = "Failed to generate course. Please try again."
	MsgCourseSaved    = "Course saved!"
	MsgCourseDeleted  = "Course deleted"
)

// GenerationError reports a failed generation. Its message is the one shown
// to users; the cause stays reachable through errors.Is and errors.As.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return MsgGenerateFailed
}

func (e *GenerationError) Unwrap() []error {
	return []error{domain.ErrUnavailable, e.Cause}
}

// ApplyRequest fills fields the generator left empty from the request that
// produced the course.
func (c *Course) ApplyRequest(req Request) {
	if c.Level == "" {
		c.Level = req.Level
	}
	if c.DurationWeeks == 0 {
		c.DurationWeeks = req.DurationWeeks
	}
	if len(c.FocusAreas) == 0 {
		c.FocusAreas = append([]FocusArea(nil), req.FocusAreas...)
	}
}
