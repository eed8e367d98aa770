package course

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
)

// ErrEmptyOutline is returned for a generated course with no weeks.
var ErrEmptyOutline = errors.New("generated course has no outline")

// ToGenerateRequest converts a domain request to the API body.
func ToGenerateRequest(req course.Request) GenerateRequestDTO {
	areas := make([]string, len(req.FocusAreas))
	for i, a := range req.FocusAreas {
		areas[i] = a.String()
	}
	return GenerateRequestDTO{
		Topic:         req.Topic,
		Level:         req.Level.String(),
		DurationWeeks: req.DurationWeeks,
		FocusAreas:    areas,
	}
}

// ToDomainCourse converts a generated course. Weeks without a number are
// numbered by position. Unknown levels and focus areas are dropped rather
// than failing the whole course.
func ToDomainCourse(dto *CourseDTO) (*course.Course, error) {
	if len(dto.Outline) == 0 {
		return nil, ErrEmptyOutline
	}

	c := &course.Course{
		Title:         dto.Title,
		Description:   dto.Description,
		DurationWeeks: dto.DurationWeeks,
		Prerequisites: dto.Prerequisites,
		Outcomes:      dto.Outcomes,
		Outline:       make([]course.Week, len(dto.Outline)),
	}

	if lvl := course.Level(dto.Level); lvl.IsValid() {
		c.Level = lvl
	}
	for _, raw := range dto.FocusAreas {
		if area := course.FocusArea(raw); area.IsValid() {
			c.FocusAreas = append(c.FocusAreas, area)
		}
	}

	for i, w := range dto.Outline {
		number := w.Week
		if number == 0 {
			number = i + 1
		}
		c.Outline[i] = course.Week{
			Number:      number,
			Title:       w.Title,
			Description: w.Description,
			Duration:    w.Duration,
			Difficulty:  w.Difficulty,
			Lessons:     w.Lessons,
			Resources:   w.Resources,
		}
	}

	if c.DurationWeeks == 0 {
		c.DurationWeeks = len(c.Outline)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("generated course: %w", err)
	}
	return c, nil
}
