// Package course holds the course generator's domain: generation requests,
// generated courses with their weekly outline, and lesson progress.
package course

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
)

// Level is the difficulty a course is generated for.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Levels returns every level in ascending difficulty.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// IsValid returns true if the level is one of the defined constants.
func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (l Level) String() string {
	return string(l)
}

// FocusArea is one learning emphasis a course can be built around.
type FocusArea string

const (
	FocusTechnical   FocusArea = "technical"
	FocusTheoretical FocusArea = "theoretical"
	FocusPractical   FocusArea = "practical"
	FocusCreative    FocusArea = "creative"
)

// IsValid returns true if the focus area is one of the defined constants.
func (f FocusArea) IsValid() bool {
	switch f {
	case FocusTechnical, FocusTheoretical, FocusPractical, FocusCreative:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (f FocusArea) String() string {
	return string(f)
}

// FocusAreaInfo describes a focus area for selection menus.
type FocusAreaInfo struct {
	ID          FocusArea
	Name        string
	Description string
	Icon        string
}

// FocusAreaCatalog lists the selectable focus areas in display order.
func FocusAreaCatalog() []FocusAreaInfo {
	return []FocusAreaInfo{
		{ID: FocusTechnical, Name: "Technical", Description: "Code-focused learning", Icon: "💻"},
		{ID: FocusTheoretical, Name: "Theoretical", Description: "Concept deep-dive", Icon: "📚"},
		{ID: FocusPractical, Name: "Practical", Description: "Real-world projects", Icon: "🛠️"},
		{ID: FocusCreative, Name: "Creative", Description: "Innovation & design", Icon: "🎨"},
	}
}

// Week is one entry of a course outline. Number is 1-based.
type Week struct {
	Number      int
	Title       string
	Description string
	Duration    string
	Difficulty  string
	Lessons     []string
	Resources   []string
}

// Course is a generated course. Once generated, its content is passed
// through unchanged; only ID, Progress, CompletedLessons and the timestamps
// are managed by this service.
type Course struct {
	ID            string
	Title         string
	Description   string
	Level         Level
	DurationWeeks int
	FocusAreas    []FocusArea
	Prerequisites []string
	Outcomes      []string
	Outline       []Week
	Progress      int
	// CompletedLessons maps a week number to the sorted indices of its
	// completed lessons.
	CompletedLessons map[int][]int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks the minimum a course needs before it can be saved.
// Returns a *domain.ValidationError with per-field details, or nil.
func (c *Course) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Title) == "" {
		fields["title"] = msgRequired
	}
	if c.Level != "" && !c.Level.IsValid() {
		fields["level"] = fmt.Sprintf("invalid: %q", c.Level)
	}
	if c.Progress < 0 || c.Progress > 100 {
		fields["progress"] = fmt.Sprintf("must be 0-100, got %d", c.Progress)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Clone returns a deep copy of the mutable progress state. Outline content
// is shared since it never changes after generation.
func (c *Course) Clone() *Course {
	cp := *c
	if c.CompletedLessons != nil {
		cp.CompletedLessons = make(map[int][]int, len(c.CompletedLessons))
		for week, lessons := range c.CompletedLessons {
			cp.CompletedLessons[week] = slices.Clone(lessons)
		}
	}
	return &cp
}

// TotalLessons counts the lessons across every week of the outline.
func (c *Course) TotalLessons() int {
	var total int
	for i := range c.Outline {
		total += len(c.Outline[i].Lessons)
	}
	return total
}
