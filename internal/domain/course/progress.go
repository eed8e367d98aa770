package course

import (
	"fmt"
	"math"
	"slices"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
)

// CalculateProgress returns completed/total as a percentage rounded half up.
// Returns 0 when there are no lessons.
func CalculateProgress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	pct := math.Floor(float64(completed)*100/float64(total) + 0.5)
	return min(int(pct), 100)
}

// SetProgress records an explicit progress percentage.
func (c *Course) SetProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return domain.FieldError("progress", fmt.Sprintf("must be 0-100, got %d", progress))
	}
	c.Progress = progress
	return nil
}

// ToggleLesson flips the completion state of one lesson and recomputes
// Progress from the completed lesson count. week is the 1-based week number
// and lesson the 0-based index within that week. Returns the new completion
// state of the lesson.
func (c *Course) ToggleLesson(week, lesson int) (bool, error) {
	w := c.week(week)
	if w == nil {
		return false, fmt.Errorf("week %d: %w", week, domain.ErrNotFound)
	}
	if lesson < 0 || lesson >= len(w.Lessons) {
		return false, fmt.Errorf("week %d lesson %d: %w", week, lesson, domain.ErrNotFound)
	}

	if c.CompletedLessons == nil {
		c.CompletedLessons = make(map[int][]int)
	}

	done := c.CompletedLessons[week]
	completed := false
	if i := slices.Index(done, lesson); i >= 0 {
		done = slices.Delete(slices.Clone(done), i, i+1)
	} else {
		done = append(slices.Clone(done), lesson)
		slices.Sort(done)
		completed = true
	}

	if len(done) == 0 {
		delete(c.CompletedLessons, week)
	} else {
		c.CompletedLessons[week] = done
	}

	c.Progress = CalculateProgress(c.completedCount(), c.TotalLessons())
	return completed, nil
}

// IsLessonComplete reports whether the given lesson is marked complete.
func (c *Course) IsLessonComplete(week, lesson int) bool {
	return slices.Contains(c.CompletedLessons[week], lesson)
}

func (c *Course) week(number int) *Week {
	for i := range c.Outline {
		if c.Outline[i].Number == number {
			return &c.Outline[i]
		}
	}
	return nil
}

func (c *Course) completedCount() int {
	var n int
	for _, lessons := range c.CompletedLessons {
		n += len(lessons)
	}
	return n
}
