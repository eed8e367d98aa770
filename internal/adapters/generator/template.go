// Package generator provides the local course generator: a deterministic
// template that stands in for a model-backed generator when no remote course
// API is configured.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/config"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/fanout"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

// Compile-time interface check.
var _ ports.CourseGenerator = (*Template)(nil)

// Template builds a course outline from fixed phrasing keyed by level, focus
// area and week position. The same request always yields the same course.
type Template struct {
	latency time.Duration
	workers int
	logger  *slog.Logger
}

// NewTemplate creates a template generator. cfg.Latency is waited before
// every generation to mimic a remote call; cfg.Workers bounds how many weeks
// are built at once.
func NewTemplate(cfg config.GeneratorConfig, logger *slog.Logger) *Template {
	return &Template{
		latency: cfg.Latency,
		workers: cfg.Workers,
		logger:  logger,
	}
}

// Name identifies the generator in metrics and logs.
func (g *Template) Name() string {
	return config.GeneratorTemplate
}

// Generate returns a course for req. It fails only when ctx ends first.
func (g *Template) Generate(ctx context.Context, req course.Request) (*course.Course, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}

	numbers := make([]int, req.DurationWeeks)
	for i := range numbers {
		numbers[i] = i + 1
	}

	weeks, err := fanout.Collect(ctx, g.workers, numbers, func(ctx context.Context, n int) (course.Week, error) {
		if err := ctx.Err(); err != nil {
			return course.Week{}, err
		}
		return buildWeek(req, n), nil
	})
	if err != nil {
		return nil, fmt.Errorf("building outline for %q: %w", req.Topic, err)
	}

	g.logger.DebugContext(ctx, "template course generated",
		slog.String("topic", req.Topic),
		slog.Int("weeks", len(weeks)),
	)

	return &course.Course{
		Title:         fmt.Sprintf("%s: %s Course", req.Topic, req.Level),
		Description:   description(req),
		Level:         req.Level,
		DurationWeeks: req.DurationWeeks,
		FocusAreas:    req.FocusAreas,
		Prerequisites: prerequisites(req),
		Outcomes:      outcomes(req),
		Outline:       weeks,
	}, nil
}

func (g *Template) wait(ctx context.Context) error {
	if g.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
