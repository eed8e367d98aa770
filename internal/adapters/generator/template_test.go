package generator_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/generator"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTemplate(latency time.Duration) *generator.Template {
	return generator.NewTemplate(
		config.GeneratorConfig{Mode: config.GeneratorTemplate, Latency: latency, Workers: 2},
		slog.New(slog.DiscardHandler),
	)
}

func TestTemplate_Generate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level          course.Level
		weeks          int
		lessonsPerWeek int
	}{
		{course.LevelBeginner, 2, 3},
		{course.LevelIntermediate, 4, 4},
		{course.LevelAdvanced, 12, 5},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			t.Parallel()

			req := course.NewRequest("Go")
			req.Level = tt.level
			req.DurationWeeks = tt.weeks

			c, err := newTemplate(0).Generate(context.Background(), req)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if err := c.Validate(); err != nil {
				t.Errorf("generated course does not validate: %v", err)
			}
			if len(c.Outline) != tt.weeks {
				t.Fatalf("len(Outline) = %d, want %d", len(c.Outline), tt.weeks)
			}
			for i, w := range c.Outline {
				if w.Number != i+1 {
					t.Errorf("Outline[%d].Number = %d, want %d", i, w.Number, i+1)
				}
				if len(w.Lessons) != tt.lessonsPerWeek {
					t.Errorf("week %d has %d lessons, want %d", w.Number, len(w.Lessons), tt.lessonsPerWeek)
				}
			}
			if c.Level != tt.level || c.DurationWeeks != tt.weeks {
				t.Errorf("course = %s/%d, want %s/%d", c.Level, c.DurationWeeks, tt.level, tt.weeks)
			}
		})
	}
}

func TestTemplate_GenerateIsDeterministic(t *testing.T) {
	t.Parallel()

	g := newTemplate(0)
	req := course.NewRequest("Distributed Systems")
	req.FocusAreas = []course.FocusArea{course.FocusCreative, course.FocusTheoretical}

	first, err := g.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("first Generate() error = %v", err)
	}
	second, err := g.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("outputs differ (-first +second):\n%s", diff)
	}
}

func TestTemplate_GenerateHonoursContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := newTemplate(time.Minute).Generate(ctx, course.NewRequest("Go"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Generate() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestTemplate_Name(t *testing.T) {
	t.Parallel()

	if got := newTemplate(0).Name(); got != "template" {
		t.Errorf("Name() = %q, want template", got)
	}
}
