package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/generator"
	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exercise-kit/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/exercise-kit/internal/app"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func newCourseCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Generate course outlines",
	}
	cmd.AddCommand(newCourseGenerateCmd(c), newFocusAreasCmd())
	return cmd
}

func newCourseGenerateCmd(c *cli) *cobra.Command {
	var (
		topic, level, format string
		weeks                int
		focus                []string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a course outline with the template generator",
		Example: `  exercise course generate --topic "Machine Learning" --level Intermediate --weeks 6
  exercise course generate --topic Rust --focus technical,creative --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatYAML && format != formatJSON {
				return fmt.Errorf("--format must be yaml or json, got %q", format)
			}

			if strings.TrimSpace(topic) == "" {
				var err error
				topic, err = c.prompter.Input("Course topic", "", nil)
				if err != nil {
					return err
				}
			}

			req := course.Request{
				Topic:         topic,
				Level:         parseLevel(level),
				DurationWeeks: weeks,
				FocusAreas:    make([]course.FocusArea, 0, len(focus)),
			}
			for _, f := range focus {
				req.FocusAreas = append(req.FocusAreas, course.FocusArea(strings.ToLower(strings.TrimSpace(f))))
			}

			gen := generator.NewTemplate(c.cfg.Generator, c.logger)
			svc := app.NewCourseService(gen, memory.New(), nil, nil, c.logger)

			generated, err := svc.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeCourse(cmd.OutOrStdout(), format, dto.ToCourseResponse(generated))
		},
	}

	defaults := course.NewRequest("")
	defaultFocus := make([]string, len(defaults.FocusAreas))
	for i, f := range defaults.FocusAreas {
		defaultFocus[i] = f.String()
	}

	cmd.Flags().StringVar(&topic, "topic", "", "course topic (prompted when empty)")
	cmd.Flags().StringVar(&level, "level", defaults.Level.String(), "Beginner, Intermediate or Advanced")
	cmd.Flags().IntVar(&weeks, "weeks", defaults.DurationWeeks,
		fmt.Sprintf("duration in weeks (%d-%d)", course.MinDurationWeeks, course.MaxDurationWeeks))
	cmd.Flags().StringSliceVar(&focus, "focus", defaultFocus, "focus areas: technical, theoretical, practical, creative")
	cmd.Flags().StringVar(&format, "format", formatYAML, "output format: yaml or json")
	return cmd
}

func newFocusAreasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "focus-areas",
		Short: "List the selectable focus areas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range course.FocusAreaCatalog() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %-12s %s\n", f.Icon, f.ID, f.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// parseLevel matches raw against the known levels ignoring case. Unknown
// input is passed through so request validation reports it.
func parseLevel(raw string) course.Level {
	for _, l := range course.Levels() {
		if strings.EqualFold(raw, l.String()) {
			return l
		}
	}
	return course.Level(raw)
}

func writeCourse(w io.Writer, format string, c dto.CourseResponse) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
