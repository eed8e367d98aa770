package generator

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
)

// phase names the stage of the course a week falls in.
type phase struct {
	name       string
	difficulty string
}

var phases = []phase{
	{name: "Foundations", difficulty: "Introductory"},
	{name: "Core Concepts", difficulty: "Moderate"},
	{name: "Applied Practice", difficulty: "Challenging"},
	{name: "Capstone", difficulty: "Advanced"},
}

var lessonsPerWeek = map[course.Level]int{
	course.LevelBeginner:     3,
	course.LevelIntermediate: 4,
	course.LevelAdvanced:     5,
}

var hoursPerWeek = map[course.Level]int{
	course.LevelBeginner:     4,
	course.LevelIntermediate: 6,
	course.LevelAdvanced:     8,
}

var lessonStems = map[course.FocusArea][]string{
	course.FocusTechnical:   {"Hands-on coding: %s", "Tooling walkthrough: %s", "Debugging %s"},
	course.FocusTheoretical: {"Key ideas behind %s", "Reading: the theory of %s", "Models and trade-offs in %s"},
	course.FocusPractical:   {"Mini project: %s", "Case study: %s in the real world", "Exercise set: %s"},
	course.FocusCreative:    {"Design challenge: %s", "Brainstorm: new uses of %s", "Prototype: %s"},
}

func weekPhase(number, total int) phase {
	idx := (number - 1) * len(phases) / max(total, 1)
	return phases[min(idx, len(phases)-1)]
}

func buildWeek(req course.Request, number int) course.Week {
	p := weekPhase(number, req.DurationWeeks)
	subject := fmt.Sprintf("%s %s", req.Topic, strings.ToLower(p.name))

	areas := req.FocusAreas
	if len(areas) == 0 {
		areas = []course.FocusArea{course.FocusTechnical}
	}

	lessons := make([]string, lessonsPerWeek[req.Level])
	for i := range lessons {
		area := areas[(number+i)%len(areas)]
		stems := lessonStems[area]
		lessons[i] = fmt.Sprintf(stems[(number+i)%len(stems)], subject)
	}

	return course.Week{
		Number:      number,
		Title:       fmt.Sprintf("Week %d: %s", number, p.name),
		Description: fmt.Sprintf("%s of %s for %s learners.", p.name, req.Topic, strings.ToLower(req.Level.String())),
		Duration:    fmt.Sprintf("%d hours", hoursPerWeek[req.Level]),
		Difficulty:  p.difficulty,
		Lessons:     lessons,
		Resources: []string{
			fmt.Sprintf("%s reference guide", req.Topic),
			fmt.Sprintf("Week %d practice notebook", number),
		},
	}
}

func description(req course.Request) string {
	names := make([]string, len(req.FocusAreas))
	for i, a := range req.FocusAreas {
		names[i] = a.String()
	}
	return fmt.Sprintf("A %d-week %s course on %s with a %s focus.",
		req.DurationWeeks, strings.ToLower(req.Level.String()), req.Topic, strings.Join(names, " and "))
}

func prerequisites(req course.Request) []string {
	switch req.Level {
	case course.LevelIntermediate:
		return []string{fmt.Sprintf("Working knowledge of %s basics", req.Topic)}
	case course.LevelAdvanced:
		return []string{
			fmt.Sprintf("Solid experience with %s", req.Topic),
			"Comfort reading technical material",
		}
	default:
		return []string{"None"}
	}
}

func outcomes(req course.Request) []string {
	return []string{
		fmt.Sprintf("Explain the core ideas of %s", req.Topic),
		fmt.Sprintf("Apply %s to a small project", req.Topic),
		fmt.Sprintf("Plan your next steps in %s", req.Topic),
	}
}
