// Package course holds the wire shapes of the remote course generation API
// and their translation to and from the domain.
package course

// GenerateRequestDTO is the body of POST /api/v1/courses:generate.
type GenerateRequestDTO struct {
	Topic         string   `json:"topic"`
	Level         string   `json:"level"`
	DurationWeeks int      `json:"durationWeeks"`
	FocusAreas    []string `json:"focusAreas"`
}

// CourseDTO is a generated course as the API returns it.
type CourseDTO struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Level         string    `json:"level"`
	DurationWeeks int       `json:"durationWeeks"`
	FocusAreas    []string  `json:"focusAreas"`
	Prerequisites []string  `json:"prerequisites"`
	Outcomes      []string  `json:"outcomes"`
	Outline       []WeekDTO `json:"outline"`
}

// WeekDTO is one outline entry. Week is the 1-based week number.
type WeekDTO struct {
	Week        int      `json:"week"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Difficulty  string   `json:"difficulty"`
	Lessons     []string `json:"lessons"`
	Resources   []string `json:"resources"`
}
