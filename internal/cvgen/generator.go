package cvgen

import (
	"context"
	"strings"
	"time"
)

// ContentGenerator turns applicant free text into draft CV sections.
// A provider-backed implementation can replace HeuristicGenerator without
// touching validation or record assembly.
type ContentGenerator interface {
	Draft(ctx context.Context, in Input) (Draft, error)
}

const (
	descriptionLimit = 200
	maxAchievements  = 3
)

var (
	experienceStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	educationStart  = time.Date(2015, time.September, 1, 0, 0, 0, 0, time.UTC)
	educationEnd    = time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC)
)

// HeuristicGenerator is the rule-based stand-in for a generation provider.
type HeuristicGenerator struct{}

// Draft derives experience, education and skills from the input text.
func (HeuristicGenerator) Draft(ctx context.Context, in Input) (Draft, error) {
	if err := ctx.Err(); err != nil {
		return Draft{}, err
	}
	return Draft{
		Experience: experienceFrom(in.Experience),
		Education:  educationFrom(in.Education),
		Skills:     splitSkills(in.Skills),
	}, nil
}

func experienceFrom(text string) []ExperienceEntry {
	if text == "" {
		return []ExperienceEntry{}
	}
	return []ExperienceEntry{{
		ID:           "exp1",
		Company:      "Example Company",
		Position:     "Software Engineer",
		Location:     "Remote",
		StartDate:    experienceStart,
		Current:      true,
		Description:  truncate(text, descriptionLimit),
		Achievements: firstLines(text, maxAchievements),
	}}
}

// educationFrom only uses text as a presence signal.
func educationFrom(text string) []EducationEntry {
	if text == "" {
		return []EducationEntry{}
	}
	end := educationEnd
	return []EducationEntry{{
		ID:          "edu1",
		Institution: "University",
		Degree:      "Bachelor of Science",
		Field:       "Computer Science",
		Location:    "USA",
		StartDate:   educationStart,
		EndDate:     &end,
	}}
}

func splitSkills(raw string) []string {
	skills := []string{}
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

// firstLines returns up to n non-blank lines in order.
func firstLines(text string, n int) []string {
	lines := make([]string, 0, n)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == n {
			break
		}
	}
	return lines
}
