package cvgen

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	defaultSummary = "Professional with strong background in the industry."
	placeholderUID = "user-1"
)

// Service validates applicant input and assembles CV records.
type Service struct {
	Generator   ContentGenerator
	Waiter      Waiter
	ParseWaiter Waiter
	Now         func() time.Time
}

// NewService returns a Service backed by the heuristic generator.
func NewService(generationDelay, parseDelay time.Duration) *Service {
	return &Service{
		Generator:   HeuristicGenerator{},
		Waiter:      FixedDelay(generationDelay),
		ParseWaiter: FixedDelay(parseDelay),
		Now:         func() time.Time { return time.Now().UTC() },
	}
}

// Generate builds a CVRecord from in. Missing name or email fails with
// ErrInvalidInput before any generation work happens.
func (s *Service) Generate(ctx context.Context, in Input) (CVRecord, error) {
	if in.FullName == "" || in.Email == "" {
		return CVRecord{}, ErrInvalidInput
	}

	draft, err := s.Generator.Draft(ctx, in)
	if err != nil {
		return CVRecord{}, fmt.Errorf("draft cv sections: %w", err)
	}

	now := s.now()
	record := CVRecord{
		ID:             "generated-" + strconv.FormatInt(now.UnixMilli(), 10),
		UserID:         placeholderUID,
		PersonalInfo:   personalInfoFrom(in),
		Experience:     orEmpty(draft.Experience),
		Education:      orEmpty(draft.Education),
		Skills:         orEmpty(draft.Skills),
		Certifications: []Certification{},
		Languages:      []Language{{Name: "English", Proficiency: ProficiencyNative}},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := wait(ctx, s.Waiter); err != nil {
		return CVRecord{}, fmt.Errorf("generation delay: %w", err)
	}
	return record, nil
}

// Parse structures text extracted from an uploaded CV document.
func (s *Service) Parse(ctx context.Context, text string) (ParsedCV, error) {
	if strings.TrimSpace(text) == "" {
		return ParsedCV{}, ErrEmptyDocument
	}

	draft, err := s.Generator.Draft(ctx, Input{Experience: text, Education: text})
	if err != nil {
		return ParsedCV{}, fmt.Errorf("draft cv sections: %w", err)
	}

	if err := wait(ctx, s.ParseWaiter); err != nil {
		return ParsedCV{}, fmt.Errorf("parse delay: %w", err)
	}
	return ParsedCV{
		RawText:    text,
		Experience: orEmpty(draft.Experience),
		Education:  orEmpty(draft.Education),
		Skills:     orEmpty(draft.Skills),
	}, nil
}

func personalInfoFrom(in Input) PersonalInfo {
	summary := in.Summary
	if summary == "" {
		summary = defaultSummary
	}
	return PersonalInfo{
		FullName:  in.FullName,
		Email:     in.Email,
		Phone:     in.Phone,
		Location:  in.Location,
		LinkedIn:  in.LinkedIn,
		Portfolio: in.Portfolio,
		Summary:   summary,
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func wait(ctx context.Context, w Waiter) error {
	if w == nil {
		return nil
	}
	return w.Wait(ctx)
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
