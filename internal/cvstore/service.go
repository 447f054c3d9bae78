package cvstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard-backend/internal/cvgen"
)

// Service contains business logic for stored CVs.
type Service struct {
	Repo  Repo
	Now   func() time.Time
	NewID func() string
}

// NewService constructs a Service over repo.
func NewService(repo Repo) *Service {
	return &Service{
		Repo:  repo,
		Now:   func() time.Time { return time.Now().UTC() },
		NewID: func() string { return "cv-" + uuid.NewString() },
	}
}

// Current returns the latest CV of a user.
func (s *Service) Current(ctx context.Context, userID string) (CV, error) {
	if strings.TrimSpace(userID) == "" {
		return CV{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	return s.Repo.LatestByUser(ctx, userID)
}

// Create stores a new CV. A full name is the minimum content accepted.
func (s *Service) Create(ctx context.Context, cv CV) (CV, error) {
	if strings.TrimSpace(cv.PersonalInfo.FullName) == "" {
		return CV{}, fmt.Errorf("%w: personal information required", ErrInvalidInput)
	}
	now := s.Now()
	cv.ID = s.NewID()
	cv.CreatedAt = now
	cv.UpdatedAt = now
	normalize(&cv)

	if err := s.Repo.Create(ctx, cv); err != nil {
		return CV{}, err
	}
	return cv, nil
}

// Update replaces the stored CV identified by cv.ID, keeping its creation time.
func (s *Service) Update(ctx context.Context, cv CV) (CV, error) {
	if strings.TrimSpace(cv.ID) == "" {
		return CV{}, fmt.Errorf("%w: cv id required", ErrInvalidInput)
	}
	existing, err := s.Repo.GetByID(ctx, cv.ID)
	if err != nil {
		return CV{}, err
	}
	cv.CreatedAt = existing.CreatedAt
	if cv.UserID == "" {
		cv.UserID = existing.UserID
	}
	cv.UpdatedAt = s.Now()
	normalize(&cv)

	if err := s.Repo.Update(ctx, cv); err != nil {
		return CV{}, err
	}
	return cv, nil
}

func normalize(cv *CV) {
	if cv.Experience == nil {
		cv.Experience = []cvgen.ExperienceEntry{}
	}
	if cv.Education == nil {
		cv.Education = []cvgen.EducationEntry{}
	}
	if cv.Skills == nil {
		cv.Skills = []string{}
	}
	if cv.Certifications == nil {
		cv.Certifications = []cvgen.Certification{}
	}
	if cv.Languages == nil {
		cv.Languages = []cvgen.Language{}
	}
}
