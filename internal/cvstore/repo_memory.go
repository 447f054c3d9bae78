package cvstore

import (
	"context"
	"sync"
)

// MemoryRepo stores CVs in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]CV
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]CV)}
}

func (r *MemoryRepo) Create(ctx context.Context, cv CV) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[cv.ID] = cv
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (CV, error) {
	if err := ctx.Err(); err != nil {
		return CV{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cv, ok := r.byID[id]
	if !ok {
		return CV{}, ErrNotFound
	}
	return cv, nil
}

// Update replaces an existing CV.
func (r *MemoryRepo) Update(ctx context.Context, cv CV) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[cv.ID]; !ok {
		return ErrNotFound
	}
	r.byID[cv.ID] = cv
	return nil
}

// LatestByUser returns the most recently updated CV of a user.
func (r *MemoryRepo) LatestByUser(ctx context.Context, userID string) (CV, error) {
	if err := ctx.Err(); err != nil {
		return CV{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		latest CV
		found  bool
	)
	for _, cv := range r.byID {
		if cv.UserID != userID {
			continue
		}
		if !found || cv.UpdatedAt.After(latest.UpdatedAt) {
			latest, found = cv, true
		}
	}
	if !found {
		return CV{}, ErrNotFound
	}
	return latest, nil
}

var _ Repo = (*MemoryRepo)(nil)
