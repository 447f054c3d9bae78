package cvstore

import "context"

// Repo defines persistence operations for CVs.
type Repo interface {
	Create(ctx context.Context, cv CV) error
	GetByID(ctx context.Context, id string) (CV, error)
	Update(ctx context.Context, cv CV) error
	LatestByUser(ctx context.Context, userID string) (CV, error)
}
