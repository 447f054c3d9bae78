package cvstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The CV body is kept as JSONB.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, cv CV) error {
	payload, err := json.Marshal(cv)
	if err != nil {
		return fmt.Errorf("encode cv %s: %w", cv.ID, err)
	}
	const query = `
INSERT INTO cvs (id, user_id, payload, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err = r.DB.ExecContext(ctx, query, cv.ID, cv.UserID, payload, cv.CreatedAt, cv.UpdatedAt)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (CV, error) {
	const query = `
SELECT payload, created_at, updated_at
FROM cvs
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *PGRepo) Update(ctx context.Context, cv CV) error {
	payload, err := json.Marshal(cv)
	if err != nil {
		return fmt.Errorf("encode cv %s: %w", cv.ID, err)
	}
	const query = `
UPDATE cvs
SET user_id = $2, payload = $3, updated_at = $4
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, cv.ID, cv.UserID, payload, cv.UpdatedAt)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) LatestByUser(ctx context.Context, userID string) (CV, error) {
	const query = `
SELECT payload, created_at, updated_at
FROM cvs
WHERE user_id = $1
ORDER BY updated_at DESC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) scanOne(row *sql.Row) (CV, error) {
	var (
		payload []byte
		cv      CV
	)
	if err := row.Scan(&payload, &cv.CreatedAt, &cv.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CV{}, ErrNotFound
		}
		return CV{}, err
	}
	createdAt, updatedAt := cv.CreatedAt, cv.UpdatedAt
	if err := json.Unmarshal(payload, &cv); err != nil {
		return CV{}, fmt.Errorf("decode cv payload: %w", err)
	}
	// Row timestamps are authoritative over the payload copy.
	cv.CreatedAt, cv.UpdatedAt = createdAt, updatedAt
	return cv, nil
}

var _ Repo = (*PGRepo)(nil)
