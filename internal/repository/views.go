package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ViewRepo is the post view ledger. Increments go through a single
// upsert statement so concurrent requests never lose updates.
type ViewRepo interface {
	Increment(ctx context.Context, slug string) (int64, error)
	Get(ctx context.Context, slug string) (int64, error)
}

type viewRepo struct{ db *pgxpool.Pool }

func NewViewRepo(db *pgxpool.Pool) ViewRepo { return &viewRepo{db: db} }

func (r *viewRepo) Increment(ctx context.Context, slug string) (int64, error) {
	const q = `
		INSERT INTO post_views (slug, count)
		VALUES ($1, 1)
		ON CONFLICT (slug)
		DO UPDATE SET count = post_views.count + 1, updated_at = now()
		RETURNING count
	`
	var count int64
	if err := r.db.QueryRow(ctx, q, slug).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *viewRepo) Get(ctx context.Context, slug string) (int64, error) {
	const q = `SELECT count FROM post_views WHERE slug = $1`
	var count int64
	err := r.db.QueryRow(ctx, q, slug).Scan(&count)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}
