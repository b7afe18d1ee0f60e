package repository

import (
	"context"
	"errors"

	"github.com/ikyawthetpaing/webacademy/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAlreadySubscribed reports a duplicate email on subscribe.
var ErrAlreadySubscribed = errors.New("email is already subscribed")

type SubscriberRepo interface {
	Create(ctx context.Context, name, email string) (*models.Subscriber, error)
	List(ctx context.Context) ([]models.Subscriber, error)
}

type subscriberRepo struct{ db *pgxpool.Pool }

func NewSubscriberRepo(db *pgxpool.Pool) SubscriberRepo { return &subscriberRepo{db: db} }

func (r *subscriberRepo) Create(ctx context.Context, name, email string) (*models.Subscriber, error) {
	const q = `
		INSERT INTO email_subscribers (id, name, email)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, verified, created_at
	`
	var s models.Subscriber
	err := r.db.QueryRow(ctx, q, uuid.NewString(), name, email).Scan(
		&s.ID, &s.Name, &s.Email, &s.Verified, &s.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation on the email column
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}
	return &s, nil
}

func (r *subscriberRepo) List(ctx context.Context) ([]models.Subscriber, error) {
	const q = `
		SELECT id, name, email, verified, created_at
		FROM email_subscribers
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Subscriber
	for rows.Next() {
		var s models.Subscriber
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Verified, &s.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
