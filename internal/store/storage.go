package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("resource not found")
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Feedbacks interface {
		Create(context.Context, *Feedback) error
		List(ctx context.Context, page, limit int) ([]Feedback, Pagination, error)
		Delete(context.Context, uuid.UUID) error
		Count(context.Context) (int64, error)
		Stats(context.Context) (*TableStats, error)
	}
}

func NewStorage(db *pgxpool.Pool) Storage {
	return Storage{
		Feedbacks: &FeedbackStore{db},
	}
}
