package store

import (
	"context"

	"github.com/babynumtime/babynumtime/models"
)

// RecordRepository is the backend persistence layer keyed by baby ID.
type RecordRepository interface {
	// CreateBaby inserts a new profile row. Returns [ErrBabyIDTaken] when
	// the generated ID collides with an existing one.
	CreateBaby(ctx context.Context, baby models.BabyProfile) error
	// GetBaby returns the profile for the given ID, or [ErrBabyNotFound].
	GetBaby(ctx context.Context, babyID string) (models.BabyProfile, error)
	// GetData loads all record collections stored under the baby ID.
	GetData(ctx context.Context, babyID string) (models.DataSnapshot, error)
	// ReplaceData overwrites all record collections under the baby ID with
	// the snapshot contents, in a single transaction.
	ReplaceData(ctx context.Context, babyID string, snapshot models.DataSnapshot) error
	// DeleteAll removes the profile row and every record stored under the
	// baby ID, in a single transaction.
	DeleteAll(ctx context.Context, babyID string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. See [PostgresErrorClassifier].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
