package repository

import (
	"context"

	"github.com/vytor/powerdrill/internal/models"
)

// HighScoreRepository is the durable store for each variant's ranked list.
// List returns entries in stored rank order; Replace overwrites the whole list.
type HighScoreRepository interface {
	List(ctx context.Context, variant models.Variant) ([]models.HighScoreEntry, error)
	Replace(ctx context.Context, variant models.Variant, entries []models.HighScoreEntry) error
	Clear(ctx context.Context, variant models.Variant) error
}

// CustomRangeRepository holds custom ranges for the current run only.
// Get returns nil when the variant has no range configured.
type CustomRangeRepository interface {
	Get(ctx context.Context, variant models.Variant) (*models.CustomRange, error)
	Save(ctx context.Context, variant models.Variant, r models.CustomRange) error
}
