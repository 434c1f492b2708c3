package services

import (
	"context"

	"github.com/samber/lo"
	"github.com/vytor/powerdrill/internal/errors"
	"github.com/vytor/powerdrill/internal/logger"
	"github.com/vytor/powerdrill/internal/models"
	"github.com/vytor/powerdrill/internal/repository"
)

// ScoreService exposes the stored high score lists outside of a running game.
type ScoreService interface {
	TopScores(ctx context.Context, variant models.Variant) ([]models.HighScoreEntry, error)
	AllScores(ctx context.Context) (map[models.Variant][]models.HighScoreEntry, error)
	Reset(ctx context.Context, variants ...models.Variant) error
}

type scoreService struct {
	repo repository.HighScoreRepository
}

// NewScoreService creates a new ScoreService
func NewScoreService(repo repository.HighScoreRepository) ScoreService {
	return &scoreService{repo: repo}
}

func (s *scoreService) TopScores(ctx context.Context, variant models.Variant) ([]models.HighScoreEntry, error) {
	log := logger.FromContext(ctx)
	if !variant.Valid() {
		return nil, errors.NewValidationError("variant", "must be 'square' or 'cube'")
	}

	entries, err := s.repo.List(ctx, variant)
	if err != nil {
		log.Error("failed to list high scores: variant=%s: %v", variant, err)
		return nil, errors.NewInternalError(err)
	}
	log.Debug("listed %d high scores for %s", len(entries), variant)
	return entries, nil
}

func (s *scoreService) AllScores(ctx context.Context) (map[models.Variant][]models.HighScoreEntry, error) {
	out := make(map[models.Variant][]models.HighScoreEntry, len(models.Variants))
	for _, v := range models.Variants {
		entries, err := s.TopScores(ctx, v)
		if err != nil {
			return nil, err
		}
		out[v] = entries
	}
	return out, nil
}

// Reset clears the named variants, or every variant when none are given.
func (s *scoreService) Reset(ctx context.Context, variants ...models.Variant) error {
	log := logger.FromContext(ctx)
	if len(variants) == 0 {
		variants = models.Variants
	}
	if bad, ok := lo.Find(variants, func(v models.Variant) bool { return !v.Valid() }); ok {
		return errors.NewValidationError("variant", "unknown variant '"+string(bad)+"'")
	}

	for _, v := range lo.Uniq(variants) {
		if err := s.repo.Clear(ctx, v); err != nil {
			log.Error("failed to clear high scores: variant=%s: %v", v, err)
			return errors.NewInternalError(err)
		}
		log.Info("cleared high scores for %s", v)
	}
	return nil
}
