package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/powerdrill/internal/db"
	"github.com/vytor/powerdrill/internal/logger"
	"github.com/vytor/powerdrill/internal/models"
	"github.com/vytor/powerdrill/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const highScoresTable = "high_scores"

type highScoreRepository struct {
	db *db.DB
}

// NewHighScoreRepository creates a new HighScoreRepository implementation
func NewHighScoreRepository(db *db.DB) repository.HighScoreRepository {
	return &highScoreRepository{db: db}
}

func (r *highScoreRepository) List(ctx context.Context, variant models.Variant) ([]models.HighScoreEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("high_score_repo")
	log.Debug("listing high scores: variant=%s", variant)

	query, args, err := sqlBuilder.
		Select("score", "mode", "difficulty", "duration_minutes", "recorded_at").
		From(highScoresTable).
		Where(squirrel.Eq{"variant": string(variant)}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list high scores: %v", err)
		return nil, err
	}
	defer rows.Close()

	entries := []models.HighScoreEntry{}
	for rows.Next() {
		var e models.HighScoreEntry
		var mode, difficulty string
		if err := rows.Scan(&e.Score, &mode, &difficulty, &e.DurationMinutes, &e.RecordedAt); err != nil {
			log.Error("failed to scan high score row: %v", err)
			return nil, err
		}
		e.Mode = models.Mode(mode)
		e.Difficulty = models.Difficulty(difficulty)
		entries = append(entries, e)
	}
	log.Debug("found %d high scores", len(entries))
	return entries, rows.Err()
}

func (r *highScoreRepository) Replace(ctx context.Context, variant models.Variant, entries []models.HighScoreEntry) error {
	log := logger.FromContext(ctx).WithPrefix("high_score_repo")
	log.Debug("replacing high scores: variant=%s, count=%d", variant, len(entries))

	return r.db.Tx(ctx, func(tx *sql.Tx) error {
		if err := deleteVariant(ctx, tx, variant); err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}

		insert := sqlBuilder.
			Insert(highScoresTable).
			Columns("variant", "position", "score", "mode", "difficulty", "duration_minutes", "recorded_at")
		for i, e := range entries {
			insert = insert.Values(string(variant), i, e.Score, string(e.Mode), string(e.Difficulty), e.DurationMinutes, e.RecordedAt)
		}
		query, args, err := insert.ToSql()
		if err != nil {
			log.Error("failed to build insert: %v", err)
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Error("failed to insert high scores: %v", err)
			return err
		}
		return nil
	})
}

func (r *highScoreRepository) Clear(ctx context.Context, variant models.Variant) error {
	log := logger.FromContext(ctx).WithPrefix("high_score_repo")
	log.Info("clearing high scores: variant=%s", variant)

	return r.db.Tx(ctx, func(tx *sql.Tx) error {
		return deleteVariant(ctx, tx, variant)
	})
}

func deleteVariant(ctx context.Context, tx *sql.Tx, variant models.Variant) error {
	query, args, err := sqlBuilder.
		Delete(highScoresTable).
		Where(squirrel.Eq{"variant": string(variant)}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}
