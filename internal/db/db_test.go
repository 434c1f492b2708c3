package db_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/powerdrill/internal/db"
)

func TestOpen_AppliesMigrationsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drill.db")

	first, err := db.Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Reopening must skip the already applied migration.
	second, err := db.Open(path)
	require.NoError(t, err)
	defer second.Close()

	var count int
	err = second.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM schema_migrations`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestTx_RollsBackOnError(t *testing.T) {
	database, err := db.Open("file::memory:")
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()
	boom := errors.New("boom")
	err = database.Tx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
INSERT INTO high_scores (variant, position, score, mode, difficulty, duration_minutes, recorded_at)
VALUES ('square', 0, 3, 'direct', 'easy', 1, CURRENT_TIMESTAMP)`)
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, database.QueryRowContext(ctx, `SELECT COUNT(*) FROM high_scores`).Scan(&count))
	assert.Zero(t, count)
}
