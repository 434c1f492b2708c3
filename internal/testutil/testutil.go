package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vytor/powerdrill/internal/db"
	"github.com/vytor/powerdrill/internal/models"
)

// NewTestDB opens an in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open("file::memory:")
	require.NoError(t, err)
	return database
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// FixedClock returns a clock that reports start and advances only when the
// returned advance func is called.
func FixedClock(start time.Time) (now func() time.Time, advance func(time.Duration)) {
	current := start
	return func() time.Time { return current },
		func(d time.Duration) { current = current.Add(d) }
}

// Entry builds a high score entry for preset difficulties.
func Entry(score int, difficulty models.Difficulty, recordedAt time.Time) models.HighScoreEntry {
	return models.HighScoreEntry{
		Score:           score,
		Mode:            models.ModeDirect,
		Difficulty:      difficulty,
		DurationMinutes: 1,
		RecordedAt:      recordedAt,
	}
}
