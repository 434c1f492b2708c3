package ui

import (
	"fmt"

	"github.com/vytor/powerdrill/internal/models"
)

// ScoreLine formats one ranked entry for display.
func ScoreLine(rank int, e models.HighScoreEntry) string {
	return fmt.Sprintf("%d. %3d  %s · %s · %d min  %s",
		rank, e.Score, e.Mode.Label(), e.Difficulty.Label(), e.DurationMinutes, e.DisplayDate())
}
