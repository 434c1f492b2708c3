package drill

import (
	"context"
	"sort"

	"github.com/vytor/powerdrill/internal/logger"
	"github.com/vytor/powerdrill/internal/models"
	"github.com/vytor/powerdrill/internal/repository"
)

// MaxHighScores caps each variant's list.
const MaxHighScores = 5

// Rank inserts entry into list, orders by score descending and truncates.
// Equal scores keep insertion order, so a new entry ranks below older ties.
// list is not modified.
func Rank(list []models.HighScoreEntry, entry models.HighScoreEntry) []models.HighScoreEntry {
	out := make([]models.HighScoreEntry, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, entry)
	return normalize(out)
}

func normalize(list []models.HighScoreEntry) []models.HighScoreEntry {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score > list[j].Score
	})
	if len(list) > MaxHighScores {
		list = list[:MaxHighScores]
	}
	return list
}

// ScoreBoard caches each variant's ranked list and writes it back to the
// durable store after every record.
type ScoreBoard struct {
	repo  repository.HighScoreRepository
	lists map[models.Variant][]models.HighScoreEntry
}

func NewScoreBoard(repo repository.HighScoreRepository) *ScoreBoard {
	return &ScoreBoard{
		repo:  repo,
		lists: map[models.Variant][]models.HighScoreEntry{},
	}
}

// Load reads every variant's list from the store.
func (b *ScoreBoard) Load(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("scoreboard")
	for _, v := range models.Variants {
		entries, err := b.repo.List(ctx, v)
		if err != nil {
			log.Error("failed to load high scores: variant=%s: %v", v, err)
			return err
		}
		b.lists[v] = normalize(entries)
		log.Debug("loaded %d high scores for %s", len(b.lists[v]), v)
	}
	return nil
}

// Record ranks entry into the variant's list and persists the result.
// Custom difficulty results are never ranked. When the store fails the
// previous list is kept.
func (b *ScoreBoard) Record(ctx context.Context, variant models.Variant, entry models.HighScoreEntry) ([]models.HighScoreEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("scoreboard")
	if entry.Difficulty.IsCustom() {
		log.Debug("skipping custom difficulty result for %s", variant)
		return b.Top(variant), nil
	}

	updated := Rank(b.lists[variant], entry)
	if err := b.repo.Replace(ctx, variant, updated); err != nil {
		log.Error("failed to save high scores: variant=%s: %v", variant, err)
		return b.Top(variant), err
	}
	b.lists[variant] = updated
	log.Info("recorded score %d for %s/%s", entry.Score, variant, entry.Difficulty)
	return b.Top(variant), nil
}

// Top returns a copy of the variant's ranked list.
func (b *ScoreBoard) Top(variant models.Variant) []models.HighScoreEntry {
	return append([]models.HighScoreEntry{}, b.lists[variant]...)
}
