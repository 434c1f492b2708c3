package drill

import (
	"sort"

	"github.com/samber/lo"
	"github.com/vytor/powerdrill/internal/models"
)

// AttemptLog collects solved questions for the end-of-game summary.
type AttemptLog struct {
	records []models.AttemptRecord
}

func (l *AttemptLog) Append(r models.AttemptRecord) {
	l.records = append(l.records, r)
}

func (l *AttemptLog) Len() int { return len(l.records) }

func (l *AttemptLog) Reset() { l.records = nil }

// Finalize keeps one record per prompt, the slowest one, ordered slowest
// first. Equal times keep the order in which prompts were first seen.
func (l *AttemptLog) Finalize() []models.AttemptRecord {
	if len(l.records) == 0 {
		return []models.AttemptRecord{}
	}

	byPrompt := lo.GroupBy(l.records, func(r models.AttemptRecord) string { return r.PromptText })
	prompts := lo.Uniq(lo.Map(l.records, func(r models.AttemptRecord, _ int) string { return r.PromptText }))

	out := lo.Map(prompts, func(p string, _ int) models.AttemptRecord {
		return lo.MaxBy(byPrompt[p], func(a, b models.AttemptRecord) bool {
			return a.TimeSeconds > b.TimeSeconds
		})
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TimeSeconds > out[j].TimeSeconds
	})
	return out
}
