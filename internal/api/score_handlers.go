package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"github.com/vytor/powerdrill/internal/errors"
	"github.com/vytor/powerdrill/internal/models"
)

type scoreEntryResponse struct {
	Rank            int       `json:"rank"`
	Score           int       `json:"score"`
	Mode            string    `json:"mode"`
	Difficulty      string    `json:"difficulty"`
	DurationMinutes int       `json:"duration_minutes"`
	RecordedAt      time.Time `json:"recorded_at"`
	Date            string    `json:"date"`
}

func toScoreResponses(entries []models.HighScoreEntry) []scoreEntryResponse {
	return lo.Map(entries, func(e models.HighScoreEntry, i int) scoreEntryResponse {
		return scoreEntryResponse{
			Rank:            i + 1,
			Score:           e.Score,
			Mode:            string(e.Mode),
			Difficulty:      string(e.Difficulty),
			DurationMinutes: e.DurationMinutes,
			RecordedAt:      e.RecordedAt,
			Date:            e.DisplayDate(),
		}
	})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	all, err := s.ScoreService.AllScores(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	body := make(map[string][]scoreEntryResponse, len(all))
	for variant, entries := range all {
		body[string(variant)] = toScoreResponses(entries)
	}
	writeJSON(w, r, http.StatusOK, body)
}

func (s *Server) handleVariantScores(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "variant")
	variant, err := models.ParseVariant(raw)
	if err != nil {
		handleError(w, r, errors.NewNotFoundError("variant", raw))
		return
	}

	entries, err := s.ScoreService.TopScores(r.Context(), variant)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"variant": string(variant),
		"scores":  toScoreResponses(entries),
	})
}
