package catalog

import (
	"errors"
	"slices"

	"github.com/KurtErsin/perfume/pkg/models"
)

// DefaultRecommendLimit is the number of recommendations returned when no
// limit is configured. It is also the most Recommend ever returns.
const DefaultRecommendLimit = 4

// Weights scales each similarity signal. Note is applied per shared note.
type Weights struct {
	Note   int `mapstructure:"note" json:"note"`
	Brand  int `mapstructure:"brand" json:"brand"`
	Gender int `mapstructure:"gender" json:"gender"`
}

// DefaultWeights lets note overlap dominate, with brand ranking above gender
// as a tie-breaker.
func DefaultWeights() Weights {
	return Weights{Note: 100, Brand: 10, Gender: 1}
}

// Validate reports weights that would break the ranking order: one more
// shared note must outrank a brand and gender match together, and a brand
// match must outrank a gender match.
func (w Weights) Validate() error {
	switch {
	case w.Note < 0 || w.Brand < 0 || w.Gender < 0:
		return errors.New("recommend weights must not be negative")
	case w.Note <= w.Brand+w.Gender:
		return errors.New("recommend weights: note must exceed brand + gender")
	case w.Brand <= w.Gender:
		return errors.New("recommend weights: brand must exceed gender")
	}
	return nil
}

// Score rates how similar candidate is to ref under w. Each shared note
// counts once, however often it is listed.
func (w Weights) Score(ref, candidate models.Perfume) int {
	score := 0
	seen := make(map[models.Note]bool, len(candidate.Notes))
	for _, n := range candidate.Notes {
		if !seen[n] && ref.HasNote(n) {
			score += w.Note
		}
		seen[n] = true
	}
	if candidate.Brand == ref.Brand {
		score += w.Brand
	}
	if candidate.Gender == ref.Gender {
		score += w.Gender
	}
	return score
}

type scored struct {
	perfume models.Perfume
	score   int
}

// Recommend returns up to limit entries most similar to ref, best first.
// limit is capped at DefaultRecommendLimit. ref itself and candidates
// scoring zero are never returned. Equal scores keep their order in entries.
func Recommend(ref models.Perfume, entries []models.Perfume, w Weights, limit int) []models.Perfume {
	if limit <= 0 {
		return []models.Perfume{}
	}
	limit = min(limit, DefaultRecommendLimit)

	candidates := make([]scored, 0, len(entries))
	for i := range entries {
		if entries[i].ID == ref.ID {
			continue
		}
		if s := w.Score(ref, entries[i]); s > 0 {
			candidates = append(candidates, scored{perfume: entries[i], score: s})
		}
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		return b.score - a.score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]models.Perfume, len(candidates))
	for i := range candidates {
		out[i] = candidates[i].perfume
	}
	return out
}
