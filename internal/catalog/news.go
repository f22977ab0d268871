package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KurtErsin/perfume/pkg/models"
)

// FeaturedNewCount is how many new arrivals are featured ahead of the list.
const FeaturedNewCount = 6

// TrendingNoteCount is how many notes the trending list holds.
const TrendingNoteCount = 4

// NewsQuery narrows the new arrivals list. The zero value keeps everything.
type NewsQuery struct {
	Search string        `json:"search,omitempty"`
	Gender models.Gender `json:"gender,omitempty"`
}

// NewsResult is the new arrivals page content.
type NewsResult struct {
	Featured []models.Perfume `json:"featured"`
	Items    []models.Perfume `json:"items"`
	Trending []NoteCount      `json:"trending"`
	Total    int              `json:"total"`
	Matched  int              `json:"matched"`
}

// NoteCount is how many perfumes carry a note.
type NoteCount struct {
	Note  models.Note `json:"note"`
	Count int         `json:"count"`
}

// Summary renders e.g. "Showing 3 of 7 new arrivals".
func (r NewsResult) Summary() string {
	return fmt.Sprintf("Showing %d of %d new arrivals", r.Matched, r.Total)
}

// NewArrivals selects the entries flagged new, in catalog order. Search is a
// case-insensitive substring of the name or brand; Gender, when set, must
// match exactly, so unisex items do not appear under male or female.
func NewArrivals(entries []models.Perfume, q NewsQuery) NewsResult {
	var all []models.Perfume
	for i := range entries {
		if entries[i].IsNew {
			all = append(all, entries[i])
		}
	}

	featured := all
	if len(featured) > FeaturedNewCount {
		featured = featured[:FeaturedNewCount]
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	items := make([]models.Perfume, 0, len(all))
	for _, p := range all {
		if q.Gender != "" && p.Gender != q.Gender {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) {
			continue
		}
		items = append(items, p)
	}

	return NewsResult{
		Featured: append([]models.Perfume{}, featured...),
		Items:    items,
		Trending: TrendingNotes(all, TrendingNoteCount),
		Total:    len(all),
		Matched:  len(items),
	}
}

// TrendingNotes counts notes across entries and returns the n most common.
// Equal counts keep vocabulary order.
func TrendingNotes(entries []models.Perfume, n int) []NoteCount {
	counts := make(map[models.Note]int)
	for _, p := range entries {
		for _, note := range p.Notes {
			counts[note]++
		}
	}
	out := make([]NoteCount, 0, len(counts))
	for _, note := range models.AllNotes() {
		if c := counts[note]; c > 0 {
			out = append(out, NoteCount{Note: note, Count: c})
		}
	}
	slices.SortStableFunc(out, func(a, b NoteCount) int { return b.Count - a.Count })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Featured returns the first n entries in catalog order.
func Featured(entries []models.Perfume, n int) []models.Perfume {
	if n < 0 {
		n = 0
	}
	if n > len(entries) {
		n = len(entries)
	}
	return append([]models.Perfume{}, entries[:n]...)
}
