package catalog

import (
	"strings"

	"github.com/KurtErsin/perfume/internal/filter"
	"github.com/KurtErsin/perfume/pkg/models"
)

// Matches reports whether p passes every rule of s: search, gender, notes,
// brand and the niche, 100ml and new toggles.
func Matches(p models.Perfume, s filter.State) bool {
	if s.Search != "" && !matchesSearch(p, s.Search) {
		return false
	}
	if !s.Gender.Allows(p.Gender) {
		return false
	}
	if !hasAllNotes(p, s.Notes) {
		return false
	}
	if s.BrandSelected() && p.Brand != s.Brand {
		return false
	}
	if s.Niche && !p.IsNiche {
		return false
	}
	if s.Size100ml && !p.Is100ml {
		return false
	}
	if s.New && !p.IsNew {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match against the name,
// the brand, or any note.
func matchesSearch(p models.Perfume, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Brand), q) {
		return true
	}
	for _, n := range p.Notes {
		if strings.Contains(strings.ToLower(string(n)), q) {
			return true
		}
	}
	return false
}

// hasAllNotes requires every wanted note to be present on p.
func hasAllNotes(p models.Perfume, want []models.Note) bool {
	for _, n := range want {
		if !p.HasNote(n) {
			return false
		}
	}
	return true
}
