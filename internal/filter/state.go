// Package filter holds the browsing filter state and the manager that owns it
// for a single session.
package filter

import (
	"strings"

	"github.com/KurtErsin/perfume/pkg/models"
)

// GenderFilter restricts results by audience. GenderAny applies no restriction.
type GenderFilter string

const (
	GenderAny    GenderFilter = ""
	GenderMale   GenderFilter = GenderFilter(models.GenderMale)
	GenderFemale GenderFilter = GenderFilter(models.GenderFemale)
	GenderUnisex GenderFilter = GenderFilter(models.GenderUnisex)
)

// BrandAll is the brand selection that applies no restriction.
const BrandAll = "all"

// ParseGenderFilter accepts a perfume gender or one of the "no restriction"
// spellings ("", "all", "none").
func ParseGenderFilter(s string) (GenderFilter, bool) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", "all", "none":
		return GenderAny, true
	default:
		g, ok := models.ParseGender(v)
		if !ok {
			return GenderAny, false
		}
		return GenderFilter(g), true
	}
}

// Allows reports whether a perfume of gender g passes the filter. Male and
// female selections also admit unisex perfumes; unisex admits only unisex.
func (f GenderFilter) Allows(g models.Gender) bool {
	switch f {
	case GenderAny:
		return true
	case GenderMale:
		return g == models.GenderMale || g == models.GenderUnisex
	case GenderFemale:
		return g == models.GenderFemale || g == models.GenderUnisex
	case GenderUnisex:
		return g == models.GenderUnisex
	}
	return true
}

// State is the current set of filter selections plus the three tag toggles.
// It is a value: every transition returns a new State and never shares the
// Notes backing array with its input.
type State struct {
	Gender GenderFilter  `json:"gender"`
	Notes  []models.Note `json:"notes"`
	Brand  string        `json:"brand"`
	Search string        `json:"search"`

	Size100ml bool `json:"size_100ml"`
	Niche     bool `json:"niche"`
	New       bool `json:"new"`
}

// Default returns the empty state a session starts with.
func Default() State {
	return State{Gender: GenderAny, Notes: []models.Note{}, Brand: BrandAll}
}

// ToggleGender selects g, or clears the gender selection if g is already selected.
func (s State) ToggleGender(g GenderFilter) State {
	out := s.clone()
	if out.Gender == g {
		out.Gender = GenderAny
	} else {
		out.Gender = g
	}
	return out
}

// SetGender sets the gender selection directly.
func (s State) SetGender(g GenderFilter) State {
	out := s.clone()
	out.Gender = g
	return out
}

// SetBrand sets the brand selection. An empty brand means BrandAll.
func (s State) SetBrand(b string) State {
	out := s.clone()
	if b == "" {
		b = BrandAll
	}
	out.Brand = b
	return out
}

// SetSearch sets the free-text search term.
func (s State) SetSearch(q string) State {
	out := s.clone()
	out.Search = q
	return out
}

// ToggleNote adds n to the selected notes, or removes it if present.
func (s State) ToggleNote(n models.Note) State {
	out := s.clone()
	for i, have := range out.Notes {
		if have == n {
			out.Notes = append(out.Notes[:i], out.Notes[i+1:]...)
			return out
		}
	}
	out.Notes = append(out.Notes, n)
	return out
}

// SetSize100ml sets the 100ml toggle.
func (s State) SetSize100ml(on bool) State {
	out := s.clone()
	out.Size100ml = on
	return out
}

// SetNiche sets the niche toggle.
func (s State) SetNiche(on bool) State {
	out := s.clone()
	out.Niche = on
	return out
}

// SetNew sets the new-arrivals toggle.
func (s State) SetNew(on bool) State {
	out := s.clone()
	out.New = on
	return out
}

// Clear returns the default state.
func (s State) Clear() State {
	return Default()
}

// GenderActive reports whether g is the current gender selection.
func (s State) GenderActive(g GenderFilter) bool {
	return s.Gender == g
}

// HasNote reports whether n is selected.
func (s State) HasNote(n models.Note) bool {
	for _, have := range s.Notes {
		if have == n {
			return true
		}
	}
	return false
}

// BrandSelected reports whether a specific brand restriction is in effect.
func (s State) BrandSelected() bool {
	return s.Brand != "" && s.Brand != BrandAll
}

// HasActiveFilters reports whether any selection other than gender narrows
// the result. Gender is shown separately in the header and does not count.
func (s State) HasActiveFilters() bool {
	return len(s.Notes) > 0 || s.BrandSelected() || s.Search != "" ||
		s.Size100ml || s.Niche || s.New
}

// ActiveCount returns the number of narrowing selections, counting each
// selected note individually.
func (s State) ActiveCount() int {
	n := len(s.Notes)
	for _, on := range []bool{s.Gender != GenderAny, s.BrandSelected(), s.Search != "", s.Size100ml, s.Niche, s.New} {
		if on {
			n++
		}
	}
	return n
}

// Equal reports whether two states select the same thing. Note order matters
// for display and is compared too.
func (s State) Equal(o State) bool {
	if s.Gender != o.Gender || s.Brand != o.Brand || s.Search != o.Search ||
		s.Size100ml != o.Size100ml || s.Niche != o.Niche || s.New != o.New ||
		len(s.Notes) != len(o.Notes) {
		return false
	}
	for i := range s.Notes {
		if s.Notes[i] != o.Notes[i] {
			return false
		}
	}
	return true
}

func (s State) clone() State {
	notes := make([]models.Note, len(s.Notes))
	copy(notes, s.Notes)
	s.Notes = notes
	return s
}
