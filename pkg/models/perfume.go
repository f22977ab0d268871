package models

import (
	"regexp"
	"strings"
)

// Gender is the audience a perfume is marketed to.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

// Genders lists every valid Gender in display order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderUnisex}
}

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnisex:
		return true
	}
	return false
}

// ParseGender converts a case-insensitive string to a Gender.
func ParseGender(s string) (Gender, bool) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	return g, g.Valid()
}

// Perfume is a single catalog record. Records are built once when the
// catalog loads and are never modified afterwards.
type Perfume struct {
	ID      string `json:"id" yaml:"id" validate:"required"`
	Name    string `json:"name" yaml:"name" validate:"required"`
	Brand   string `json:"brand" yaml:"brand" validate:"required"`
	Gender  Gender `json:"gender" yaml:"gender" validate:"required,oneof=male female unisex"`
	Notes   []Note `json:"notes" yaml:"notes" validate:"required,min=1,unique,dive,note"`
	Slug    string `json:"slug" yaml:"slug" validate:"required,slug"`
	IsNiche bool   `json:"is_niche" yaml:"is_niche"`
	Is100ml bool   `json:"is_100ml" yaml:"is_100ml"`
	IsNew   bool   `json:"is_new" yaml:"is_new"`
}

// sizeCodePattern matches the parenthetical size/gender code some names carry,
// e.g. "(M100)" or "(Women 50)".
var sizeCodePattern = regexp.MustCompile(`\([WMU][a-z]*\s*\d+\)`)

// DisplayName returns Name with any size/gender code removed.
func (p Perfume) DisplayName() string {
	return strings.TrimSpace(sizeCodePattern.ReplaceAllString(p.Name, ""))
}

// SizeCode returns the first size/gender code embedded in Name, or "".
func (p Perfume) SizeCode() string {
	return sizeCodePattern.FindString(p.Name)
}

// HasNote reports whether n is one of the perfume's notes.
func (p Perfume) HasNote(n Note) bool {
	for _, have := range p.Notes {
		if have == n {
			return true
		}
	}
	return false
}
