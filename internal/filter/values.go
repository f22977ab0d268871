package filter

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/KurtErsin/perfume/pkg/models"
)

// Query parameter names used by the API and the browse page.
const (
	ParamSearch    = "search"
	ParamGender    = "gender"
	ParamNote      = "note"
	ParamBrand     = "brand"
	ParamSize100ml = "size100ml"
	ParamNiche     = "niche"
	ParamNew       = "new"
)

// FromValues builds a State from URL query parameters. Absent parameters
// keep their default. Unknown genders or notes are reported as errors.
func FromValues(v url.Values) (State, error) {
	s := Default()

	if raw := v.Get(ParamGender); raw != "" {
		g, ok := ParseGenderFilter(raw)
		if !ok {
			return State{}, fmt.Errorf("unknown gender %q", raw)
		}
		s.Gender = g
	}

	for _, raw := range v[ParamNote] {
		n, ok := models.ParseNote(raw)
		if !ok {
			return State{}, fmt.Errorf("unknown note %q", raw)
		}
		if !s.HasNote(n) {
			s.Notes = append(s.Notes, n)
		}
	}

	if b := v.Get(ParamBrand); b != "" {
		s.Brand = b
	}
	s.Search = v.Get(ParamSearch)

	var err error
	if s.Size100ml, err = parseFlag(v, ParamSize100ml); err != nil {
		return State{}, err
	}
	if s.Niche, err = parseFlag(v, ParamNiche); err != nil {
		return State{}, err
	}
	if s.New, err = parseFlag(v, ParamNew); err != nil {
		return State{}, err
	}
	return s, nil
}

// Values encodes the non-default parts of s as URL query parameters.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Search != "" {
		v.Set(ParamSearch, s.Search)
	}
	if s.Gender != GenderAny {
		v.Set(ParamGender, string(s.Gender))
	}
	for _, n := range s.Notes {
		v.Add(ParamNote, string(n))
	}
	if s.BrandSelected() {
		v.Set(ParamBrand, s.Brand)
	}
	if s.Size100ml {
		v.Set(ParamSize100ml, "true")
	}
	if s.Niche {
		v.Set(ParamNiche, "true")
	}
	if s.New {
		v.Set(ParamNew, "true")
	}
	return v
}

func parseFlag(v url.Values, key string) (bool, error) {
	raw := v.Get(key)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return b, nil
}
