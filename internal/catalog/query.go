package catalog

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KurtErsin/perfume/internal/filter"
	"github.com/KurtErsin/perfume/pkg/models"
)

// BrandGroup is one brand's share of a query result.
type BrandGroup struct {
	Brand    string           `json:"brand"`
	Perfumes []models.Perfume `json:"perfumes"`
}

// Result is the grouped, sorted output of a query. Groups are ordered by
// brand and perfumes within a group by name.
type Result struct {
	Groups []BrandGroup `json:"groups"`
	Total  int          `json:"total"`
}

// BrandCount returns the number of brand groups.
func (r Result) BrandCount() int {
	return len(r.Groups)
}

// Empty reports whether nothing matched.
func (r Result) Empty() bool {
	return r.Total == 0
}

// Perfumes flattens the groups in display order.
func (r Result) Perfumes() []models.Perfume {
	out := make([]models.Perfume, 0, r.Total)
	for _, g := range r.Groups {
		out = append(out, g.Perfumes...)
	}
	return out
}

// Summary renders the result size, e.g. "Showing 3 perfumes in 2 brands".
func (r Result) Summary() string {
	return fmt.Sprintf("Showing %d %s in %d %s",
		r.Total, plural(r.Total, "perfume"), r.BrandCount(), plural(r.BrandCount(), "brand"))
}

// Query filters entries with s, sorts the survivors by name and groups them
// by brand, using the collation rules of tag for both orderings. entries is
// not modified.
func Query(entries []models.Perfume, s filter.State, tag language.Tag) Result {
	matched := make([]models.Perfume, 0, len(entries))
	for i := range entries {
		if Matches(entries[i], s) {
			matched = append(matched, entries[i])
		}
	}

	// A Collator keeps internal buffers and must not be shared between goroutines.
	col := collate.New(tag)
	slices.SortStableFunc(matched, func(a, b models.Perfume) int {
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	index := make(map[string]int)
	var groups []BrandGroup
	for _, p := range matched {
		i, ok := index[p.Brand]
		if !ok {
			i = len(groups)
			index[p.Brand] = i
			groups = append(groups, BrandGroup{Brand: p.Brand})
		}
		groups[i].Perfumes = append(groups[i].Perfumes, p)
	}

	slices.SortFunc(groups, func(a, b BrandGroup) int {
		if c := col.CompareString(a.Brand, b.Brand); c != 0 {
			return c
		}
		return strings.Compare(a.Brand, b.Brand)
	})

	if groups == nil {
		groups = []BrandGroup{}
	}
	return Result{Groups: groups, Total: len(matched)}
}

// SortBrands orders brand names with the collation rules of tag.
func SortBrands(brands []string, tag language.Tag) []string {
	out := make([]string, len(brands))
	copy(out, brands)
	col := collate.New(tag)
	slices.SortFunc(out, func(a, b string) int {
		if c := col.CompareString(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return out
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
