// Package catalog provides the query engine that filters, sorts and groups the
// perfume catalog, the similarity-based recommender, and the JSON API over both.
package catalog

import (
	"golang.org/x/text/language"

	"github.com/KurtErsin/perfume/internal/filter"
	pkgcatalog "github.com/KurtErsin/perfume/pkg/catalog"
	"github.com/KurtErsin/perfume/pkg/models"
)

// Engine answers catalog queries against a loaded catalog.
type Engine struct {
	cat    *pkgcatalog.Catalog
	locale language.Tag
	w      Weights
	limit  int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLocale sets the collation used for name and brand ordering.
func WithLocale(tag language.Tag) Option {
	return func(e *Engine) { e.locale = tag }
}

// WithWeights overrides the recommendation weights. Weights that fail
// Validate are ignored.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		if w.Validate() == nil {
			e.w = w
		}
	}
}

// WithRecommendLimit lowers the number of recommendations. Non-positive
// values are ignored and values above DefaultRecommendLimit are clamped.
func WithRecommendLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.limit = min(n, DefaultRecommendLimit)
		}
	}
}

// NewEngine creates a new engine backed by the given catalog.
func NewEngine(cat *pkgcatalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		cat:    cat,
		locale: language.English,
		w:      DefaultWeights(),
		limit:  DefaultRecommendLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the backing catalog.
func (e *Engine) Catalog() *pkgcatalog.Catalog {
	return e.cat
}

// Query filters the catalog with s and groups the result by brand.
func (e *Engine) Query(s filter.State) (Result, error) {
	entries, err := e.cat.Entries()
	if err != nil {
		return Result{}, err
	}
	return Query(entries, s, e.locale), nil
}

// Perfume looks up a single perfume by slug.
func (e *Engine) Perfume(slug string) (models.Perfume, error) {
	return e.cat.BySlug(slug)
}

// Recommend returns the perfumes most similar to ref.
func (e *Engine) Recommend(ref models.Perfume) ([]models.Perfume, error) {
	entries, err := e.cat.Entries()
	if err != nil {
		return nil, err
	}
	return Recommend(ref, entries, e.w, e.limit), nil
}

// RecommendBySlug resolves slug and returns its recommendations.
func (e *Engine) RecommendBySlug(slug string) (models.Perfume, []models.Perfume, error) {
	ref, err := e.cat.BySlug(slug)
	if err != nil {
		return models.Perfume{}, nil, err
	}
	recs, err := e.Recommend(ref)
	if err != nil {
		return models.Perfume{}, nil, err
	}
	return ref, recs, nil
}

// NewArrivals returns the new arrivals page content narrowed by q.
func (e *Engine) NewArrivals(q NewsQuery) (NewsResult, error) {
	entries, err := e.cat.Entries()
	if err != nil {
		return NewsResult{}, err
	}
	return NewArrivals(entries, q), nil
}

// Featured returns the first n catalog entries.
func (e *Engine) Featured(n int) ([]models.Perfume, error) {
	entries, err := e.cat.Entries()
	if err != nil {
		return nil, err
	}
	return Featured(entries, n), nil
}

// Brands returns every brand in collation order.
func (e *Engine) Brands() ([]string, error) {
	brands, err := e.cat.Brands()
	if err != nil {
		return nil, err
	}
	return SortBrands(brands, e.locale), nil
}
