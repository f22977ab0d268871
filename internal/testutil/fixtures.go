package testutil

import (
	"strings"

	"github.com/google/uuid"

	"github.com/KurtErsin/perfume/pkg/models"
)

// NewPerfume returns a valid Perfume suitable for test fixtures. The slug is
// derived from the name unless overridden.
func NewPerfume(opts ...func(*models.Perfume)) models.Perfume {
	p := models.Perfume{
		ID:     uuid.New().String(),
		Name:   "Test Perfume",
		Brand:  "Test House",
		Gender: models.GenderUnisex,
		Notes:  []models.Note{models.NoteWoody},
	}
	for _, opt := range opts {
		opt(&p)
	}
	if p.Slug == "" {
		p.Slug = slugify(p.Name)
	}
	return p
}

// WithID sets the perfume ID.
func WithID(id string) func(*models.Perfume) {
	return func(p *models.Perfume) { p.ID = id }
}

// WithName sets the perfume name.
func WithName(name string) func(*models.Perfume) {
	return func(p *models.Perfume) { p.Name = name }
}

// WithBrand sets the brand.
func WithBrand(brand string) func(*models.Perfume) {
	return func(p *models.Perfume) { p.Brand = brand }
}

// WithGender sets the gender.
func WithGender(g models.Gender) func(*models.Perfume) {
	return func(p *models.Perfume) { p.Gender = g }
}

// WithNotes replaces the note list.
func WithNotes(notes ...models.Note) func(*models.Perfume) {
	return func(p *models.Perfume) { p.Notes = notes }
}

// WithSlug sets the slug explicitly.
func WithSlug(slug string) func(*models.Perfume) {
	return func(p *models.Perfume) { p.Slug = slug }
}

// Niche marks the perfume as niche.
func Niche() func(*models.Perfume) {
	return func(p *models.Perfume) { p.IsNiche = true }
}

// Bottle100ml marks the perfume as available in 100ml.
func Bottle100ml() func(*models.Perfume) {
	return func(p *models.Perfume) { p.Is100ml = true }
}

// New marks the perfume as a new arrival.
func New() func(*models.Perfume) {
	return func(p *models.Perfume) { p.IsNew = true }
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
