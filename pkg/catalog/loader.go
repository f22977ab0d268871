package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KurtErsin/perfume/pkg/models"
)

//go:embed catalog.yaml
var catalogRawData []byte

// ErrNotFound is returned by lookups for identifiers the catalog does not hold.
var ErrNotFound = errors.New("catalog: perfume not found")

// catalogFile is the top-level structure of the catalog YAML.
type catalogFile struct {
	Entries []models.Perfume `yaml:"entries"`
}

// Catalog provides lazy-loaded, read-only access to the perfume catalog.
type Catalog struct {
	once   sync.Once
	decode func() ([]models.Perfume, error)

	entries []models.Perfume
	bySlug  map[string]int
	byID    map[string]int
	brands  []string
	err     error
}

// NewCatalog creates a Catalog that will parse the embedded YAML on first access.
func NewCatalog() *Catalog {
	return &Catalog{decode: func() ([]models.Perfume, error) {
		return parse(catalogRawData)
	}}
}

// NewCatalogFromFile creates a Catalog backed by the YAML file at path.
// The file is read on first access.
func NewCatalogFromFile(path string) *Catalog {
	return &Catalog{decode: func() ([]models.Perfume, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %q: %w", path, err)
		}
		return parse(data)
	}}
}

// NewCatalogFromEntries creates a Catalog over an in-memory slice. The slice
// is copied; entries are validated on first access like any other source.
func NewCatalogFromEntries(entries []models.Perfume) *Catalog {
	cp := cloneEntries(entries)
	return &Catalog{decode: func() ([]models.Perfume, error) {
		return cp, nil
	}}
}

// Load forces the catalog to load and returns any load or validation error.
func (c *Catalog) Load() error {
	c.once.Do(c.load)
	return c.err
}

// Entries returns a copy of all catalog entries in natural order.
func (c *Catalog) Entries() ([]models.Perfume, error) {
	if err := c.Load(); err != nil {
		return nil, err
	}
	return cloneEntries(c.entries), nil
}

// Len returns the number of entries, or 0 if the catalog failed to load.
func (c *Catalog) Len() int {
	if c.Load() != nil {
		return 0
	}
	return len(c.entries)
}

// BySlug returns the perfume with the given slug.
func (c *Catalog) BySlug(slug string) (models.Perfume, error) {
	if err := c.Load(); err != nil {
		return models.Perfume{}, err
	}
	i, ok := c.bySlug[slug]
	if !ok {
		return models.Perfume{}, ErrNotFound
	}
	return clonePerfume(c.entries[i]), nil
}

// ByID returns the perfume with the given id.
func (c *Catalog) ByID(id string) (models.Perfume, error) {
	if err := c.Load(); err != nil {
		return models.Perfume{}, err
	}
	i, ok := c.byID[id]
	if !ok {
		return models.Perfume{}, ErrNotFound
	}
	return clonePerfume(c.entries[i]), nil
}

// Brands returns each distinct brand once, in order of first appearance.
func (c *Catalog) Brands() ([]string, error) {
	if err := c.Load(); err != nil {
		return nil, err
	}
	out := make([]string, len(c.brands))
	copy(out, c.brands)
	return out, nil
}

// load decodes, validates and indexes the catalog data.
func (c *Catalog) load() {
	entries, err := c.decode()
	if err != nil {
		c.err = err
		return
	}
	if err := validateEntries(entries); err != nil {
		c.err = err
		return
	}

	c.entries = entries
	c.bySlug = make(map[string]int, len(entries))
	c.byID = make(map[string]int, len(entries))
	seenBrand := make(map[string]bool)
	for i := range entries {
		c.bySlug[entries[i].Slug] = i
		c.byID[entries[i].ID] = i
		if !seenBrand[entries[i].Brand] {
			seenBrand[entries[i].Brand] = true
			c.brands = append(c.brands, entries[i].Brand)
		}
	}
}

func parse(data []byte) ([]models.Perfume, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse yaml: %w", err)
	}
	return f.Entries, nil
}

func clonePerfume(p models.Perfume) models.Perfume {
	notes := make([]models.Note, len(p.Notes))
	copy(notes, p.Notes)
	p.Notes = notes
	return p
}

func cloneEntries(entries []models.Perfume) []models.Perfume {
	out := make([]models.Perfume, len(entries))
	for i := range entries {
		out[i] = clonePerfume(entries[i])
	}
	return out
}
