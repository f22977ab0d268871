// Package shoplink maps perfume IDs to their external shop pages.
package shoplink

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Resolver looks up the shop URL for a perfume ID.
type Resolver interface {
	URL(id string) (string, bool)
}

// Static is a fixed id to URL table, typically loaded from config.
type Static struct {
	links map[string]string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewStatic validates every URL in links and returns a Static resolver over a
// copy of the table. Empty URLs are rejected.
func NewStatic(links map[string]string) (*Static, error) {
	var errs []error
	for _, id := range slices.Sorted(maps.Keys(links)) {
		if err := validate.Var(links[id], "required,http_url"); err != nil {
			errs = append(errs, fmt.Errorf("shop link %q: invalid url %q", id, links[id]))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &Static{links: maps.Clone(links)}, nil
}

// NewFromHandles builds a Static resolver whose URLs are base joined with
// each perfume's product handle. Explicit links win over handles for the
// same ID.
func NewFromHandles(base string, handles, links map[string]string) (*Static, error) {
	all := make(map[string]string, len(handles)+len(links))
	if len(handles) > 0 {
		if err := validate.Var(base, "required,http_url"); err != nil {
			return nil, fmt.Errorf("shop base url %q is invalid", base)
		}
		prefix := strings.TrimRight(base, "/") + "/"
		for id, handle := range handles {
			all[id] = prefix + url.PathEscape(strings.Trim(handle, "/"))
		}
	}
	maps.Copy(all, links)
	return NewStatic(all)
}

// URL implements Resolver.
func (s *Static) URL(id string) (string, bool) {
	if s == nil {
		return "", false
	}
	u, ok := s.links[id]
	return u, ok
}

// Len returns the number of known links.
func (s *Static) Len() int {
	if s == nil {
		return 0
	}
	return len(s.links)
}

// None resolves nothing.
type None struct{}

// URL implements Resolver.
func (None) URL(string) (string, bool) { return "", false }
