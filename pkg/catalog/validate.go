package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/KurtErsin/perfume/pkg/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validator returns the shared validator with the catalog's custom tags
// ("note" and "slug") registered. It is safe for concurrent use.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("note", func(fl validator.FieldLevel) bool {
			return models.Note(fl.Field().String()).Valid()
		})
		_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// validateEntries checks every record against its struct tags and enforces
// catalog-wide uniqueness of id and slug.
func validateEntries(entries []models.Perfume) error {
	v := Validator()
	ids := make(map[string]int, len(entries))
	slugs := make(map[string]int, len(entries))

	var errs []error
	for i := range entries {
		p := &entries[i]
		if err := v.Struct(p); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				for _, fe := range verrs {
					errs = append(errs, fmt.Errorf("entry %d (id %q): field %s failed %q", i, p.ID, fe.Field(), fe.Tag()))
				}
				continue
			}
			errs = append(errs, fmt.Errorf("entry %d (id %q): %w", i, p.ID, err))
			continue
		}
		if j, dup := ids[p.ID]; dup {
			errs = append(errs, fmt.Errorf("entry %d: duplicate id %q (first at entry %d)", i, p.ID, j))
		} else {
			ids[p.ID] = i
		}
		if j, dup := slugs[p.Slug]; dup {
			errs = append(errs, fmt.Errorf("entry %d: duplicate slug %q (first at entry %d)", i, p.Slug, j))
		} else {
			slugs[p.Slug] = i
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog: invalid data: %w", errors.Join(errs...))
	}
	return nil
}
