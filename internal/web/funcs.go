package web

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/KurtErsin/perfume/pkg/models"
)

var funcs = template.FuncMap{
	"dict":        dict,
	"noteClass":   noteClass,
	"genderLabel": genderLabel,
}

// dict builds a map from alternating keys and values so a sub-template can
// take several arguments.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

// noteClass is the badge CSS class for a note, e.g. "badge-white-floral".
func noteClass(n models.Note) string {
	return "badge-" + strings.ReplaceAll(string(n), " ", "-")
}

func genderLabel(g models.Gender) string {
	switch g {
	case models.GenderMale:
		return "Male"
	case models.GenderFemale:
		return "Female"
	case models.GenderUnisex:
		return "Unisex"
	}
	return string(g)
}
