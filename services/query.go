package services

import (
	"slices"
	"strings"

	"github.com/inventoryhub/parts-service/models"
)

// DefaultSearchFields are the fields consulted when a search request does
// not name any.
var DefaultSearchFields = []string{"partNumber", "description", "category"}

// SearchParts returns the parts whose named fields contain query as a
// case-insensitive substring. A part matches if any field matches. An empty
// query matches everything.
func SearchParts(parts []models.Part, query string, fields []string) []models.Part {
	if len(fields) == 0 {
		fields = DefaultSearchFields
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(parts)
	}

	matched := make([]models.Part, 0)
	for _, p := range parts {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(p.Field(f)), q) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

// Constraint restricts one field: an exact value, membership in a set, or a
// numeric range. A zero constraint passes everything.
type Constraint struct {
	Equals string   `json:"equals,omitempty"`
	In     []string `json:"in,omitempty"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
}

func (c Constraint) isEmpty() bool {
	return c.Equals == "" && len(c.In) == 0 && c.Min == nil && c.Max == nil
}

// FilterSpec maps field names to constraints. A part matches only if every
// supplied constraint passes.
type FilterSpec map[string]Constraint

// FilterParts applies spec to the collection. String comparisons are
// case-insensitive, matching part-number semantics elsewhere.
func FilterParts(parts []models.Part, spec FilterSpec) []models.Part {
	matched := make([]models.Part, 0)
	for _, p := range parts {
		if matchesSpec(p, spec) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matchesSpec(p models.Part, spec FilterSpec) bool {
	for field, c := range spec {
		if c.isEmpty() {
			continue
		}
		if c.Min != nil || c.Max != nil {
			v, ok := p.NumericField(field)
			if !ok {
				return false
			}
			if c.Min != nil && v < *c.Min {
				return false
			}
			if c.Max != nil && v > *c.Max {
				return false
			}
			continue
		}
		value := p.Field(field)
		if c.Equals != "" && !strings.EqualFold(value, c.Equals) {
			return false
		}
		if len(c.In) > 0 {
			found := false
			for _, candidate := range c.In {
				if strings.EqualFold(value, candidate) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}
