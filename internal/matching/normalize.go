// Package matching ranks catalog recipes against a set of available
// ingredients. It is pure computation over a catalog snapshot handed in
// by the caller: no database access, no shared state.
//
// Two ingestion paths feed it. The catalog path works on ingredient IDs
// resolved against the catalog; the free-text path works on raw
// ingredient names as produced by AI detection. Both are adapters over
// the same IngredientSet membership test.
package matching

import (
	"strings"

	"github.com/google/uuid"

	"github.com/pantrypal/backend/internal/models"
)

// CanonicalName returns the canonical form of an ingredient name:
// trimmed and lower-cased.
func CanonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NamesMatch reports whether two ingredient names refer to the same
// ingredient. After canonicalization, either name containing the other
// counts as a match, so the detected "cherry tomatoes" satisfies the
// catalog entry "tomatoes" and vice versa.
//
// This is deliberately loose: short names like "egg" will match any
// longer string containing them. That imprecision is an accepted
// trade-off for recall on noisy AI-generated names, not a bug.
func NamesMatch(a, b string) bool {
	a, b = CanonicalName(a), CanonicalName(b)
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// IngredientSet reports whether a recipe's declared ingredient is
// available. Implemented by IDSet (catalog path) and NameSet
// (free-text path).
type IngredientSet interface {
	Contains(ri models.RecipeIngredient) bool
	Len() int
}

// IDSet is the catalog-path adapter: exact membership over ingredient IDs.
type IDSet map[uuid.UUID]struct{}

// NewIDSet builds an IDSet from resolved catalog ingredient IDs.
func NewIDSet(ids []uuid.UUID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Contains(ri models.RecipeIngredient) bool {
	_, ok := s[ri.IngredientID]
	return ok
}

func (s IDSet) Len() int {
	return len(s)
}

// NameSet is the free-text-path adapter: loose name membership over
// detected ingredient names.
type NameSet []string

// NewNameSet builds a NameSet from free-text ingredient names,
// canonicalizing each and dropping empties.
func NewNameSet(names []string) NameSet {
	s := make(NameSet, 0, len(names))
	for _, n := range names {
		if c := CanonicalName(n); c != "" {
			s = append(s, c)
		}
	}
	return s
}

func (s NameSet) Contains(ri models.RecipeIngredient) bool {
	return s.Has(ri.Ingredient.Name)
}

// Has reports whether any member of the set matches the given name
// under the bidirectional substring test.
func (s NameSet) Has(name string) bool {
	for _, n := range s {
		if NamesMatch(n, name) {
			return true
		}
	}
	return false
}

func (s NameSet) Len() int {
	return len(s)
}
