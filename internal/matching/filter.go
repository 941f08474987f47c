package matching

import "github.com/pantrypal/backend/internal/models"

// DietaryPreferences are the four independent dietary flags a user can
// request. A false flag imposes no restriction.
type DietaryPreferences struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"gluten_free"`
	Keto       bool `json:"keto"`
}

// Constraints are the hard constraints applied by Filter. MaxCookTime
// is unconstrained when nil.
type Constraints struct {
	DietaryPreferences
	MaxCookTime *int
}

// Filter returns the subset of recipes satisfying every active
// constraint. Dietary flags are whitelist-only: requesting vegetarian
// keeps only vegetarian recipes, but not requesting it excludes
// nothing. Pure function over the snapshot; the input slice is not
// modified.
func Filter(recipes []models.Recipe, c Constraints) []models.Recipe {
	out := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if c.Vegetarian && !r.IsVegetarian {
			continue
		}
		if c.Vegan && !r.IsVegan {
			continue
		}
		if c.GlutenFree && !r.IsGlutenFree {
			continue
		}
		if c.Keto && !r.IsKeto {
			continue
		}
		if c.MaxCookTime != nil && r.CookTime > *c.MaxCookTime {
			continue
		}
		out = append(out, r)
	}
	return out
}
