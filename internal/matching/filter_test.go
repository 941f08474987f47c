package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pantrypal/backend/internal/models"
)

func intPtr(v int) *int { return &v }

func TestFilterVegetarian(t *testing.T) {
	catalog := []models.Recipe{
		{ID: uuid.New(), Title: "Caprese", IsVegetarian: true},
		{ID: uuid.New(), Title: "Steak"},
		{ID: uuid.New(), Title: "Vegan Bowl", IsVegetarian: true, IsVegan: true},
	}

	got := Filter(catalog, Constraints{DietaryPreferences: DietaryPreferences{Vegetarian: true}})

	assert.Len(t, got, 2)
	for _, r := range got {
		assert.True(t, r.IsVegetarian)
	}
	// The result is a subset of the catalog, in catalog order.
	assert.Equal(t, "Caprese", got[0].Title)
	assert.Equal(t, "Vegan Bowl", got[1].Title)
}

func TestFilterInactiveFlagsImposeNothing(t *testing.T) {
	catalog := []models.Recipe{
		{ID: uuid.New(), Title: "Steak"},
		{ID: uuid.New(), Title: "Caprese", IsVegetarian: true},
	}

	// A non-vegetarian user is not excluded from vegetarian recipes.
	got := Filter(catalog, Constraints{})
	assert.Len(t, got, 2)
}

func TestFilterMaxCookTime(t *testing.T) {
	catalog := []models.Recipe{
		{ID: uuid.New(), Title: "Quick", CookTime: 10},
		{ID: uuid.New(), Title: "Slow", CookTime: 90},
		{ID: uuid.New(), Title: "Exact", CookTime: 30},
	}

	got := Filter(catalog, Constraints{MaxCookTime: intPtr(30)})
	assert.Len(t, got, 2)
	assert.Equal(t, "Quick", got[0].Title)
	assert.Equal(t, "Exact", got[1].Title)

	// Absent cook time means unconstrained.
	assert.Len(t, Filter(catalog, Constraints{}), 3)
}

func TestFilterCombinedConstraints(t *testing.T) {
	catalog := []models.Recipe{
		{ID: uuid.New(), Title: "Fast Vegan", IsVegan: true, IsGlutenFree: true, CookTime: 15},
		{ID: uuid.New(), Title: "Slow Vegan", IsVegan: true, CookTime: 60},
		{ID: uuid.New(), Title: "Fast Meat", CookTime: 15},
	}

	got := Filter(catalog, Constraints{
		DietaryPreferences: DietaryPreferences{Vegan: true, GlutenFree: true},
		MaxCookTime:        intPtr(30),
	})
	assert.Len(t, got, 1)
	assert.Equal(t, "Fast Vegan", got[0].Title)
}
