package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pantrypal/backend/internal/models"
)

// testRecipe builds a recipe whose required ingredients are the given
// names, in declared order.
func testRecipe(title string, names ...string) models.Recipe {
	r := models.Recipe{ID: uuid.New(), Title: title}
	for i, name := range names {
		r.Ingredients = append(r.Ingredients, models.RecipeIngredient{
			RecipeID:     r.ID,
			IngredientID: uuid.New(),
			Ingredient:   models.Ingredient{Name: name},
			IsRequired:   true,
			Position:     i,
		})
	}
	return r
}

// idSetFor builds an IDSet containing the recipe's ingredients with the
// given names.
func idSetFor(r models.Recipe, names ...string) IDSet {
	var ids []uuid.UUID
	for _, ri := range r.Ingredients {
		for _, n := range names {
			if ri.Ingredient.Name == n {
				ids = append(ids, ri.IngredientID)
			}
		}
	}
	return NewIDSet(ids)
}

func TestMatchExact(t *testing.T) {
	r := testRecipe("Caprese Salad", "tomatoes", "basil", "mozzarella")
	res := Match(&r, NewNameSet([]string{"tomatoes", "basil", "mozzarella"}))

	assert.Equal(t, 100, res.MatchPercentage)
	assert.Equal(t, []string{"tomatoes", "basil", "mozzarella"}, res.MatchedIngredients)
	assert.Empty(t, res.MissingIngredients)
}

func TestMatchPartial(t *testing.T) {
	r := testRecipe("Mushroom Pasta", "pasta", "mushrooms", "garlic", "oil", "basil")
	res := Match(&r, NewNameSet([]string{"mushrooms", "garlic"}))

	assert.Equal(t, 40, res.MatchPercentage)
	assert.Equal(t, []string{"mushrooms", "garlic"}, res.MatchedIngredients)
	assert.Equal(t, []string{"pasta", "oil", "basil"}, res.MissingIngredients)
}

func TestMatchEmptySet(t *testing.T) {
	r := testRecipe("Anything", "tomatoes", "basil")
	res := Match(&r, NewNameSet(nil))
	assert.Equal(t, 0, res.MatchPercentage)
	assert.Equal(t, []string{"tomatoes", "basil"}, res.MissingIngredients)
}

func TestMatchZeroRequiredIngredients(t *testing.T) {
	r := models.Recipe{ID: uuid.New(), Title: "Degenerate"}
	res := Match(&r, NewNameSet([]string{"tomatoes"}))
	assert.Equal(t, 0, res.MatchPercentage)
}

func TestMatchIgnoresOptionalIngredients(t *testing.T) {
	r := testRecipe("Toast", "bread", "butter")
	r.Ingredients = append(r.Ingredients, models.RecipeIngredient{
		IngredientID: uuid.New(),
		Ingredient:   models.Ingredient{Name: "jam"},
		IsRequired:   false,
		Position:     2,
	})

	res := Match(&r, NewNameSet([]string{"bread", "butter"}))
	assert.Equal(t, 100, res.MatchPercentage)
	assert.NotContains(t, res.MissingIngredients, "jam")
}

func TestMatchByIDs(t *testing.T) {
	r := testRecipe("Caprese Salad", "tomatoes", "basil", "mozzarella")
	res := Match(&r, idSetFor(r, "tomatoes", "basil"))

	assert.Equal(t, 67, res.MatchPercentage)
	assert.Equal(t, []string{"tomatoes", "basil"}, res.MatchedIngredients)
	assert.Equal(t, []string{"mozzarella"}, res.MissingIngredients)
}

func TestMatchPercentageInRange(t *testing.T) {
	recipes := []models.Recipe{
		testRecipe("A", "tomatoes"),
		testRecipe("B", "basil", "garlic", "onion"),
		{ID: uuid.New(), Title: "C"},
	}
	sets := []IngredientSet{
		NewNameSet(nil),
		NewNameSet([]string{"tomatoes"}),
		NewNameSet([]string{"tomatoes", "basil", "garlic", "onion"}),
	}
	for _, have := range sets {
		for _, res := range MatchAll(recipes, have) {
			assert.GreaterOrEqual(t, res.MatchPercentage, 0)
			assert.LessOrEqual(t, res.MatchPercentage, 100)
		}
	}
}

func TestMatchSupersetIsFull(t *testing.T) {
	r := testRecipe("Salad", "tomatoes", "basil")
	res := Match(&r, NewNameSet([]string{"tomatoes", "basil", "garlic", "onion"}))
	assert.Equal(t, 100, res.MatchPercentage)
}
