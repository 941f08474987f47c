package matching

import (
	"math"

	"github.com/pantrypal/backend/internal/models"
)

// Result annotates one recipe with its ingredient overlap against the
// available set. Matched and missing names keep the recipe's declared
// ingredient order. Score is filled by ScoreAll on the free-text path
// and stays zero otherwise.
type Result struct {
	Recipe             *models.Recipe `json:"recipe"`
	MatchPercentage    int            `json:"match_percentage"`
	MatchedIngredients []string       `json:"matched_ingredients"`
	MissingIngredients []string       `json:"missing_ingredients"`
	Score              float64        `json:"score,omitempty"`
}

// Match computes the overlap between a recipe's required ingredients
// and the available set. Optional ingredients are ignored. A recipe
// with no required ingredients gets 0%, so it can never clear a
// ranking threshold and no division by zero occurs.
func Match(r *models.Recipe, have IngredientSet) Result {
	res := Result{
		Recipe:             r,
		MatchedIngredients: []string{},
		MissingIngredients: []string{},
	}

	required := 0
	for _, ri := range r.Ingredients {
		if !ri.IsRequired {
			continue
		}
		required++
		if have.Contains(ri) {
			res.MatchedIngredients = append(res.MatchedIngredients, ri.Ingredient.Name)
		} else {
			res.MissingIngredients = append(res.MissingIngredients, ri.Ingredient.Name)
		}
	}

	if required == 0 {
		return res
	}
	res.MatchPercentage = int(math.Round(float64(len(res.MatchedIngredients)) / float64(required) * 100))
	return res
}

// MatchAll runs Match over a catalog snapshot, preserving its order.
func MatchAll(recipes []models.Recipe, have IngredientSet) []Result {
	results := make([]Result, len(recipes))
	for i := range recipes {
		results[i] = Match(&recipes[i], have)
	}
	return results
}
