package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pantrypal/backend/internal/models"
)

func TestRankByMatchThreshold(t *testing.T) {
	// One in five required ingredients on hand: 20%.
	r := testRecipe("Borderline", "pasta", "mushrooms", "garlic", "oil", "basil")
	results := MatchAll([]models.Recipe{r}, NewNameSet([]string{"pasta"}))
	assert.Equal(t, 20, results[0].MatchPercentage)

	// Below the 25% catalog cutoff, but still present in the
	// free-text path, which only excludes zero matches.
	assert.Empty(t, RankByMatch(results))
	assert.Len(t, RankByScore(ScoreAll(results, DietaryPreferences{}, nil)), 1)
}

func TestRankByMatchOrdersDescending(t *testing.T) {
	recipes := []models.Recipe{
		testRecipe("Half", "tomatoes", "garlic"),
		testRecipe("Full", "tomatoes"),
		testRecipe("None", "saffron"),
	}
	ranked := RankByMatch(MatchAll(recipes, NewNameSet([]string{"tomatoes", "onion"})))

	assert.Len(t, ranked, 2)
	assert.Equal(t, "Full", ranked[0].Recipe.Title)
	assert.Equal(t, "Half", ranked[1].Recipe.Title)
}

func TestRankByScoreOrdersDescending(t *testing.T) {
	low := testRecipe("Low", "tomatoes")
	high := testRecipe("High", "tomatoes")
	high.Rating = 5
	none := testRecipe("None", "saffron")

	results := ScoreAll(
		MatchAll([]models.Recipe{low, high, none}, NewNameSet([]string{"tomatoes"})),
		DietaryPreferences{}, nil,
	)
	ranked := RankByScore(results)

	assert.Len(t, ranked, 2)
	assert.Equal(t, "High", ranked[0].Recipe.Title)
	assert.Equal(t, "Low", ranked[1].Recipe.Title)
}

func TestRankStableOnTies(t *testing.T) {
	// Identical recipes tie on every key; input order must survive.
	first := testRecipe("First", "tomatoes")
	second := testRecipe("Second", "tomatoes")

	ranked := RankByMatch(MatchAll([]models.Recipe{first, second}, NewNameSet([]string{"tomatoes"})))
	assert.Equal(t, "First", ranked[0].Recipe.Title)
	assert.Equal(t, "Second", ranked[1].Recipe.Title)
}

func TestRankIdempotent(t *testing.T) {
	recipes := []models.Recipe{
		testRecipe("A", "tomatoes", "basil"),
		testRecipe("B", "tomatoes"),
		testRecipe("C", "tomatoes", "garlic", "onion"),
	}
	have := NewNameSet([]string{"tomatoes", "basil"})

	run := func() []string {
		ranked := RankByMatch(MatchAll(recipes, have))
		titles := make([]string, len(ranked))
		for i, res := range ranked {
			titles[i] = res.Recipe.Title
		}
		return titles
	}

	assert.Equal(t, run(), run())
}
