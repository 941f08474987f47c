package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pantrypal/backend/internal/models"
)

func TestScore(t *testing.T) {
	r := &models.Recipe{
		ID:           uuid.New(),
		Difficulty:   models.DifficultyEasy,
		Rating:       4.5,
		CookTime:     20,
		IsVegetarian: true,
		IsVegan:      true,
	}
	prefs := DietaryPreferences{Vegetarian: true, Vegan: true}

	// 60 + 10 + 10 + 0 + 5 + 9
	assert.InDelta(t, 94, Score(r, 60, prefs, intPtr(30)), 1e-9)
}

func TestScoreCookTimePenalty(t *testing.T) {
	r := &models.Recipe{
		ID:           uuid.New(),
		Difficulty:   models.DifficultyEasy,
		Rating:       4.5,
		CookTime:     50,
		IsVegetarian: true,
		IsVegan:      true,
	}
	prefs := DietaryPreferences{Vegetarian: true, Vegan: true}

	// 60 + 20 - 20 + 5 + 9
	assert.InDelta(t, 74, Score(r, 60, prefs, intPtr(30)), 1e-9)
}

func TestScoreBonusOnlyWhenRequestedAndSatisfied(t *testing.T) {
	r := &models.Recipe{ID: uuid.New(), IsVegetarian: true}

	// Satisfied but not requested: no bonus.
	assert.InDelta(t, 50, Score(r, 50, DietaryPreferences{}, nil), 1e-9)
	// Requested but not satisfied: no bonus either.
	assert.InDelta(t, 50, Score(r, 50, DietaryPreferences{Vegan: true}, nil), 1e-9)
	// Requested and satisfied.
	assert.InDelta(t, 60, Score(r, 50, DietaryPreferences{Vegetarian: true}, nil), 1e-9)
}

func TestScoreAllFourFlags(t *testing.T) {
	r := &models.Recipe{
		ID:           uuid.New(),
		IsVegetarian: true,
		IsVegan:      true,
		IsGlutenFree: true,
		IsKeto:       true,
	}
	prefs := DietaryPreferences{Vegetarian: true, Vegan: true, GlutenFree: true, Keto: true}
	assert.InDelta(t, 50, Score(r, 10, prefs, nil), 1e-9)
}

func TestScoreClampsAtZero(t *testing.T) {
	r := &models.Recipe{ID: uuid.New(), CookTime: 120}
	assert.InDelta(t, 0, Score(r, 0, DietaryPreferences{}, intPtr(30)), 1e-9)
}

func TestScoreAll(t *testing.T) {
	a := testRecipe("A", "tomatoes")
	b := testRecipe("B", "tomatoes")
	b.Rating = 5

	results := ScoreAll(MatchAll([]models.Recipe{a, b}, NewNameSet([]string{"tomatoes"})), DietaryPreferences{}, nil)
	assert.InDelta(t, 100, results[0].Score, 1e-9)
	assert.InDelta(t, 110, results[1].Score, 1e-9)
}
