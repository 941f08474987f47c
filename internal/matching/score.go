package matching

import "github.com/pantrypal/backend/internal/models"

// Scoring weights. The cook-time penalty is soft: unlike the Filter's
// hard cutoff, an over-time recipe stays in the results with a lower
// score. Callers choose which policy applies to their path.
const (
	preferenceBonus = 10
	cookTimePenalty = 20
	easyBonus       = 5
	ratingWeight    = 2
)

// Score computes the free-text-path ranking score for a recipe. The
// value only orders results and is not a user-facing probability.
// Negative totals clamp to zero; there is no upper bound.
func Score(r *models.Recipe, matchPercentage int, prefs DietaryPreferences, maxCookTime *int) float64 {
	score := float64(matchPercentage)

	if prefs.Vegetarian && r.IsVegetarian {
		score += preferenceBonus
	}
	if prefs.Vegan && r.IsVegan {
		score += preferenceBonus
	}
	if prefs.GlutenFree && r.IsGlutenFree {
		score += preferenceBonus
	}
	if prefs.Keto && r.IsKeto {
		score += preferenceBonus
	}

	if maxCookTime != nil && r.CookTime > *maxCookTime {
		score -= cookTimePenalty
	}

	if r.Difficulty == models.DifficultyEasy {
		score += easyBonus
	}

	score += r.Rating * ratingWeight

	if score < 0 {
		return 0
	}
	return score
}

// ScoreAll fills the Score field of each result in place and returns
// the slice for chaining into RankByScore.
func ScoreAll(results []Result, prefs DietaryPreferences, maxCookTime *int) []Result {
	for i := range results {
		results[i].Score = Score(results[i].Recipe, results[i].MatchPercentage, prefs, maxCookTime)
	}
	return results
}
