package matching

import "sort"

// CatalogMatchThreshold is the minimum match percentage a recipe needs
// to appear in catalog-path results. The free-text path only requires
// a non-zero match; the two thresholds are historical and deliberately
// kept as distinct policies.
const CatalogMatchThreshold = 25

// RankByMatch is the catalog-path ranking policy: drop results below
// CatalogMatchThreshold, then sort descending by match percentage.
// The sort is stable, so equal percentages keep their catalog order;
// no secondary key is applied.
func RankByMatch(results []Result) []Result {
	ranked := make([]Result, 0, len(results))
	for _, res := range results {
		if res.MatchPercentage >= CatalogMatchThreshold {
			ranked = append(ranked, res)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchPercentage > ranked[j].MatchPercentage
	})
	return ranked
}

// RankByScore is the free-text-path ranking policy: drop only results
// with no ingredient overlap at all, then sort descending by score.
// Stable for equal scores, like RankByMatch.
func RankByScore(results []Result) []Result {
	ranked := make([]Result, 0, len(results))
	for _, res := range results {
		if res.MatchPercentage > 0 {
			ranked = append(ranked, res)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
