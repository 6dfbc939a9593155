package recipe

import (
	"sort"
	"strings"

	"github.com/xrash/smetrics"
)

// DefaultThreshold is the default similarity threshold for fuzzy
// matching.
const DefaultThreshold = 0.7

// MatchResult is one fuzzy name match: the index into the original
// recipe slice and a similarity in [0, 1].
type MatchResult struct {
	Index      int
	Similarity float64
}

// FindByName finds recipes whose name matches the query, sorted by
// similarity descending (stable, so equal scores keep original order).
//
// Matching is case-insensitive and two-tier: a candidate containing the
// query as a substring scores exactly 1.0; otherwise the score is the
// Jaro-Winkler similarity of the two lowercased strings. Substring
// containment therefore always outranks a fuzzy-only match.
func FindByName(recipes []Recipe, query string, threshold float64) []MatchResult {
	lowerQuery := strings.ToLower(query)

	var results []MatchResult
	for index := range recipes {
		lowerName := strings.ToLower(recipes[index].Name)

		similarity := 1.0
		if !strings.Contains(lowerName, lowerQuery) {
			// Boost threshold 0: the Winkler prefix bonus applies
			// unconditionally, so shared-prefix near-misses are not
			// penalized relative to the rest of the scoring.
			similarity = smetrics.JaroWinkler(lowerQuery, lowerName, 0, 4)
		}

		if similarity >= threshold {
			results = append(results, MatchResult{Index: index, Similarity: similarity})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	return results
}
