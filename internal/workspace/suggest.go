package workspace

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestions bounds how many candidate names a failed lookup offers.
const maxSuggestions = 3

// similarityCutoff is the minimum normalized similarity for a candidate
// to count as a near-miss of the query.
const similarityCutoff = 0.5

// Suggest returns up to three candidate names resembling query, best
// match first. Similarity is edit distance normalized by the longer
// name, compared case-insensitively. When nothing clears the cutoff,
// candidates containing the query as a substring are offered instead.
func Suggest(query string, candidates []string) []string {
	if len(candidates) == 0 {
		return nil
	}
	q := strings.ToLower(query)

	type scored struct {
		name  string
		score float64
	}
	var ranked []scored
	for _, c := range candidates {
		if s := similarity(q, strings.ToLower(c)); s >= similarityCutoff {
			ranked = append(ranked, scored{c, s})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) > 0 {
		n := len(ranked)
		if n > maxSuggestions {
			n = maxSuggestions
		}
		suggestions := make([]string, n)
		for i := 0; i < n; i++ {
			suggestions[i] = ranked[i].name
		}
		return suggestions
	}

	var contains []string
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), q) {
			contains = append(contains, c)
		}
		if len(contains) == maxSuggestions {
			break
		}
	}
	return contains
}

func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(longest)
}
