package naming

import (
	"sort"
)

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-character edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Closest returns up to n names from candidates nearest to target, closest
// first. Names further than two thirds of the target length are dropped.
func Closest(target string, candidates []string, n int) []string {
	type scored struct {
		name     string
		distance int
	}

	limit := max(len(target)*2/3, 1)

	var ranked []scored
	for _, c := range candidates {
		if c == target {
			continue
		}

		if d := Levenshtein(target, c); d <= limit {
			ranked = append(ranked, scored{name: c, distance: d})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}

		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]string, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.name)
	}

	return out
}
