package match

// Levenshtein computes the edit distance between two strings, counting runes.
// The distance is the minimum number of single-rune insertions, deletions or
// substitutions required to transform a into b.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	// Two rows over the shorter string.
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity returns a score between 0 and 1: 1 - distance / longer length.
// Two empty strings are identical.
func Similarity(a, b string) float64 {
	longer := max(len([]rune(a)), len([]rune(b)))
	if longer == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(longer)
}

// TypeNameSimilarity compares two type names after NormalizeTypeName.
func TypeNameSimilarity(a, b string) float64 {
	return Similarity(NormalizeTypeName(a), NormalizeTypeName(b))
}
