package match

import (
	"sort"

	"mrm2dfdl/internal/common"
)

// DefaultMinScore is the lowest similarity worth suggesting.
const DefaultMinScore = 0.6

// Suggestion is a known type name ranked against an unknown one.
type Suggestion struct {
	Name  string
	Score float64
}

// SuggestionList is sorted by score, best first.
type SuggestionList []Suggestion

// Suggest ranks known names by similarity to name and returns at most limit
// entries scoring at least minScore. Ties are broken by name so the result is
// deterministic. A limit <= 0 means no limit.
func Suggest(name string, known []string, minScore float64, limit int) SuggestionList {
	norm := NormalizeTypeName(name)

	var out SuggestionList

	for _, k := range known {
		if k == name {
			continue
		}

		score := Similarity(norm, NormalizeTypeName(k))
		if score < minScore {
			continue
		}

		out = append(out, Suggestion{Name: k, Score: score})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Name < out[j].Name
	})

	if limit > 0 {
		out = common.Truncate(out, limit)
	}

	return out
}

// Names returns the suggested names in rank order.
func (l SuggestionList) Names() []string {
	if common.IsEmpty(l) {
		return nil
	}

	names := make([]string, len(l))
	for i, s := range l {
		names[i] = s.Name
	}

	return names
}
