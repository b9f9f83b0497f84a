// Package suggest offers a "did you mean" helper for zero-result
// queries. It is a standalone collaborator, never called from inside
// quickmatch.Engine.Query or QueryWith: wiring edit-distance similarity
// into the engine's own scoring would turn its shallow overlap count
// into a ranked-relevance engine, which the engine is explicitly not.
package suggest

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// DefaultThreshold is the minimum Jaro-Winkler similarity a candidate
// must reach to be offered as a suggestion.
const DefaultThreshold = 0.75

// Match pairs a candidate item with its similarity to the query.
type Match struct {
	Item       string
	Similarity float64
}

// Matcher finds near-miss candidates over a fixed corpus using
// Jaro-Winkler similarity, the same algorithm and library the
// reference fuzzy matcher uses for its default mode.
type Matcher struct {
	items     []string
	threshold float64
}

// NewMatcher builds a Matcher over items using threshold as the minimum
// similarity to qualify as a suggestion. A threshold outside (0, 1]
// falls back to DefaultThreshold.
func NewMatcher(items []string, threshold float64) *Matcher {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Matcher{items: items, threshold: threshold}
}

// Suggest returns up to limit items most similar to query, ordered by
// similarity descending. Intended for callers to invoke only after
// Engine.Query has already returned no results.
func (m *Matcher) Suggest(query string, limit int) []Match {
	if query == "" || limit <= 0 {
		return nil
	}

	var matches []Match
	for _, item := range m.items {
		score, err := edlib.StringsSimilarity(query, item, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		similarity := float64(score)
		if similarity >= m.threshold {
			matches = append(matches, Match{Item: item, Similarity: similarity})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].Item < matches[j].Item
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
