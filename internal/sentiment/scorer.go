// Package sentiment implements the keyword-based negativity heuristic used when
// an uploaded dataset carries no score column, along with keyword frequency
// aggregation for the dashboard summary table.
package sentiment

import "strings"

// hitWeight is the score contribution of each distinct matched keyword.
const hitWeight = 0.2

// Scorer assigns a negativity score to free text by substring-matching a fixed
// negative-keyword list. It is pure and deterministic: no randomness, no
// external calls, no state beyond the keyword list.
type Scorer struct {
	keywords []string
}

// NewScorer creates a Scorer over the given keyword list.
// Keywords are expected to be lower-case (enforced by the catalog validation).
func NewScorer(keywords []string) *Scorer {
	return &Scorer{keywords: keywords}
}

// Score returns a value in (-1.0, 0.0].
// The text is lower-cased and each keyword contributes at most once regardless
// of repeat occurrences. Zero hits return exactly 0.0; otherwise the result is
// -min(1.0, 0.2 * hits).
func (s *Scorer) Score(text string) float64 {
	lower := strings.ToLower(text)

	hits := 0
	for _, kw := range s.keywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	if hits == 0 {
		return 0.0
	}

	score := hitWeight * float64(hits)
	if score > 1.0 {
		score = 1.0
	}
	return -score
}
