package sentiment

import (
	"sort"
	"strings"
)

// KeywordCount is one row of the keyword frequency table.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// CountKeywords tallies total substring occurrences of each keyword across the
// lower-cased texts. Unlike Scorer.Score, repeat occurrences within a single
// text all count. The result is sorted by count descending (stable, so equal
// counts keep catalog order) and truncated to topN entries when topN > 0.
// Keywords with zero occurrences are included unless removed by the truncation.
func CountKeywords(keywords []string, texts []string, topN int) []KeywordCount {
	counts := make([]KeywordCount, len(keywords))
	for i, kw := range keywords {
		counts[i] = KeywordCount{Keyword: kw}
	}

	for _, text := range texts {
		lower := strings.ToLower(text)
		for i, kw := range keywords {
			counts[i].Count += strings.Count(lower, kw)
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if topN > 0 && len(counts) > topN {
		counts = counts[:topN]
	}
	return counts
}
