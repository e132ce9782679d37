package sentiment_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"negative-mentions/internal/sentiment"
)

func TestCountKeywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		keywords []string
		texts    []string
		topN     int
		want     []sentiment.KeywordCount
	}{
		{
			name:     "repeat occurrences within one text all count",
			keywords: []string{"scam", "fraud"},
			texts:    []string{"scam scam scam", "a fraud"},
			topN:     0,
			want: []sentiment.KeywordCount{
				{Keyword: "scam", Count: 3},
				{Keyword: "fraud", Count: 1},
			},
		},
		{
			name:     "matching is case-insensitive on the text side",
			keywords: []string{"refund"},
			texts:    []string{"REFUND please", "still no Refund"},
			topN:     0,
			want: []sentiment.KeywordCount{
				{Keyword: "refund", Count: 2},
			},
		},
		{
			name:     "zero counts are included and keep catalog order",
			keywords: []string{"scam", "fraud", "breach"},
			texts:    []string{"nothing negative here"},
			topN:     0,
			want: []sentiment.KeywordCount{
				{Keyword: "scam", Count: 0},
				{Keyword: "fraud", Count: 0},
				{Keyword: "breach", Count: 0},
			},
		},
		{
			name:     "sorted by count descending",
			keywords: []string{"error", "downtime", "scam"},
			texts:    []string{"downtime again", "more downtime", "error during downtime"},
			topN:     0,
			want: []sentiment.KeywordCount{
				{Keyword: "downtime", Count: 3},
				{Keyword: "error", Count: 1},
				{Keyword: "scam", Count: 0},
			},
		},
		{
			name:     "truncated to topN after sorting",
			keywords: []string{"scam", "fraud", "error"},
			texts:    []string{"error error", "fraud"},
			topN:     2,
			want: []sentiment.KeywordCount{
				{Keyword: "error", Count: 2},
				{Keyword: "fraud", Count: 1},
			},
		},
		{
			name:     "no texts yields all zeros",
			keywords: []string{"scam"},
			texts:    nil,
			topN:     20,
			want: []sentiment.KeywordCount{
				{Keyword: "scam", Count: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sentiment.CountKeywords(tt.keywords, tt.texts, tt.topN)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CountKeywords() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
