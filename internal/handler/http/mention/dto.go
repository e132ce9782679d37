// Package mention exposes the negative mentions feed over HTTP: the paginated
// feed itself, page turning, trend and keyword aggregations, CSV export, and
// dataset upload management.
package mention

import (
	"time"

	"negative-mentions/internal/common/pagination"
	"negative-mentions/internal/dataset"
	"negative-mentions/internal/domain/entity"
	"negative-mentions/internal/usecase/feed"
)

// MentionDTO is the JSON shape of one feed record.
type MentionDTO struct {
	Company string  `json:"company"`
	Source  string  `json:"source"`
	Date    string  `json:"date"`
	Text    string  `json:"text"`
	Link    string  `json:"link"`
	Score   float64 `json:"score"`
}

// FeedResponse is the JSON shape of one rendered feed page.
type FeedResponse struct {
	Mentions   []MentionDTO        `json:"mentions"`
	Pagination pagination.Metadata `json:"pagination"`
	Origin     string              `json:"origin"`
	Warning    string              `json:"warning,omitempty"`
}

// DatasetInfo describes the session's active batch.
type DatasetInfo struct {
	Origin  string `json:"origin"`
	Records int    `json:"records"`
	Warning string `json:"warning,omitempty"`
}

func toMentionDTO(m entity.Mention) MentionDTO {
	return MentionDTO{
		Company: m.Company,
		Source:  m.Source,
		Date:    m.Date.Format(time.DateOnly),
		Text:    m.Text,
		Link:    m.Link,
		Score:   m.Score,
	}
}

func toFeedResponse(vm feed.ViewModel) FeedResponse {
	dtos := make([]MentionDTO, 0, len(vm.Mentions))
	for _, m := range vm.Mentions {
		dtos = append(dtos, toMentionDTO(m))
	}
	return FeedResponse{
		Mentions: dtos,
		Pagination: pagination.Metadata{
			Total:      vm.Total,
			Page:       vm.Page,
			Limit:      vm.Limit,
			TotalPages: vm.TotalPages,
		},
		Origin:  string(vm.Origin),
		Warning: vm.Warning,
	}
}

func toDatasetInfo(b dataset.Batch) DatasetInfo {
	return DatasetInfo{
		Origin:  string(b.Origin),
		Records: len(b.Mentions),
		Warning: b.Warning,
	}
}
