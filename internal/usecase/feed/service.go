package feed

import (
	"fmt"
	"io"

	"negative-mentions/internal/common/pagination"
	"negative-mentions/internal/dataset"
	"negative-mentions/internal/domain/entity"
	"negative-mentions/internal/sentiment"
	"negative-mentions/internal/session"
)

// topKeywords is how many rows the keyword frequency table keeps.
const topKeywords = 20

// Service evaluates the dashboard pipeline for one interaction:
// load -> filter -> clamp page -> paginate / aggregate.
type Service struct {
	Loader  *dataset.Loader
	Catalog entity.Catalog
}

// ViewModel is the computed feed state for one render.
type ViewModel struct {
	Mentions   []entity.Mention // the current page of the filtered set
	Page       int
	TotalPages int
	Total      int // size of the full filtered set
	Limit      int
	Origin     dataset.Origin
	Warning    string
}

// Render evaluates the full pipeline against the session's batch.
// When params carries an explicit page it becomes the session's new page;
// either way the stored page is clamped against the filtered set's page count
// before slicing, so a filter change can never leave the session pointing past
// the end of the feed.
func (s *Service) Render(sess *session.Session, cfg Config, params pagination.Params) ViewModel {
	batch, filtered := s.filtered(sess, cfg)

	totalPages := pagination.CalculateTotalPages(len(filtered), params.Limit)
	var page int
	if params.PageSet {
		page = sess.SetPage(params.Page, totalPages)
	} else {
		page = sess.Page(totalPages)
	}

	pagination.UpdateFilteredCount(len(filtered))
	return ViewModel{
		Mentions:   pagination.Slice(filtered, page, params.Limit),
		Page:       page,
		TotalPages: totalPages,
		Total:      len(filtered),
		Limit:      params.Limit,
		Origin:     batch.Origin,
		Warning:    batch.Warning,
	}
}

// TurnPage moves the session's page by delta (+1 next, -1 previous) under the
// given filter, then renders the resulting page. Moves past either edge are
// no-ops.
func (s *Service) TurnPage(sess *session.Session, cfg Config, limit, delta int) ViewModel {
	_, filtered := s.filtered(sess, cfg)
	totalPages := pagination.CalculateTotalPages(len(filtered), limit)
	sess.Advance(delta, totalPages)
	return s.Render(sess, cfg, pagination.Params{Limit: limit})
}

// Filtered returns the full filtered set for the session under cfg.
func (s *Service) Filtered(sess *session.Session, cfg Config) []entity.Mention {
	_, filtered := s.filtered(sess, cfg)
	return filtered
}

// Trends groups the filtered set by (year, company) and counts records per
// group. Groups with zero records are simply absent; nothing is zero-filled.
// The result is ordered by year ascending, then company ascending.
func (s *Service) Trends(sess *session.Session, cfg Config) []TrendPoint {
	_, filtered := s.filtered(sess, cfg)
	return Trends(filtered)
}

// Keywords counts total occurrences of every catalog keyword across the
// filtered texts and returns the top rows by count.
func (s *Service) Keywords(sess *session.Session, cfg Config) []sentiment.KeywordCount {
	_, filtered := s.filtered(sess, cfg)
	texts := make([]string, len(filtered))
	for i, m := range filtered {
		texts[i] = m.Text
	}
	return sentiment.CountKeywords(s.Catalog.NegativeKeywords, texts, topKeywords)
}

// Export writes the filtered set to w as CSV.
func (s *Service) Export(w io.Writer, sess *session.Session, cfg Config) error {
	_, filtered := s.filtered(sess, cfg)
	if err := dataset.ExportCSV(w, filtered); err != nil {
		return fmt.Errorf("export filtered mentions: %w", err)
	}
	return nil
}

func (s *Service) filtered(sess *session.Session, cfg Config) (dataset.Batch, []entity.Mention) {
	batch := s.Loader.Active(cfg.UseSample, sess.Upload())
	return batch, Apply(batch.Mentions, cfg.Normalize())
}
