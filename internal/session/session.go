// Package session keeps the per-session dashboard state: the current feed page
// and, when a file has been uploaded, the session's active batch. Everything
// else the pipeline computes is a pure projection of (batch, filter, session)
// and is never stored.
package session

import (
	"context"
	"sync"
	"time"

	"negative-mentions/internal/dataset"
)

// Session is the mutable state for one interactive usage period.
// The current page is the only value that survives across renders; it is
// clamped against the active filter's page count on every access.
type Session struct {
	ID string

	mu       sync.Mutex
	page     int
	upload   *dataset.Batch
	lastSeen time.Time
}

// Page returns the stored page, clamped to [1, totalPages], and persists the
// clamped value. Out-of-range stored pages are a silent correction, not an
// error: a filter change can shrink the page count below the stored page.
func (s *Session) Page(totalPages int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = clamp(s.page, totalPages)
	return s.page
}

// SetPage stores an explicit page selection, clamped to [1, totalPages].
func (s *Session) SetPage(page, totalPages int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = clamp(page, totalPages)
	return s.page
}

// Advance moves the page by delta (+1 for "next", -1 for "previous"),
// clamped to [1, totalPages]. At either edge the move is a no-op.
func (s *Session) Advance(delta, totalPages int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = clamp(clamp(s.page, totalPages)+delta, totalPages)
	return s.page
}

// SetUpload stores an uploaded batch and resets the page to 1:
// a new dataset is a new feed.
func (s *Session) SetUpload(b *dataset.Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upload = b
	s.page = 1
}

// Upload returns the session's uploaded batch, or nil when the session is on
// sample data.
func (s *Session) Upload() *dataset.Batch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upload
}

// ClearUpload drops the uploaded batch, returning the session to sample data,
// and resets the page.
func (s *Session) ClearUpload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upload = nil
	s.page = 1
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(cutoff)
}

func clamp(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

type contextKey string

const sessionContextKey contextKey = "session"

// FromContext retrieves the session from the context.
// Returns nil if no session is attached.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionContextKey).(*Session); ok {
		return s
	}
	return nil
}

// WithSession attaches a session to the context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}
