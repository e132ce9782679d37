package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is an in-memory session store keyed by opaque session IDs.
// Sessions that stay idle past the configured TTL are purged by a background
// cleanup loop so abandoned browser tabs do not pin uploaded batches forever.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create allocates a new session with a fresh UUID and page 1.
func (st *Store) Create() *Session {
	s := &Session{
		ID:       uuid.New().String(),
		page:     1,
		lastSeen: st.now(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session for id, marking it as recently used.
// The boolean is false when the id is unknown or already purged.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if ok {
		s.touch(st.now())
	}
	return s, ok
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Purge removes sessions idle for longer than maxIdle and returns how many
// were removed.
func (st *Store) Purge(maxIdle time.Duration) int {
	cutoff := st.now().Add(-maxIdle)

	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		if s.idleSince(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// StartCleanup runs a periodic purge until the context is canceled.
// Run it in its own goroutine from main.
func (st *Store) StartCleanup(ctx context.Context, interval, maxIdle time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("session cleanup stopped")
			return
		case <-ticker.C:
			if removed := st.Purge(maxIdle); removed > 0 {
				logger.Debug("purged idle sessions",
					slog.Int("removed", removed),
					slog.Int("remaining", st.Len()))
			}
		}
	}
}
