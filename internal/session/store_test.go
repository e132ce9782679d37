package session

import (
	"testing"
	"time"

	"negative-mentions/internal/dataset"
)

func TestSessionPageClamping(t *testing.T) {
	t.Parallel()

	s := &Session{page: 4}

	// Filter change shrank the feed to 2 pages: stored page 4 must clamp to 2.
	if got := s.Page(2); got != 2 {
		t.Errorf("Page(2) = %d, want 2", got)
	}
	// The clamped value is persisted.
	if got := s.Page(10); got != 2 {
		t.Errorf("Page(10) after clamp = %d, want 2", got)
	}
}

func TestSessionAdvance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start      int
		delta      int
		totalPages int
		want       int
	}{
		{name: "next", start: 1, delta: 1, totalPages: 3, want: 2},
		{name: "previous", start: 2, delta: -1, totalPages: 3, want: 1},
		{name: "next at last page is a no-op", start: 3, delta: 1, totalPages: 3, want: 3},
		{name: "previous at first page is a no-op", start: 1, delta: -1, totalPages: 3, want: 1},
		{name: "stored page beyond total clamps before moving", start: 9, delta: -1, totalPages: 3, want: 2},
		{name: "empty feed stays on page 1", start: 1, delta: 1, totalPages: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{page: tt.start}
			if got := s.Advance(tt.delta, tt.totalPages); got != tt.want {
				t.Errorf("Advance(%d, %d) from page %d = %d, want %d",
					tt.delta, tt.totalPages, tt.start, got, tt.want)
			}
		})
	}
}

func TestSessionUploadLifecycle(t *testing.T) {
	t.Parallel()

	s := &Session{page: 5}

	if s.Upload() != nil {
		t.Fatal("fresh session should have no upload")
	}

	batch := &dataset.Batch{Origin: dataset.OriginUpload}
	s.SetUpload(batch)
	if s.Upload() != batch {
		t.Error("SetUpload did not store the batch")
	}
	if got := s.Page(100); got != 1 {
		t.Errorf("page after upload = %d, want reset to 1", got)
	}

	s.SetPage(7, 100)
	s.ClearUpload()
	if s.Upload() != nil {
		t.Error("ClearUpload did not drop the batch")
	}
	if got := s.Page(100); got != 1 {
		t.Errorf("page after ClearUpload = %d, want reset to 1", got)
	}
}

func TestStoreCreateAndGet(t *testing.T) {
	t.Parallel()

	st := NewStore()

	s := st.Create()
	if s.ID == "" {
		t.Fatal("Create() returned session without ID")
	}
	got, ok := st.Get(s.ID)
	if !ok || got != s {
		t.Errorf("Get(%q) = %v, %v; want the created session", s.ID, got, ok)
	}
	if _, ok := st.Get("unknown"); ok {
		t.Error("Get(unknown) reported a session")
	}
}

func TestStorePurge(t *testing.T) {
	t.Parallel()

	current := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	st := NewStore()
	st.now = func() time.Time { return current }

	stale := st.Create()
	current = current.Add(2 * time.Hour)
	fresh := st.Create()

	removed := st.Purge(time.Hour)
	if removed != 1 {
		t.Fatalf("Purge removed %d sessions, want 1", removed)
	}
	if _, ok := st.Get(stale.ID); ok {
		t.Error("stale session survived the purge")
	}
	if _, ok := st.Get(fresh.ID); !ok {
		t.Error("fresh session was purged")
	}
}
