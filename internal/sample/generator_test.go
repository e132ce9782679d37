package sample_test

import (
	"fmt"
	"testing"
	"time"

	"negative-mentions/internal/domain/entity"
	"negative-mentions/internal/sample"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
}

func TestGeneratorBatchShape(t *testing.T) {
	t.Parallel()

	catalog := entity.DefaultCatalog()
	gen := sample.NewGeneratorWithClock(catalog, fixedClock, 1)

	companies := make(map[string]bool)
	for _, c := range catalog.Companies {
		companies[c] = true
	}
	sources := make(map[string]bool)
	for _, s := range catalog.Sources {
		sources[s] = true
	}

	const n = 500
	batch := gen.Batch(n)
	if len(batch) != n {
		t.Fatalf("Batch(%d) returned %d mentions", n, len(batch))
	}

	today := entity.NormalizeDate(fixedClock())
	oldest := today.AddDate(0, 0, -365*5)

	for i, m := range batch {
		if !companies[m.Company] {
			t.Errorf("mention %d: company %q not in catalog", i, m.Company)
		}
		if !sources[m.Source] {
			t.Errorf("mention %d: source %q not in catalog", i, m.Source)
		}
		if m.Date.Before(oldest) || m.Date.After(today) {
			t.Errorf("mention %d: date %v outside the 5-year window", i, m.Date)
		}
		if !m.Date.Equal(entity.NormalizeDate(m.Date)) {
			t.Errorf("mention %d: date %v not normalized to a calendar date", i, m.Date)
		}
		if want := fmt.Sprintf("https://example.com/post/%d", i); m.Link != want {
			t.Errorf("mention %d: link = %q, want %q", i, m.Link, want)
		}
		if err := m.Validate(); err != nil {
			t.Errorf("mention %d: invalid: %v", i, err)
		}
		// Scores land in one of the two generation bands.
		negative := m.Score >= -1.0 && m.Score <= -0.2
		neutral := m.Score >= 0.0 && m.Score <= 0.2
		if !negative && !neutral {
			t.Errorf("mention %d: score %v outside [-1.0,-0.2] and [0.0,0.2]", i, m.Score)
		}
	}
}

func TestGeneratorBatchMemoized(t *testing.T) {
	t.Parallel()

	gen := sample.NewGeneratorWithClock(entity.DefaultCatalog(), fixedClock, 42)

	first := gen.Batch(200)
	second := gen.Batch(200)

	if len(first) != len(second) {
		t.Fatalf("cached batch length changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("mention %d differs between calls with the same count", i)
		}
	}

	// A different count is a distinct cache entry, not a resize of the first.
	other := gen.Batch(500)
	if len(other) != 500 {
		t.Fatalf("Batch(500) returned %d mentions", len(other))
	}
	again := gen.Batch(200)
	for i := range first {
		if first[i] != again[i] {
			t.Fatalf("Batch(200) changed after generating a different count")
		}
	}
}

func TestGeneratorMixesNegativeAndNeutral(t *testing.T) {
	t.Parallel()

	gen := sample.NewGeneratorWithClock(entity.DefaultCatalog(), fixedClock, 7)
	batch := gen.Batch(500)

	var negative, neutral int
	for _, m := range batch {
		if m.Score < 0 {
			negative++
		} else {
			neutral++
		}
	}
	// With p=0.5 per record, 500 draws landing entirely on one side would mean
	// a broken branch, not bad luck.
	if negative == 0 || neutral == 0 {
		t.Fatalf("expected both record kinds, got negative=%d neutral=%d", negative, neutral)
	}
}
