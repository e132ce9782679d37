package feed_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"negative-mentions/internal/domain/entity"
	"negative-mentions/internal/usecase/feed"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mention(company, source string, d time.Time, score float64) entity.Mention {
	return entity.Mention{
		Company: company,
		Source:  source,
		Date:    d,
		Text:    "text",
		Link:    "https://example.com/post/0",
		Score:   score,
	}
}

func wideConfig() feed.Config {
	return feed.Config{
		Companies: []string{"Juspay", "Razorpay", "Cashfree", "PayU"},
		Sources:   []string{"News", "Blogs", "Forums"},
		StartDate: date(2020, 1, 1),
		EndDate:   date(2026, 12, 31),
	}
}

func TestApplyCompanyFilter(t *testing.T) {
	t.Parallel()

	// Three Juspay records and two Razorpay records; selecting only Juspay
	// must return exactly the three.
	batch := []entity.Mention{
		mention("Juspay", "News", date(2024, 1, 1), -0.5),
		mention("Razorpay", "News", date(2024, 1, 2), -0.5),
		mention("Juspay", "Blogs", date(2024, 1, 3), -0.5),
		mention("Razorpay", "Blogs", date(2024, 1, 4), -0.5),
		mention("Juspay", "Forums", date(2024, 1, 5), -0.5),
	}

	cfg := wideConfig()
	cfg.Companies = []string{"Juspay"}

	got := feed.Apply(batch, cfg)
	if len(got) != 3 {
		t.Fatalf("Apply returned %d records, want 3", len(got))
	}
	for _, m := range got {
		if m.Company != "Juspay" {
			t.Errorf("record with company %q leaked through the filter", m.Company)
		}
	}
}

func TestApplySourceFilter(t *testing.T) {
	t.Parallel()

	batch := []entity.Mention{
		mention("Juspay", "News", date(2024, 1, 1), -0.5),
		mention("Juspay", "Blogs", date(2024, 1, 2), -0.5),
	}

	cfg := wideConfig()
	cfg.Sources = []string{"Blogs"}

	got := feed.Apply(batch, cfg)
	if len(got) != 1 || got[0].Source != "Blogs" {
		t.Fatalf("Apply = %+v, want the single Blogs record", got)
	}
}

func TestApplyDateRange(t *testing.T) {
	t.Parallel()

	batch := []entity.Mention{
		mention("Juspay", "News", date(2023, 12, 31), -0.5), // before range
		mention("Juspay", "News", date(2024, 1, 1), -0.5),   // on start (inclusive)
		mention("Juspay", "News", date(2024, 6, 15), -0.5),  // inside
		mention("Juspay", "News", date(2024, 12, 31), -0.5), // on end (inclusive)
		mention("Juspay", "News", date(2025, 1, 1), -0.5),   // after range
	}

	cfg := wideConfig()
	cfg.StartDate = date(2024, 1, 1)
	cfg.EndDate = date(2024, 12, 31)

	got := feed.Apply(batch, cfg)
	if len(got) != 3 {
		t.Fatalf("Apply returned %d records, want 3 (range is inclusive on both ends)", len(got))
	}
}

func TestApplyNegativeOnlyThreshold(t *testing.T) {
	t.Parallel()

	// Scores [-0.9, -0.3, 0.0, -0.6] with min_score=-0.5 keep -0.9 and -0.6.
	batch := []entity.Mention{
		mention("Juspay", "News", date(2024, 1, 1), -0.9),
		mention("Juspay", "News", date(2024, 1, 2), -0.3),
		mention("Juspay", "News", date(2024, 1, 3), 0.0),
		mention("Juspay", "News", date(2024, 1, 4), -0.6),
	}

	cfg := wideConfig()
	cfg.NegativeOnly = true
	cfg.MinScore = -0.5

	got := feed.Apply(batch, cfg)
	if len(got) != 2 {
		t.Fatalf("Apply returned %d records, want 2", len(got))
	}
	for _, m := range got {
		if m.Score > -0.5 {
			t.Errorf("record with score %v leaked past the threshold", m.Score)
		}
	}

	// With the toggle off the threshold is ignored entirely.
	cfg.NegativeOnly = false
	if got := feed.Apply(batch, cfg); len(got) != 4 {
		t.Errorf("negative_only=false returned %d records, want all 4", len(got))
	}
}

func TestApplySortsByDateDescendingStable(t *testing.T) {
	t.Parallel()

	// Two records share 2024-03-01; their input order (link a before link b)
	// must survive the sort.
	a := mention("Juspay", "News", date(2024, 3, 1), -0.5)
	a.Link = "https://example.com/a"
	b := mention("Juspay", "Blogs", date(2024, 3, 1), -0.5)
	b.Link = "https://example.com/b"

	batch := []entity.Mention{
		mention("Juspay", "News", date(2023, 5, 1), -0.5),
		a,
		mention("Juspay", "News", date(2025, 7, 1), -0.5),
		b,
	}

	got := feed.Apply(batch, wideConfig())
	if len(got) != 4 {
		t.Fatalf("Apply returned %d records, want 4", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date.After(got[i-1].Date) {
			t.Fatalf("result not sorted descending at index %d", i)
		}
	}
	if got[1].Link != "https://example.com/a" || got[2].Link != "https://example.com/b" {
		t.Errorf("tie order not stable: got %q then %q", got[1].Link, got[2].Link)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	batch := []entity.Mention{
		mention("Juspay", "News", date(2023, 1, 1), -0.5),
		mention("Juspay", "News", date(2025, 1, 1), -0.5),
	}
	want := append([]entity.Mention(nil), batch...)

	feed.Apply(batch, wideConfig())
	if diff := cmp.Diff(want, batch); diff != "" {
		t.Errorf("Apply mutated its input (-want +got):\n%s", diff)
	}
}

func TestConfigNormalize(t *testing.T) {
	t.Parallel()

	cfg := feed.Config{
		StartDate: time.Date(2024, 6, 1, 13, 45, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC), // before start
	}

	got := cfg.Normalize()
	if !got.StartDate.Equal(date(2024, 6, 1)) {
		t.Errorf("StartDate = %v, want normalized calendar date", got.StartDate)
	}
	if !got.EndDate.Equal(got.StartDate) {
		t.Errorf("EndDate = %v, want clamped up to StartDate %v", got.EndDate, got.StartDate)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	catalog := entity.DefaultCatalog()
	today := time.Date(2026, 8, 31, 17, 0, 0, 0, time.UTC)

	cfg := feed.DefaultConfig(catalog, today)
	if !cfg.UseSample || !cfg.NegativeOnly {
		t.Errorf("defaults: UseSample=%v NegativeOnly=%v, want both true", cfg.UseSample, cfg.NegativeOnly)
	}
	if cfg.MinScore != -1.0 {
		t.Errorf("MinScore = %v, want -1.0", cfg.MinScore)
	}
	if !cfg.EndDate.Equal(date(2026, 8, 31)) {
		t.Errorf("EndDate = %v, want today's calendar date", cfg.EndDate)
	}
	if !cfg.StartDate.Equal(date(2021, 8, 31)) {
		t.Errorf("StartDate = %v, want five years before today", cfg.StartDate)
	}
	if len(cfg.Companies) != len(catalog.Companies) || len(cfg.Sources) != len(catalog.Sources) {
		t.Error("defaults should select every company and source")
	}
}
