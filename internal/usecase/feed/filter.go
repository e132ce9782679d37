// Package feed implements the dashboard pipeline: filtering the active batch,
// paginating it through the session's current page, and aggregating the
// filtered set into trend and keyword summaries. Every view is a pure function
// of (batch, filter config, session state) and can be recomputed freely.
package feed

import (
	"sort"
	"time"

	"negative-mentions/internal/domain/entity"
)

// Config captures one interaction's filter selection.
type Config struct {
	UseSample    bool // serve the 500-record demo batch when no upload exists
	Companies    []string
	Sources      []string
	StartDate    time.Time
	EndDate      time.Time
	NegativeOnly bool
	MinScore     float64 // records kept when score <= MinScore (only if NegativeOnly)
}

// DefaultConfig returns the filter selection a fresh session starts with:
// every company and source selected, the 5-year window ending today, and
// negative-only with the threshold at the bottom of the scale. The caller
// raises MinScore to widen the feed.
func DefaultConfig(catalog entity.Catalog, today time.Time) Config {
	end := entity.NormalizeDate(today)
	return Config{
		UseSample:    true,
		Companies:    catalog.Companies,
		Sources:      catalog.Sources,
		StartDate:    end.AddDate(-5, 0, 0),
		EndDate:      end,
		NegativeOnly: true,
		MinScore:     -1.0,
	}
}

// Normalize returns the config with both dates truncated to calendar dates and
// the end date clamped so it never precedes the start date. The filter engine
// assumes start <= end; enforcing it is the configuration layer's job.
func (c Config) Normalize() Config {
	c.StartDate = entity.NormalizeDate(c.StartDate)
	c.EndDate = entity.NormalizeDate(c.EndDate)
	if c.EndDate.Before(c.StartDate) {
		c.EndDate = c.StartDate
	}
	return c
}

// Apply returns the subset of batch matching the filter, sorted by date
// descending. The sort is stable: records sharing a date keep their original
// relative order. Apply never mutates batch.
func Apply(batch []entity.Mention, cfg Config) []entity.Mention {
	companies := toSet(cfg.Companies)
	sources := toSet(cfg.Sources)

	filtered := make([]entity.Mention, 0)
	for _, m := range batch {
		if !companies[m.Company] || !sources[m.Source] {
			continue
		}
		if m.Date.Before(cfg.StartDate) || m.Date.After(cfg.EndDate) {
			continue
		}
		if cfg.NegativeOnly && m.Score > cfg.MinScore {
			continue
		}
		filtered = append(filtered, m)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})
	return filtered
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
