package mention

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"negative-mentions/internal/domain/entity"
	"negative-mentions/internal/usecase/feed"
)

// Score threshold bounds mirror the dashboard slider.
const (
	minScoreFloor   = -1.0
	minScoreCeiling = 0.5
)

// parseFilter builds a filter config from the request's query string, starting
// from the default selection (everything selected, 5-year window, negative
// only). Parameters:
//
//   - companies: repeatable; restricts to the named companies. An empty
//     value clears the selection
//   - sources: repeatable; restricts to the named sources, same empty-value
//     rule
//   - start, end: inclusive date bounds, YYYY-MM-DD
//   - negative_only: "true"/"false"
//   - min_score: threshold in [-1.0, 0.5], kept when score <= min_score
//   - use_sample: "true"/"false", whether to serve the full demo batch
func parseFilter(r *http.Request, catalog entity.Catalog) (feed.Config, error) {
	cfg := feed.DefaultConfig(catalog, time.Now())
	q := r.URL.Query()

	if values, ok := q["companies"]; ok {
		selected, err := parseSelection(values, catalog.Companies, "company")
		if err != nil {
			return cfg, err
		}
		cfg.Companies = selected
	}

	if values, ok := q["sources"]; ok {
		selected, err := parseSelection(values, catalog.Sources, "source")
		if err != nil {
			return cfg, err
		}
		cfg.Sources = selected
	}

	if v := q.Get("start"); v != "" {
		start, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return cfg, fmt.Errorf("invalid start date: must be YYYY-MM-DD")
		}
		cfg.StartDate = start
	}

	if v := q.Get("end"); v != "" {
		end, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return cfg, fmt.Errorf("invalid end date: must be YYYY-MM-DD")
		}
		cfg.EndDate = end
	}

	if v := q.Get("negative_only"); v != "" {
		negativeOnly, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid negative_only: must be true or false")
		}
		cfg.NegativeOnly = negativeOnly
	}

	if v := q.Get("min_score"); v != "" {
		minScore, err := strconv.ParseFloat(v, 64)
		if err != nil || minScore < minScoreFloor || minScore > minScoreCeiling {
			return cfg, fmt.Errorf("invalid min_score: must be between %.1f and %.1f", minScoreFloor, minScoreCeiling)
		}
		cfg.MinScore = minScore
	}

	if v := q.Get("use_sample"); v != "" {
		useSample, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid use_sample: must be true or false")
		}
		cfg.UseSample = useSample
	}

	return cfg, nil
}

// parseSelection validates a multi-value selection against the catalog. An
// empty value means the client deselected everything, so a bare "companies="
// yields an empty selection rather than an error.
func parseSelection(values, allowed []string, kind string) ([]string, error) {
	selected := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if !slices.Contains(allowed, v) {
			return nil, fmt.Errorf("unrecognized %s: %q", kind, v)
		}
		selected = append(selected, v)
	}
	return selected, nil
}
