// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Mention and Catalog, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Mention represents one observed textual reference to a company from some source.
// A batch of mentions is loaded once per session (generated or uploaded) and is
// treated as immutable for the rest of that session.
type Mention struct {
	Company string
	Source  string
	Date    time.Time // calendar date, normalized to midnight UTC
	Text    string
	Link    string
	Score   float64 // in [-1.0, 1.0]; more negative = more negative sentiment
}

// Year returns the calendar year of the mention's date.
func (m *Mention) Year() int {
	return m.Date.Year()
}

// NormalizeDate truncates t to its calendar date in UTC.
// All mention dates are stored this way regardless of the source representation,
// so date-range comparisons never depend on time-of-day or timezone.
func NormalizeDate(t time.Time) time.Time {
	y, mo, d := t.UTC().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// Validate validates the Mention entity fields.
// Company and source membership in the catalog is deliberately not checked here:
// records outside the enumerated sets are never selected by filters rather than
// rejected at load time.
func (m *Mention) Validate() error {
	if m.Company == "" {
		return &ValidationError{Field: "company", Message: "company is required"}
	}
	if m.Source == "" {
		return &ValidationError{Field: "source", Message: "source is required"}
	}
	if m.Score < -1.0 || m.Score > 1.0 {
		return &ValidationError{Field: "score", Message: "score must be between -1.0 and 1.0"}
	}
	return nil
}
