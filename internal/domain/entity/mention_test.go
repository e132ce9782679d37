package entity_test

import (
	"testing"
	"time"

	"negative-mentions/internal/domain/entity"
)

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	jst := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "already midnight UTC",
			in:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "time of day dropped",
			in:   time.Date(2024, 3, 15, 18, 42, 7, 123, time.UTC),
			want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "non-UTC location converted before truncation",
			in:   time.Date(2024, 3, 15, 5, 0, 0, 0, jst), // 2024-03-14 20:00 UTC
			want: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := entity.NormalizeDate(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("NormalizeDate(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMentionValidate(t *testing.T) {
	t.Parallel()

	valid := entity.Mention{
		Company: "Juspay",
		Source:  "News",
		Date:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Text:    "payment failure reported",
		Link:    "https://example.com/post/1",
		Score:   -0.4,
	}

	tests := []struct {
		name    string
		mutate  func(*entity.Mention)
		wantErr bool
	}{
		{name: "valid mention", mutate: func(*entity.Mention) {}, wantErr: false},
		{name: "empty company", mutate: func(m *entity.Mention) { m.Company = "" }, wantErr: true},
		{name: "empty source", mutate: func(m *entity.Mention) { m.Source = "" }, wantErr: true},
		{name: "score below range", mutate: func(m *entity.Mention) { m.Score = -1.01 }, wantErr: true},
		{name: "score above range", mutate: func(m *entity.Mention) { m.Score = 1.5 }, wantErr: true},
		{name: "score at lower bound", mutate: func(m *entity.Mention) { m.Score = -1.0 }, wantErr: false},
		{name: "score at upper bound", mutate: func(m *entity.Mention) { m.Score = 1.0 }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.mutate(&m)
			err := m.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCatalogValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*entity.Catalog)
		wantErr bool
	}{
		{name: "default catalog is valid", mutate: func(*entity.Catalog) {}, wantErr: false},
		{name: "no companies", mutate: func(c *entity.Catalog) { c.Companies = nil }, wantErr: true},
		{name: "no sources", mutate: func(c *entity.Catalog) { c.Sources = nil }, wantErr: true},
		{name: "no keywords", mutate: func(c *entity.Catalog) { c.NegativeKeywords = nil }, wantErr: true},
		{name: "empty keyword", mutate: func(c *entity.Catalog) { c.NegativeKeywords = []string{""} }, wantErr: true},
		{name: "upper-case keyword", mutate: func(c *entity.Catalog) { c.NegativeKeywords = []string{"Fraud"} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := entity.DefaultCatalog()
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
