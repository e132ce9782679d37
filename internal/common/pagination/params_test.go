package pagination_test

import (
	"net/http/httptest"
	"testing"

	"negative-mentions/internal/common/pagination"
)

func TestParseQueryParams(t *testing.T) {
	t.Parallel()

	cfg := pagination.DefaultConfig()

	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantLimit   int
		wantPageSet bool
		wantErr     bool
	}{
		{
			name:      "no parameters uses defaults",
			query:     "",
			wantPage:  1,
			wantLimit: 10,
		},
		{
			name:        "explicit page",
			query:       "page=3",
			wantPage:    3,
			wantLimit:   10,
			wantPageSet: true,
		},
		{
			name:      "explicit limit",
			query:     "limit=25",
			wantPage:  1,
			wantLimit: 25,
		},
		{
			name:        "page and limit",
			query:       "page=2&limit=50",
			wantPage:    2,
			wantLimit:   50,
			wantPageSet: true,
		},
		{name: "zero page rejected", query: "page=0", wantErr: true},
		{name: "negative page rejected", query: "page=-1", wantErr: true},
		{name: "non-numeric page rejected", query: "page=abc", wantErr: true},
		{name: "limit below minimum rejected", query: "limit=4", wantErr: true},
		{name: "limit above maximum rejected", query: "limit=51", wantErr: true},
		{name: "non-numeric limit rejected", query: "limit=ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/feed?"+tt.query, nil)
			params, err := pagination.ParseQueryParams(r, cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseQueryParams(%q) expected error, got %+v", tt.query, params)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQueryParams(%q) unexpected error: %v", tt.query, err)
			}
			if params.Page != tt.wantPage || params.Limit != tt.wantLimit || params.PageSet != tt.wantPageSet {
				t.Errorf("ParseQueryParams(%q) = %+v, want page=%d limit=%d pageSet=%v",
					tt.query, params, tt.wantPage, tt.wantLimit, tt.wantPageSet)
			}
		})
	}
}

func TestParamsValidate(t *testing.T) {
	t.Parallel()

	cfg := pagination.DefaultConfig()

	tests := []struct {
		name    string
		in      pagination.Params
		wantErr bool
	}{
		{name: "valid", in: pagination.Params{Page: 1, Limit: 10}},
		{name: "min limit", in: pagination.Params{Page: 1, Limit: 5}},
		{name: "max limit", in: pagination.Params{Page: 1, Limit: 50}},
		{name: "page zero", in: pagination.Params{Page: 0, Limit: 10}, wantErr: true},
		{name: "limit too small", in: pagination.Params{Page: 1, Limit: 4}, wantErr: true},
		{name: "limit too large", in: pagination.Params{Page: 1, Limit: 51}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}
