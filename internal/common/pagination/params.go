package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page

	// PageSet reports whether the request carried an explicit page parameter.
	// The feed uses it to distinguish "jump to page N" from "render the page
	// stored in the session".
	PageSet bool
}

// ParseQueryParams parses pagination parameters from an HTTP request query string.
// Returns Params with defaults if parameters are missing.
//
// Query parameters:
//   - page: Page number (must be a positive integer)
//   - limit: Items per page (must be between config.MinLimit and config.MaxLimit)
//
// Returns an error if a supplied parameter is invalid.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return params, fmt.Errorf("invalid query parameter: page must be a positive integer")
		}
		params.Page = page
		params.PageSet = true
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return params, fmt.Errorf("invalid query parameter: limit must be between %d and %d", config.MinLimit, config.MaxLimit)
		}
		params.Limit = limit
	}

	if err := params.Validate(config); err != nil {
		return params, fmt.Errorf("invalid query parameter: %w", err)
	}
	return params, nil
}
