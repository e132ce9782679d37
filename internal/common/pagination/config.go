// Package pagination provides the reusable pagination framework for the
// mentions feed: page/limit parameter parsing, total-page calculation, page
// clamping, and generic paginated responses.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
// These values can be loaded from environment variables.
type Config struct {
	DefaultPage  int // Default page number (typically 1)
	DefaultLimit int // Default items per page (typically 10)
	MinLimit     int // Minimum allowed items per page (typically 5)
	MaxLimit     int // Maximum allowed items per page (typically 50)
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, limit=10, min=5, max=50.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
		MinLimit:     5,
		MaxLimit:     50,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE: Default page number
//   - PAGINATION_DEFAULT_LIMIT: Default items per page
//   - PAGINATION_MIN_LIMIT: Minimum items per page
//   - PAGINATION_MAX_LIMIT: Maximum items per page
//
// Falls back to DefaultConfig() values for variables that are not set.
func LoadFromEnv() Config {
	return Config{
		DefaultPage:  getEnvAsInt("PAGINATION_DEFAULT_PAGE", 1),
		DefaultLimit: getEnvAsInt("PAGINATION_DEFAULT_LIMIT", 10),
		MinLimit:     getEnvAsInt("PAGINATION_MIN_LIMIT", 5),
		MaxLimit:     getEnvAsInt("PAGINATION_MAX_LIMIT", 50),
	}
}

// getEnvAsInt retrieves an environment variable and parses it as an integer.
// Returns the default value if the variable is not set or cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
