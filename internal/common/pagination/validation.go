package pagination

import "fmt"

// Validate validates pagination parameters against the configuration.
// Returns an error if:
//   - page is less than 1
//   - limit is outside [config.MinLimit, config.MaxLimit]
func (p Params) Validate(config Config) error {
	if p.Page < 1 {
		return fmt.Errorf("page must be a positive integer")
	}
	if p.Limit < config.MinLimit || p.Limit > config.MaxLimit {
		return fmt.Errorf("limit must be between %d and %d", config.MinLimit, config.MaxLimit)
	}
	return nil
}
