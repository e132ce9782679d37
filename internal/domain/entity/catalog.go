package entity

import (
	"fmt"
	"strings"
)

// Catalog holds the enumerated company and source sets together with the
// negative-keyword list. It drives sample generation, sentiment scoring,
// keyword counting, and the default filter selection.
type Catalog struct {
	Companies        []string `yaml:"companies"`
	Sources          []string `yaml:"sources"`
	NegativeKeywords []string `yaml:"negative_keywords"`
}

// DefaultCatalog returns the built-in catalog used when no catalog file is configured.
func DefaultCatalog() Catalog {
	return Catalog{
		Companies: []string{"Juspay", "Razorpay", "Cashfree", "PayU"},
		Sources:   []string{"X (Twitter)", "LinkedIn", "News", "Forums", "Blogs"},
		NegativeKeywords: []string{
			"scam", "fraud", "ripoff", "complaint", "disappointed", "bad", "failure",
			"charges", "overcharge", "refund", "not working", "downtime", "issues",
			"bharosa", "angry", "hate", "problem", "breach", "error",
		},
	}
}

// Validate validates the catalog contents.
// Keywords must be lower-case because scoring and counting match against
// lower-cased text.
func (c *Catalog) Validate() error {
	if len(c.Companies) == 0 {
		return &ValidationError{Field: "companies", Message: "at least one company is required"}
	}
	if len(c.Sources) == 0 {
		return &ValidationError{Field: "sources", Message: "at least one source is required"}
	}
	if len(c.NegativeKeywords) == 0 {
		return &ValidationError{Field: "negative_keywords", Message: "at least one keyword is required"}
	}
	for _, kw := range c.NegativeKeywords {
		if kw == "" {
			return &ValidationError{Field: "negative_keywords", Message: "keywords must not be empty"}
		}
		if kw != strings.ToLower(kw) {
			return fmt.Errorf("%w: keyword %q must be lower-case", ErrInvalidInput, kw)
		}
	}
	return nil
}
