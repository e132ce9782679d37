package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"negative-mentions/internal/domain/entity"
)

// LoadCatalog reads the mention catalog from a YAML file. An empty path
// returns the built-in catalog. The loaded catalog must pass validation;
// there is no partial fallback to defaults.
func LoadCatalog(path string) (entity.Catalog, error) {
	if path == "" {
		return entity.DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return entity.Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	var catalog entity.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return entity.Catalog{}, fmt.Errorf("parse catalog file: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return entity.Catalog{}, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}
	return catalog, nil
}
