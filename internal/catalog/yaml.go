package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// #region yaml-loading

type catalogFile struct {
	Units []Unit `yaml:"units"`
}

// LoadCatalog reads a unit catalog from a YAML file. The compiled-in
// DefaultCatalog remains the fallback when no file is configured.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(f.Units) == 0 {
		return nil, fmt.Errorf("catalog %s: no units defined", path)
	}
	for _, u := range f.Units {
		if u.ID == "" {
			return nil, fmt.Errorf("catalog %s: unit with empty id", path)
		}
		for i, q := range u.Questions {
			if q.Text == "" || len(q.Keywords) == 0 {
				return nil, fmt.Errorf("catalog %s: unit %s question %d missing text or keywords", path, u.ID, i)
			}
		}
	}
	return New(f.Units), nil
}

// #endregion yaml-loading
