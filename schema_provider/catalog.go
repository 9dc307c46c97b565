package schema_provider

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Catalog lists the schema files to preload into a registry at startup.
// Entry paths double as registry keys, so they should be written the way
// documents reference them in xsi:schemaLocation hints.
type Catalog struct {
	Schemas []CatalogEntry `yaml:"schemas"`
}

// CatalogEntry is one schema registration.
type CatalogEntry struct {
	Path string `yaml:"path"`
}

// LoadCatalog reads and parses a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return &catalog, nil
}

// Populate loads every catalog entry and registers it. Relative entry paths
// are resolved against baseDir for reading but kept verbatim as registry
// keys. The first load or registration failure aborts.
func (c *Catalog) Populate(registry *SchemaRegistry, baseDir string) error {
	for _, entry := range c.Schemas {
		file := entry.Path
		if !filepath.IsAbs(file) {
			file = filepath.Join(baseDir, file)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read schema %s: %w", entry.Path, err)
		}
		source, err := NewXSDSource(entry.Path, data)
		if err != nil {
			return err
		}
		if err := registry.Register(source); err != nil {
			return err
		}
	}
	return nil
}
