package catalog

import (
	"fmt"
	"os"
)

// LoadYAML reads a catalog from a YAML file with the same layout as the
// embedded defaults.
func LoadYAML(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading %s: %w", path, err)
	}
	return parseYAML(raw)
}
