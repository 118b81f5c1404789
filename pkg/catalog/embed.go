package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v2"
)

//go:embed catalog.yaml
var embedded embed.FS

// Default returns the embedded material catalog.
func Default() (*Catalog, error) {
	raw, err := embedded.ReadFile("catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("catalog: reading embedded catalog: %w", err)
	}
	return parseYAML(raw)
}

func parseYAML(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("catalog: parsing catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
