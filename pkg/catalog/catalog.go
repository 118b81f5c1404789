// Package catalog holds the static material and construction data behind
// question generation: thermal conductivities, direct resistances, standard
// thicknesses and predefined wall constructions. Three backends provide the
// data: the embedded defaults, a YAML file, or a SQLite database.
package catalog

import (
	"fmt"
	"strings"
)

// Source selectors for Load.
const (
	SourceEmbedded = "embedded"
	SourceYAML     = "yaml"
	SourceSQLite   = "sqlite"
)

// Catalog is the full lookup table set. Built once at startup and read-only
// afterwards, so safe for concurrent use.
type Catalog struct {
	// Conductivities maps material key to k in W/m·K.
	Conductivities map[string]float64 `yaml:"conductivities"`

	// Resistances maps material key to a direct R in m²·K/W, for layers
	// (cavities, membranes) that are specified by resistance rather than
	// conductivity.
	Resistances map[string]float64 `yaml:"resistances"`

	// Thicknesses maps material key to its standard thickness options in mm.
	Thicknesses map[string][]float64 `yaml:"thicknesses"`

	// Walls maps layer count to the plain wall constructions available at
	// that count.
	Walls map[int][]Construction `yaml:"walls"`

	// BridgingWalls maps layer count to the thermal-bridging constructions.
	BridgingWalls map[int][]Construction `yaml:"bridging_walls"`
}

// Construction is a named predefined wall build-up.
type Construction struct {
	Name   string              `yaml:"name"`
	Layers []ConstructionLayer `yaml:"layers"`
}

// ConstructionLayer references a material; a non-nil Bridging makes it a
// mixed structural/insulation layer.
type ConstructionLayer struct {
	Material string        `yaml:"material"`
	Bridging *BridgingSpec `yaml:"bridging,omitempty"`
}

// BridgingSpec describes how a mixed layer is split between the structural
// material and its insulation fill. Percentages are of the layer face area.
type BridgingSpec struct {
	// Insulation is the material key of the insulation fill.
	Insulation string `yaml:"insulation"`

	// StructuralRange is the [min, max] structural percentage to draw from.
	StructuralRange []float64 `yaml:"structural_percentage"`

	// Secondary optionally names a second insulation path with a fixed
	// percentage of the face.
	Secondary           string  `yaml:"secondary_insulation,omitempty"`
	SecondaryPercentage float64 `yaml:"secondary_percentage,omitempty"`
}

// Load builds a catalog from the named source: SourceEmbedded ignores path,
// SourceYAML and SourceSQLite read the file at path. The returned catalog
// is validated.
func Load(source, path string) (*Catalog, error) {
	switch source {
	case SourceEmbedded, "":
		return Default()
	case SourceYAML:
		return LoadYAML(path)
	case SourceSQLite:
		return LoadSQLite(path)
	default:
		return nil, fmt.Errorf("catalog: unsupported source %q (use embedded, yaml or sqlite)", source)
	}
}

// Conductivity returns the thermal conductivity for a material key.
func (c *Catalog) Conductivity(material string) (float64, bool) {
	k, ok := c.Conductivities[material]
	return k, ok
}

// Resistance returns the direct thermal resistance for a material key.
func (c *Catalog) Resistance(material string) (float64, bool) {
	r, ok := c.Resistances[material]
	return r, ok
}

// ThicknessOptions returns the standard thicknesses in mm for a material.
func (c *Catalog) ThicknessOptions(material string) ([]float64, error) {
	opts, ok := c.Thicknesses[material]
	if !ok || len(opts) == 0 {
		return nil, fmt.Errorf("catalog: no standard thicknesses for material %q", material)
	}
	return opts, nil
}

// WallConstructions returns the plain wall constructions with the given
// layer count.
func (c *Catalog) WallConstructions(numLayers int) ([]Construction, error) {
	walls, ok := c.Walls[numLayers]
	if !ok || len(walls) == 0 {
		return nil, fmt.Errorf("catalog: no predefined wall types for %d layers", numLayers)
	}
	return walls, nil
}

// BridgingConstructions returns the thermal-bridging constructions with the
// given layer count.
func (c *Catalog) BridgingConstructions(numLayers int) ([]Construction, error) {
	walls, ok := c.BridgingWalls[numLayers]
	if !ok || len(walls) == 0 {
		return nil, fmt.Errorf("catalog: no predefined thermal bridging wall types for %d layers", numLayers)
	}
	return walls, nil
}

// Validate checks that every construction is buildable: each referenced
// material has thickness options and either a conductivity or a resistance,
// and every bridging spec names a known insulation material with a sane
// percentage range.
func (c *Catalog) Validate() error {
	check := func(kind string, walls map[int][]Construction) error {
		for count, constructions := range walls {
			for _, con := range constructions {
				if len(con.Layers) != count {
					return fmt.Errorf("catalog: %s construction %q listed under %d layers but has %d",
						kind, con.Name, count, len(con.Layers))
				}
				for _, layer := range con.Layers {
					if err := c.validateLayer(con.Name, layer); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
	if err := check("wall", c.Walls); err != nil {
		return err
	}
	return check("bridging", c.BridgingWalls)
}

func (c *Catalog) validateLayer(construction string, layer ConstructionLayer) error {
	if _, err := c.ThicknessOptions(layer.Material); err != nil {
		return fmt.Errorf("catalog: construction %q: %w", construction, err)
	}
	_, hasK := c.Conductivity(layer.Material)
	_, hasR := c.Resistance(layer.Material)
	if !hasK && !hasR {
		return fmt.Errorf("catalog: construction %q: material %q has neither conductivity nor resistance",
			construction, layer.Material)
	}

	b := layer.Bridging
	if b == nil {
		return nil
	}
	if _, ok := c.Conductivity(b.Insulation); !ok {
		return fmt.Errorf("catalog: construction %q: bridging insulation %q has no conductivity",
			construction, b.Insulation)
	}
	if len(b.StructuralRange) != 2 || b.StructuralRange[0] <= 0 || b.StructuralRange[1] >= 100 ||
		b.StructuralRange[0] > b.StructuralRange[1] {
		return fmt.Errorf("catalog: construction %q: bridging layer %q has invalid structural percentage range %v",
			construction, layer.Material, b.StructuralRange)
	}
	if b.Secondary != "" {
		if _, ok := c.Conductivity(b.Secondary); !ok {
			return fmt.Errorf("catalog: construction %q: secondary insulation %q has no conductivity",
				construction, b.Secondary)
		}
		if b.SecondaryPercentage <= 0 || b.SecondaryPercentage+b.StructuralRange[1] >= 100 {
			return fmt.Errorf("catalog: construction %q: secondary insulation percentage %g leaves no room for the primary fill",
				construction, b.SecondaryPercentage)
		}
	}
	return nil
}

// DisplayName renders a material key for prompts: underscores become
// spaces and each word is capitalized.
func DisplayName(material string) string {
	words := strings.Split(material, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
