package generator

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/thermoquiz/thermoquiz/pkg/catalog"
	"github.com/thermoquiz/thermoquiz/pkg/resnet"
)

// LayerParam is the JSON-facing description of one generated wall course.
// Exactly one of Conductivity or Resistance is set for plain layers; a
// non-nil Bridging makes it a mixed layer.
type LayerParam struct {
	Material     string  `json:"material"`
	Thickness    float64 `json:"thickness"`    // m
	Conductivity float64 `json:"k,omitempty"`  // W/m·K
	Resistance   float64 `json:"R,omitempty"`  // m²·K/W

	Bridging *BridgingParam `json:"bridging,omitempty"`
}

// BridgingParam describes the parallel split of a mixed layer.
type BridgingParam struct {
	StructuralMaterial     string  `json:"structural_material"`
	StructuralConductivity float64 `json:"structural_k,omitempty"` // zero when not in the catalog
	StructuralFraction     float64 `json:"structural_fraction"`

	Insulation InsulationParam  `json:"insulation"`
	Secondary  *InsulationParam `json:"secondary_insulation,omitempty"`
}

// InsulationParam describes one insulation path through a mixed layer.
type InsulationParam struct {
	Material     string  `json:"material"`
	Thickness    float64 `json:"thickness"` // m
	Conductivity float64 `json:"k"`         // W/m·K
	Fraction     float64 `json:"fraction"`
}

// WallQuestion is a generated heat-loss scenario, for both plain and
// thermal-bridging walls.
type WallQuestion struct {
	ID       string       `json:"id"`
	Prompt   string       `json:"prompt"`
	WallName string       `json:"wall_name"`
	Length   float64      `json:"length"` // m
	Height   float64      `json:"height"` // m
	Layers   []LayerParam `json:"layers"`
	TInside  float64      `json:"t_inside"`  // °C
	TOutside float64      `json:"t_outside"` // °C
}

// NetworkLayers converts the generated parameters into solver layers.
func (q *WallQuestion) NetworkLayers() ([]resnet.Layer, error) {
	layers := make([]resnet.Layer, 0, len(q.Layers))
	for _, lp := range q.Layers {
		layers = append(layers, lp.toLayer())
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("generator: question %s has no layers", q.ID)
	}
	return layers, nil
}

func (lp LayerParam) toLayer() resnet.Layer {
	if lp.Bridging == nil {
		return resnet.SimpleLayer{
			Material:     catalog.DisplayName(lp.Material),
			Thickness:    lp.Thickness,
			Conductivity: lp.Conductivity,
			Resistance:   lp.Resistance,
		}
	}

	b := lp.Bridging
	mixed := resnet.MixedLayer{
		Thickness: lp.Thickness,
		Structural: resnet.BridgePath{
			Material:     catalog.DisplayName(b.StructuralMaterial),
			Conductivity: b.StructuralConductivity,
			Fraction:     b.StructuralFraction,
		},
		Insulation: resnet.InsulationPath{
			Material:     catalog.DisplayName(b.Insulation.Material),
			Thickness:    b.Insulation.Thickness,
			Conductivity: b.Insulation.Conductivity,
			Fraction:     b.Insulation.Fraction,
		},
	}
	if b.Secondary != nil {
		mixed.Secondary = &resnet.InsulationPath{
			Material:     catalog.DisplayName(b.Secondary.Material),
			Thickness:    b.Secondary.Thickness,
			Conductivity: b.Secondary.Conductivity,
			Fraction:     b.Secondary.Fraction,
		}
	}
	return mixed
}

// WallQuestion generates a plain multilayer wall heat-loss question.
// numLayers outside 1..6 is clamped into range.
func (g *Generator) WallQuestion(numLayers int) (*WallQuestion, error) {
	numLayers = clamp(numLayers, 1, 6)

	constructions, err := g.catalog.WallConstructions(numLayers)
	if err != nil {
		return nil, err
	}
	selected := constructions[g.pick(len(constructions))]

	layers := make([]LayerParam, 0, len(selected.Layers))
	for _, cl := range selected.Layers {
		lp, err := g.plainLayer(cl.Material)
		if err != nil {
			return nil, err
		}
		layers = append(layers, lp)
	}

	q := g.newWallQuestion(selected.Name, layers)
	q.Prompt = fmt.Sprintf("Determine the heat loss through the following multilayer wall (%s):", selected.Name)
	return q, nil
}

// BridgingQuestion generates a thermal-bridging heat-loss question.
// numLayers outside 3..5 is clamped into range.
func (g *Generator) BridgingQuestion(numLayers int) (*WallQuestion, error) {
	numLayers = clamp(numLayers, 3, 5)

	constructions, err := g.catalog.BridgingConstructions(numLayers)
	if err != nil {
		return nil, err
	}
	selected := constructions[g.pick(len(constructions))]

	layers := make([]LayerParam, 0, len(selected.Layers))
	for _, cl := range selected.Layers {
		var lp LayerParam
		var err error
		if cl.Bridging != nil {
			lp, err = g.mixedLayer(cl)
		} else {
			lp, err = g.plainLayer(cl.Material)
		}
		if err != nil {
			return nil, err
		}
		layers = append(layers, lp)
	}

	q := g.newWallQuestion(selected.Name, layers)
	q.Prompt = fmt.Sprintf("Determine the heat loss through the following wall with thermal bridging (%s):", selected.Name)
	return q, nil
}

func (g *Generator) newWallQuestion(wallName string, layers []LayerParam) *WallQuestion {
	return &WallQuestion{
		ID:       uuid.NewString(),
		WallName: wallName,
		Length:   round2(g.floatBetween(3, 10)),
		Height:   round2(g.floatBetween(2, 5)),
		Layers:   layers,
		TInside:  float64(g.intBetween(18, 25)),
		TOutside: float64(g.intBetween(-5, 5)),
	}
}

// plainLayer draws a standard thickness for the material and attaches its
// conductivity or direct resistance.
func (g *Generator) plainLayer(material string) (LayerParam, error) {
	thickness, err := g.standardThickness(material)
	if err != nil {
		return LayerParam{}, err
	}

	lp := LayerParam{Material: material, Thickness: thickness}
	if k, ok := g.catalog.Conductivity(material); ok {
		lp.Conductivity = k
		return lp, nil
	}
	if r, ok := g.catalog.Resistance(material); ok {
		lp.Resistance = r
		return lp, nil
	}
	return LayerParam{}, fmt.Errorf("generator: material %q has neither conductivity nor resistance", material)
}

// mixedLayer draws the structural percentage from the construction's range
// and fills the remaining face with insulation.
func (g *Generator) mixedLayer(cl catalog.ConstructionLayer) (LayerParam, error) {
	spec := cl.Bridging

	thickness, err := g.standardThickness(cl.Material)
	if err != nil {
		return LayerParam{}, err
	}

	structuralFraction := g.floatBetween(spec.StructuralRange[0], spec.StructuralRange[1]) / 100
	insulationFraction := 1 - structuralFraction

	insulation, err := g.insulationPath(spec.Insulation, 0)
	if err != nil {
		return LayerParam{}, err
	}

	// Structural conductivity may legitimately be missing from a custom
	// catalog; the solver then substitutes its documented default and
	// flags the slot.
	structuralK, _ := g.catalog.Conductivity(cl.Material)

	b := &BridgingParam{
		StructuralMaterial:     cl.Material,
		StructuralConductivity: structuralK,
		StructuralFraction:     structuralFraction,
	}

	if spec.Secondary != "" {
		secondaryFraction := spec.SecondaryPercentage / 100
		insulationFraction -= secondaryFraction
		secondary, err := g.insulationPath(spec.Secondary, secondaryFraction)
		if err != nil {
			return LayerParam{}, err
		}
		b.Secondary = &secondary
	}

	insulation.Fraction = insulationFraction
	b.Insulation = insulation

	return LayerParam{
		Material:  cl.Material,
		Thickness: thickness,
		Bridging:  b,
	}, nil
}

func (g *Generator) insulationPath(material string, fraction float64) (InsulationParam, error) {
	k, ok := g.catalog.Conductivity(material)
	if !ok {
		return InsulationParam{}, fmt.Errorf("generator: insulation material %q has no conductivity", material)
	}
	opts, err := g.catalog.ThicknessOptions(material)
	if err != nil {
		return InsulationParam{}, err
	}
	return InsulationParam{
		Material:     material,
		Thickness:    opts[0] / 1000,
		Conductivity: k,
		Fraction:     fraction,
	}, nil
}

func (g *Generator) standardThickness(material string) (float64, error) {
	opts, err := g.catalog.ThicknessOptions(material)
	if err != nil {
		return 0, err
	}
	return opts[g.pick(len(opts))] / 1000, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
