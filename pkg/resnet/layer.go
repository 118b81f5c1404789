// Package resnet composes layered thermal resistance networks from wall
// constructions and reduces them to total resistance, U-value and heat
// flow. Plain layers appear in series along the heat-flow path; mixed
// thermal-bridging layers combine a structural path and one or two
// insulation paths in parallel across the same thickness span.
package resnet

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultStructuralConductivity is assumed for a mixed layer whose
// structural material carries no conductivity. Its use is recorded on the
// breakdown slot so callers can surface the assumption.
const DefaultStructuralConductivity = 0.2 // W/m·K

// fractionTolerance bounds how far parallel-path area fractions may drift
// from summing to 1.
const fractionTolerance = 1e-6

// Layer is one course of a wall construction, resolvable to the thermal
// resistance of its slot in the network.
type Layer interface {
	// Resolve computes the slot resistance and breakdown metadata.
	Resolve() (Slot, error)
}

// Slot is one resolved entry of the network breakdown: the boundary films,
// plain layers and mixed layers, in heat-flow order.
type Slot struct {
	Name       string  `json:"name"`
	Resistance float64 `json:"resistance"` // m²·K/W

	// Mixed marks a thermal-bridging slot resolved by the parallel rule.
	Mixed bool `json:"mixed,omitempty"`

	// AssumedConductivity marks a mixed slot whose structural path fell
	// back to DefaultStructuralConductivity.
	AssumedConductivity bool `json:"assumed_conductivity,omitempty"`
}

// SimpleLayer is a homogeneous course defined by exactly one of a direct
// resistance or a conductivity with thickness. Zero-thickness idealized
// layers (surface films, membranes) must supply Resistance directly.
type SimpleLayer struct {
	Material     string
	Thickness    float64 // m
	Conductivity float64 // W/m·K; zero when unset
	Resistance   float64 // m²·K/W; takes precedence when set
}

// Resolve returns the layer's series resistance.
func (l SimpleLayer) Resolve() (Slot, error) {
	switch {
	case l.Resistance > 0:
		return Slot{Name: l.Material, Resistance: l.Resistance}, nil
	case l.Resistance < 0:
		return Slot{}, &InvalidLayerSpecError{Material: l.Material, Reason: "negative resistance"}
	case l.Conductivity > 0:
		if l.Thickness <= 0 {
			return Slot{}, &InvalidLayerSpecError{
				Material: l.Material,
				Reason:   "zero-thickness layer must supply a resistance directly",
			}
		}
		return Slot{Name: l.Material, Resistance: l.Thickness / l.Conductivity}, nil
	default:
		return Slot{}, &InvalidLayerSpecError{
			Material: l.Material,
			Reason:   "neither conductivity nor resistance defined",
		}
	}
}

// BridgePath is the structural path through a mixed layer: the framing or
// mortar that bridges the insulation.
type BridgePath struct {
	Material     string
	Conductivity float64 // W/m·K; zero means unknown, resolved to the documented default
	Fraction     float64 // area fraction of the layer face
}

// InsulationPath is an insulation path through a mixed layer.
type InsulationPath struct {
	Material     string
	Thickness    float64 // m
	Conductivity float64 // W/m·K
	Fraction     float64 // area fraction of the layer face
}

// MixedLayer is a thermal-bridging course: a structural path and one or
// two insulation paths sharing the same thickness span, combined by the
// area-weighted parallel rule.
type MixedLayer struct {
	Thickness  float64 // m, the span shared by all paths
	Structural BridgePath
	Insulation InsulationPath
	Secondary  *InsulationPath
}

// Resolve combines the structural and insulation paths in parallel.
func (l MixedLayer) Resolve() (Slot, error) {
	if l.Thickness <= 0 {
		return Slot{}, &InvalidLayerSpecError{
			Material: l.Structural.Material,
			Reason:   "mixed layer requires a positive thickness",
		}
	}

	structuralK := l.Structural.Conductivity
	assumed := false
	if structuralK <= 0 {
		structuralK = DefaultStructuralConductivity
		assumed = true
	}

	fractions := []float64{l.Structural.Fraction, l.Insulation.Fraction}
	resistances := []float64{l.Thickness / structuralK}

	paths := []InsulationPath{l.Insulation}
	if l.Secondary != nil {
		paths = append(paths, *l.Secondary)
		fractions = append(fractions, l.Secondary.Fraction)
	}
	for _, path := range paths {
		if path.Conductivity <= 0 || path.Thickness <= 0 {
			return Slot{}, &InvalidLayerSpecError{
				Material: path.Material,
				Reason:   "insulation path requires positive thickness and conductivity",
			}
		}
		resistances = append(resistances, path.Thickness/path.Conductivity)
	}

	combined, err := CombineParallel(fractions, resistances)
	if err != nil {
		return Slot{}, err
	}
	return Slot{
		Name:                "Multi-layer",
		Resistance:          combined,
		Mixed:               true,
		AssumedConductivity: assumed,
	}, nil
}

// CombineParallel reduces two or more parallel heat-flow paths of equal
// length to a single resistance via the harmonic area-weighted rule
// 1/R = Σ(fraction_i / R_i). Fractions must each lie in (0, 1] and sum to
// 1 within tolerance; every resistance must be strictly positive. This is
// deliberately not the series sum: the paths share the layer face, they do
// not stack along the heat-flow direction.
func CombineParallel(fractions, resistances []float64) (float64, error) {
	if len(fractions) < 2 || len(fractions) != len(resistances) {
		return 0, &DegenerateNetworkError{
			Reason: "parallel combination requires matching fraction/resistance pairs, at least two",
			Value:  float64(len(fractions)),
		}
	}
	for i, f := range fractions {
		if f <= 0 || f > 1 {
			return 0, &DegenerateNetworkError{Reason: "area fraction outside (0, 1]", Value: f}
		}
		if resistances[i] <= 0 {
			return 0, &DegenerateNetworkError{Reason: "non-positive path resistance", Value: resistances[i]}
		}
	}
	if sum := floats.Sum(fractions); !scalar.EqualWithinAbs(sum, 1, fractionTolerance) {
		return 0, &DegenerateNetworkError{Reason: "area fractions do not sum to 1", Value: sum}
	}

	var reciprocal float64
	for i, f := range fractions {
		reciprocal += f / resistances[i]
	}
	if reciprocal <= 0 || math.IsInf(reciprocal, 0) {
		return 0, &DegenerateNetworkError{Reason: "parallel reduction produced no finite resistance", Value: reciprocal}
	}
	return 1 / reciprocal, nil
}
