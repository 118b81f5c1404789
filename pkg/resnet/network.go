package resnet

import "gonum.org/v1/gonum/floats"

// Standard boundary film resistances for internal and external wall
// surfaces (BS EN ISO 6946), m²·K/W.
const (
	InternalFilmResistance = 0.13
	ExternalFilmResistance = 0.04
)

// Film slot names, matching the labels shown on the worked solutions.
const (
	internalFilmName = "Internal Surface (Rsi)"
	externalFilmName = "External Surface (Rso)"
)

// Solution is the reduced network: the three scalar results plus the
// per-slot breakdown the chart layer renders.
type Solution struct {
	TotalResistance float64 `json:"total_resistance"` // m²·K/W
	UValue          float64 `json:"u_value"`          // W/m²·K
	HeatFlow        float64 `json:"heat_flow"`        // W

	Breakdown []Slot `json:"breakdown"`
}

// Solve reduces the wall to a single series circuit using the standard
// internal and external film resistances.
func Solve(layers []Layer, area, tInside, tOutside float64) (*Solution, error) {
	return SolveWithFilms(layers, InternalFilmResistance, ExternalFilmResistance, area, tInside, tOutside)
}

// SolveWithFilms assembles the ordered sequence [internal film, layers...,
// external film], resolves every slot, and sums the slot resistances: the
// layers all span the same flow area and sit in series along the heat-flow
// path. Heat flow follows the sign of the temperature difference as given;
// a negative result means reversed flow and is not clamped here.
func SolveWithFilms(layers []Layer, internalFilm, externalFilm, area, tInside, tOutside float64) (*Solution, error) {
	breakdown := make([]Slot, 0, len(layers)+2)
	breakdown = append(breakdown, Slot{Name: internalFilmName, Resistance: internalFilm})

	for _, layer := range layers {
		slot, err := layer.Resolve()
		if err != nil {
			return nil, err
		}
		breakdown = append(breakdown, slot)
	}
	breakdown = append(breakdown, Slot{Name: externalFilmName, Resistance: externalFilm})

	resistances := make([]float64, len(breakdown))
	for i, slot := range breakdown {
		resistances[i] = slot.Resistance
	}
	total := floats.Sum(resistances)
	if total <= 0 {
		return nil, &DegenerateNetworkError{Reason: "total resistance must be positive", Value: total}
	}

	uValue := 1 / total
	return &Solution{
		TotalResistance: total,
		UValue:          uValue,
		HeatFlow:        uValue * area * (tInside - tOutside),
		Breakdown:       breakdown,
	}, nil
}
