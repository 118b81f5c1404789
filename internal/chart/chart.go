// Package chart builds JSON-ready sample series for client-side plotting:
// the psychrometric chart backdrop with process lines, and per-layer
// resistance breakdowns with wall temperature profiles. Rendering happens
// in the client; this package only samples the curves.
//
// The core solvers fail loudly on any out-of-range input. Chart sampling
// is the one place where a failed sample is dropped instead of aborting
// the whole series, since a backdrop curve losing a point at its fringe is
// not an error worth surfacing.
package chart

import (
	"gonum.org/v1/gonum/floats"

	"github.com/thermoquiz/thermoquiz/pkg/psychro"
	"github.com/thermoquiz/thermoquiz/pkg/resnet"
)

const (
	// Temperature axis of the psychrometric backdrop, °C.
	chartTempMin = 0.0
	chartTempMax = 50.0

	// Samples per backdrop curve.
	curveSamples = 101
)

// Point is one chart sample: dry-bulb temperature on X, humidity ratio in
// g/kg on Y.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is a named polyline on the chart.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// PsychroChart is the full sample set for one cooling/reheat process.
type PsychroChart struct {
	Saturation   Series   `json:"saturation"`
	RelHumCurves []Series `json:"rel_hum_curves"`

	Outside      Point `json:"outside"`
	Room         Point `json:"room"`
	CoolingPoint Point `json:"cooling_point"`

	CoolingLine Series `json:"cooling_line"`
	ReheatLine  Series `json:"reheat_line"`
}

// Psychrometric samples the chart backdrop and process lines for a solved
// cooling/reheat process.
func Psychrometric(p psychro.Psychrometrics, outside, room psychro.AirState, result *psychro.ProcessResult) *PsychroChart {
	outsidePt := Point{X: outside.DryBulbTemp, Y: toGrams(result.Outside.HumidityRatio)}
	roomPt := Point{X: room.DryBulbTemp, Y: toGrams(result.Room.HumidityRatio)}
	coolingPt := Point{X: result.CoolingPointTemp, Y: toGrams(result.Room.HumidityRatio)}

	c := &PsychroChart{
		Saturation:   saturationSeries(p),
		RelHumCurves: relHumSeries(p),
		Outside:      outsidePt,
		Room:         roomPt,
		CoolingPoint: coolingPt,
		CoolingLine: Series{
			Name:   "Cooling",
			Points: []Point{outsidePt, coolingPt},
		},
		ReheatLine: Series{
			Name:   "Reheat",
			Points: []Point{coolingPt, roomPt},
		},
	}
	return c
}

func saturationSeries(p psychro.Psychrometrics) Series {
	grid := tempGrid()
	s := Series{Name: "Saturation", Points: make([]Point, 0, len(grid))}
	for _, t := range grid {
		w, err := p.SatHumRatio(t)
		if err != nil {
			continue
		}
		s.Points = append(s.Points, Point{X: t, Y: toGrams(w)})
	}
	return s
}

// relHumSeries samples the constant relative humidity curves from 10 % to
// 90 % in steps of 10. The 100 % curve is the saturation series itself.
func relHumSeries(p psychro.Psychrometrics) []Series {
	grid := tempGrid()
	curves := make([]Series, 0, 9)
	for rh := 10; rh <= 90; rh += 10 {
		s := Series{
			Name:   relHumName(rh),
			Points: make([]Point, 0, len(grid)),
		}
		for _, t := range grid {
			w, err := p.HumRatioFromRelHum(t, float64(rh)/100)
			if err != nil {
				continue
			}
			s.Points = append(s.Points, Point{X: t, Y: toGrams(w)})
		}
		curves = append(curves, s)
	}
	return curves
}

func tempGrid() []float64 {
	return floats.Span(make([]float64, curveSamples), chartTempMin, chartTempMax)
}

func relHumName(rh int) string {
	switch rh {
	case 10:
		return "10% RH"
	case 20:
		return "20% RH"
	case 30:
		return "30% RH"
	case 40:
		return "40% RH"
	case 50:
		return "50% RH"
	case 60:
		return "60% RH"
	case 70:
		return "70% RH"
	case 80:
		return "80% RH"
	default:
		return "90% RH"
	}
}

// toGrams converts a humidity ratio from kg/kg to g/kg, the unit shown on
// the chart Y axis.
func toGrams(w float64) float64 {
	return w * 1000
}

// ResistanceBar is one slot of the wall breakdown chart.
type ResistanceBar struct {
	Label      string  `json:"label"`
	Resistance float64 `json:"resistance"` // m²·K/W
	Mixed      bool    `json:"mixed,omitempty"`
}

// TemperaturePoint is the temperature at one slot boundary, walking the
// wall from inside air to outside air.
type TemperaturePoint struct {
	Label       string  `json:"label"`
	Temperature float64 `json:"temperature"` // °C
}

// ResistanceChart is the sample set for one solved wall: the per-slot
// resistance bars and the interface temperature profile.
type ResistanceChart struct {
	Bars    []ResistanceBar    `json:"bars"`
	Profile []TemperaturePoint `json:"profile"`
}

// Resistance builds the breakdown chart for a solved wall. The profile
// distributes the overall temperature difference across the slots in
// proportion to their resistances.
func Resistance(sol *resnet.Solution, tInside, tOutside float64) *ResistanceChart {
	c := &ResistanceChart{
		Bars:    make([]ResistanceBar, 0, len(sol.Breakdown)),
		Profile: make([]TemperaturePoint, 0, len(sol.Breakdown)+1),
	}

	c.Profile = append(c.Profile, TemperaturePoint{Label: "Inside Air", Temperature: tInside})
	t := tInside
	deltaT := tInside - tOutside
	for _, slot := range sol.Breakdown {
		c.Bars = append(c.Bars, ResistanceBar{
			Label:      slot.Name,
			Resistance: slot.Resistance,
			Mixed:      slot.Mixed,
		})
		t -= deltaT * slot.Resistance / sol.TotalResistance
		c.Profile = append(c.Profile, TemperaturePoint{Label: slot.Name, Temperature: t})
	}
	return c
}
