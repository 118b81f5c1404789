package psychro

import (
	"fmt"
	"math"
)

// AirState is a moist-air condition at a point in the process: dry-bulb
// temperature in °C and relative humidity in percent (0-100).
type AirState struct {
	DryBulbTemp float64 `json:"temperature"`
	RelHumidity float64 `json:"relative_humidity"`
}

// StateProperties holds the derived properties of an AirState.
type StateProperties struct {
	HumidityRatio float64 `json:"humidity_ratio"` // kg water / kg dry air
	DewPoint      float64 `json:"dew_point"`      // °C
	Enthalpy      float64 `json:"enthalpy"`       // kJ/kg dry air
}

// ProcessResult describes a solved cooling/reheat process: outside air is
// cooled at constant pressure until it reaches saturation at the room's
// moisture content (the cooling point), then reheated at constant humidity
// ratio up to the room dry-bulb temperature.
type ProcessResult struct {
	Outside StateProperties `json:"outside"`
	Room    StateProperties `json:"room"`

	CoolingPointTemp     float64 `json:"cooling_point_temp"`     // °C
	CoolingPointEnthalpy float64 `json:"cooling_point_enthalpy"` // kJ/kg

	// Enthalpy deltas across the two segments: cooling point minus
	// outside, and room minus cooling point.
	CoolingEnthalpyDelta float64 `json:"cooling_enthalpy_delta"` // kJ/kg
	ReheatEnthalpyDelta  float64 `json:"reheat_enthalpy_delta"`  // kJ/kg

	CoolerLoad   float64 `json:"cooler_load"`   // kW
	ReheaterLoad float64 `json:"reheater_load"` // kW
}

// StateProperties derives humidity ratio, dew point and enthalpy for a
// single air state.
func (p Psychrometrics) StateProperties(s AirState) (StateProperties, error) {
	if s.RelHumidity < 0 || s.RelHumidity > 100 {
		return StateProperties{}, &PropertyOutOfRangeError{
			Property: "relative humidity",
			Value:    s.RelHumidity,
			Min:      0,
			Max:      100,
		}
	}
	rh := s.RelHumidity / 100

	w, err := p.HumRatioFromRelHum(s.DryBulbTemp, rh)
	if err != nil {
		return StateProperties{}, err
	}
	dp, err := p.DewPoint(s.DryBulbTemp, rh)
	if err != nil {
		return StateProperties{}, err
	}
	return StateProperties{
		HumidityRatio: w,
		DewPoint:      dp,
		Enthalpy:      p.MoistAirEnthalpy(s.DryBulbTemp, w),
	}, nil
}

// SolveCoolingProcess solves the cooling/reheat process between the outside
// and room conditions for the given mass flow (kg/s) and specific heat
// (kJ/kg·K). The outside condition must be strictly hotter than the room
// condition. Cooler and reheater loads are clamped to zero when a stage is
// not required by the geometry; the clamp is a deliberate policy carried
// from the question format, not an error.
func (p Psychrometrics) SolveCoolingProcess(outside, room AirState, massFlow, specificHeat float64) (*ProcessResult, error) {
	if outside.DryBulbTemp <= room.DryBulbTemp {
		return nil, &InvalidProcessGeometryError{
			OutsideTemp: outside.DryBulbTemp,
			RoomTemp:    room.DryBulbTemp,
		}
	}

	op, err := p.StateProperties(outside)
	if err != nil {
		return nil, fmt.Errorf("outside condition: %w", err)
	}
	rp, err := p.StateProperties(room)
	if err != nil {
		return nil, fmt.Errorf("room condition: %w", err)
	}

	// The cooling point sits on the saturation curve at the room's
	// moisture content.
	tSat, err := p.FindSaturationTemperature(rp.HumidityRatio)
	if err != nil {
		return nil, fmt.Errorf("cooling point for room condition: %w", err)
	}
	hSat := p.MoistAirEnthalpy(tSat, rp.HumidityRatio)

	coolerLoad := massFlow * specificHeat * (outside.DryBulbTemp - tSat)
	reheaterLoad := massFlow * specificHeat * (room.DryBulbTemp - tSat)

	return &ProcessResult{
		Outside:              op,
		Room:                 rp,
		CoolingPointTemp:     tSat,
		CoolingPointEnthalpy: hSat,
		CoolingEnthalpyDelta: hSat - op.Enthalpy,
		ReheatEnthalpyDelta:  rp.Enthalpy - hSat,
		CoolerLoad:           math.Max(coolerLoad, 0),
		ReheaterLoad:         math.Max(reheaterLoad, 0),
	}, nil
}
