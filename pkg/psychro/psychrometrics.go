// Package psychro implements moist-air property calculations and the
// cooling/reheat process solver behind the psychrometry questions.
//
// All correlations are in SI units. Saturation vapor pressure follows the
// Hyland-Wexler formulation from the ASHRAE Handbook of Fundamentals,
// valid from -100°C to 200°C.
package psychro

import (
	"fmt"
	"math"

	"github.com/thermoquiz/thermoquiz/pkg/numeric"
)

const (
	// StandardPressure is standard atmospheric pressure in Pa.
	StandardPressure = 101325.0

	// Validity range of the saturation vapor pressure correlation, °C.
	MinDryBulbTemp = -100.0
	MaxDryBulbTemp = 200.0

	// Default search bracket for the saturation-curve inversion, °C.
	// Matches the span of the psychrometric chart served to clients.
	DefaultSatSearchMin = -10.0
	DefaultSatSearchMax = 60.0

	// Ratio of water vapor to dry air molecular masses.
	vaporMassRatio = 0.621945

	// Temperature tolerance for root-finding, °C.
	tempTolerance = 1e-4

	// Floor for computed humidity ratios, kg/kg.
	minHumidityRatio = 1e-7
)

// Psychrometrics evaluates moist-air properties at a fixed total pressure.
// The zero value is not usable; construct with New. Values are cheap to
// copy and safe for concurrent use.
type Psychrometrics struct {
	// Pressure is the total pressure in Pa.
	Pressure float64

	// SatSearchMin and SatSearchMax bound the saturation-curve inversion.
	SatSearchMin float64
	SatSearchMax float64
}

// New returns a Psychrometrics evaluating at the given total pressure in
// Pa, with the default saturation search bracket. A non-positive pressure
// selects standard atmospheric pressure.
func New(pressure float64) Psychrometrics {
	if pressure <= 0 {
		pressure = StandardPressure
	}
	return Psychrometrics{
		Pressure:     pressure,
		SatSearchMin: DefaultSatSearchMin,
		SatSearchMax: DefaultSatSearchMax,
	}
}

// SatVapPres returns the saturation vapor pressure in Pa over liquid water
// (or ice below 0°C) at dry-bulb temperature t in °C.
func (p Psychrometrics) SatVapPres(t float64) (float64, error) {
	if t < MinDryBulbTemp || t > MaxDryBulbTemp {
		return 0, &PropertyOutOfRangeError{
			Property: "dry-bulb temperature",
			Value:    t,
			Min:      MinDryBulbTemp,
			Max:      MaxDryBulbTemp,
		}
	}

	tk := t + 273.15
	var lnPws float64
	if t <= 0 {
		// Over ice
		lnPws = -5.6745359e3/tk + 6.3925247 - 9.677843e-3*tk +
			6.2215701e-7*tk*tk + 2.0747825e-9*math.Pow(tk, 3) -
			9.484024e-13*math.Pow(tk, 4) + 4.1635019*math.Log(tk)
	} else {
		// Over liquid water
		lnPws = -5.8002206e3/tk + 1.3914993 - 4.8640239e-2*tk +
			4.1764768e-5*tk*tk - 1.4452093e-8*math.Pow(tk, 3) +
			6.5459673*math.Log(tk)
	}
	return math.Exp(lnPws), nil
}

// VapPresFromRelHum returns the partial pressure of water vapor in Pa at
// dry-bulb temperature t (°C) and relative humidity relHum given as a
// fraction in [0, 1].
func (p Psychrometrics) VapPresFromRelHum(t, relHum float64) (float64, error) {
	if relHum < 0 || relHum > 1 {
		return 0, &PropertyOutOfRangeError{
			Property: "relative humidity fraction",
			Value:    relHum,
			Min:      0,
			Max:      1,
		}
	}
	pws, err := p.SatVapPres(t)
	if err != nil {
		return 0, err
	}
	return relHum * pws, nil
}

// HumRatioFromVapPres converts a water vapor partial pressure in Pa to a
// humidity ratio in kg water / kg dry air at the configured total pressure.
func (p Psychrometrics) HumRatioFromVapPres(vapPres float64) (float64, error) {
	if vapPres < 0 || vapPres >= p.Pressure {
		return 0, &PropertyOutOfRangeError{
			Property: "vapor pressure",
			Value:    vapPres,
			Min:      0,
			Max:      p.Pressure,
		}
	}
	w := vaporMassRatio * vapPres / (p.Pressure - vapPres)
	return math.Max(w, minHumidityRatio), nil
}

// HumRatioFromRelHum returns the humidity ratio in kg/kg at dry-bulb
// temperature t (°C) and relative humidity fraction relHum in [0, 1].
func (p Psychrometrics) HumRatioFromRelHum(t, relHum float64) (float64, error) {
	pv, err := p.VapPresFromRelHum(t, relHum)
	if err != nil {
		return 0, err
	}
	return p.HumRatioFromVapPres(pv)
}

// SatHumRatio returns the humidity ratio of saturated air (100% RH) at
// dry-bulb temperature t in °C.
func (p Psychrometrics) SatHumRatio(t float64) (float64, error) {
	return p.HumRatioFromRelHum(t, 1.0)
}

// DewPoint returns the dew point temperature in °C for air at dry-bulb
// temperature t (°C) and relative humidity fraction relHum. The dew point
// is found by inverting the saturation vapor pressure curve, which is
// strictly increasing in temperature.
func (p Psychrometrics) DewPoint(t, relHum float64) (float64, error) {
	pv, err := p.VapPresFromRelHum(t, relHum)
	if err != nil {
		return 0, err
	}
	if relHum == 1 {
		return t, nil
	}
	td, err := numeric.Bisect(func(x float64) (float64, error) {
		pws, err := p.SatVapPres(x)
		if err != nil {
			return 0, err
		}
		return pws - pv, nil
	}, MinDryBulbTemp, t, tempTolerance, numeric.DefaultMaxIterations)
	if err != nil {
		return 0, fmt.Errorf("psychro: dew point at %g°C / %.0f%% RH: %w", t, relHum*100, err)
	}
	return td, nil
}

// MoistAirEnthalpy returns the specific enthalpy of moist air in kJ per kg
// of dry air at dry-bulb temperature t (°C) and humidity ratio w (kg/kg),
// referenced to dry air at 0°C.
func (p Psychrometrics) MoistAirEnthalpy(t, w float64) float64 {
	return 1.006*t + w*(2501+1.86*t)
}

// FindSaturationTemperature returns the dry-bulb temperature on the
// saturation curve (100% RH) whose humidity ratio equals targetW, searched
// over the configured bracket. The saturation humidity ratio is strictly
// increasing in temperature, so the root is unique whenever the target
// lies between the bracket-end ratios; targets outside that span fail with
// OutOfSaturationRangeError carrying the computed bounds.
func (p Psychrometrics) FindSaturationTemperature(targetW float64) (float64, error) {
	wMin, err := p.SatHumRatio(p.SatSearchMin)
	if err != nil {
		return 0, fmt.Errorf("psychro: saturation ratio at bracket minimum %g°C: %w", p.SatSearchMin, err)
	}
	wMax, err := p.SatHumRatio(p.SatSearchMax)
	if err != nil {
		return 0, fmt.Errorf("psychro: saturation ratio at bracket maximum %g°C: %w", p.SatSearchMax, err)
	}
	if targetW < wMin || targetW > wMax {
		return 0, &OutOfSaturationRangeError{
			Target:   targetW,
			MinRatio: wMin,
			MaxRatio: wMax,
			TempMin:  p.SatSearchMin,
			TempMax:  p.SatSearchMax,
		}
	}

	tSat, err := numeric.Bisect(func(t float64) (float64, error) {
		w, err := p.SatHumRatio(t)
		if err != nil {
			return 0, err
		}
		return w - targetW, nil
	}, p.SatSearchMin, p.SatSearchMax, tempTolerance, numeric.DefaultMaxIterations)
	if err != nil {
		return 0, fmt.Errorf("psychro: inverting saturation curve for w=%.5f: %w", targetW, err)
	}
	return tSat, nil
}
