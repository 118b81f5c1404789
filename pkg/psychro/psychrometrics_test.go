package psychro

import (
	"errors"
	"math"
	"testing"
)

func TestSatVapPres(t *testing.T) {
	p := New(StandardPressure)

	// Reference values from the ASHRAE Handbook of Fundamentals.
	tests := []struct {
		name      string
		temp      float64
		want      float64 // Pa
		tolerance float64
	}{
		{"freezing point", 0, 611.2, 2},
		{"over ice -20C", -20, 103.2, 1},
		{"room temperature 20C", 20, 2339, 4},
		{"warm 25C", 25, 3169, 5},
		{"hot 60C", 60, 19946, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.SatVapPres(tt.temp)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("SatVapPres(%g) = %g Pa, expected %g ± %g", tt.temp, got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestSatVapPresOutOfRange(t *testing.T) {
	p := New(StandardPressure)
	for _, temp := range []float64{-150, 250} {
		_, err := p.SatVapPres(temp)
		var rangeErr *PropertyOutOfRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("SatVapPres(%g): expected PropertyOutOfRangeError, got %v", temp, err)
		}
	}
}

func TestHumRatioFromRelHum(t *testing.T) {
	p := New(StandardPressure)

	tests := []struct {
		name      string
		temp      float64
		relHum    float64
		want      float64 // kg/kg
		tolerance float64
	}{
		{"25C 50%", 25, 0.50, 0.00988, 1e-4},
		{"20C 50%", 20, 0.50, 0.00726, 1e-4},
		{"32C 55%", 32, 0.55, 0.01651, 2e-4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.HumRatioFromRelHum(tt.temp, tt.relHum)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("HumRatioFromRelHum(%g, %g) = %.5f, expected %.5f ± %g",
					tt.temp, tt.relHum, got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestHumRatioInvalidRelHum(t *testing.T) {
	p := New(StandardPressure)
	for _, rh := range []float64{-0.1, 1.5} {
		_, err := p.HumRatioFromRelHum(20, rh)
		var rangeErr *PropertyOutOfRangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("relHum=%g: expected PropertyOutOfRangeError, got %v", rh, err)
		}
	}
}

func TestDewPoint(t *testing.T) {
	p := New(StandardPressure)

	got, err := p.DewPoint(25, 0.50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-13.86) > 0.1 {
		t.Errorf("DewPoint(25, 0.50) = %g, expected ~13.86", got)
	}

	// Saturated air: dew point equals dry-bulb temperature.
	got, err = p.DewPoint(20, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 20 {
		t.Errorf("DewPoint(20, 1.0) = %g, expected 20", got)
	}
}

func TestMoistAirEnthalpy(t *testing.T) {
	p := New(StandardPressure)

	if got := p.MoistAirEnthalpy(0, 0); got != 0 {
		t.Errorf("MoistAirEnthalpy(0, 0) = %g, expected 0", got)
	}

	got := p.MoistAirEnthalpy(25, 0.00988)
	if math.Abs(got-50.3) > 0.3 {
		t.Errorf("MoistAirEnthalpy(25, 0.00988) = %g kJ/kg, expected ~50.3", got)
	}
}

func TestSaturationCurveMonotonic(t *testing.T) {
	p := New(StandardPressure)

	prev := -1.0
	for temp := -10.0; temp <= 60.0; temp += 0.5 {
		w, err := p.SatHumRatio(temp)
		if err != nil {
			t.Fatalf("SatHumRatio(%g): unexpected error: %v", temp, err)
		}
		if w <= prev {
			t.Fatalf("saturation humidity ratio not strictly increasing at %g°C: %g <= %g", temp, w, prev)
		}
		prev = w
	}
}

// FindSaturationTemperature must invert the saturation humidity ratio curve
// to within 0.01°C across the whole search bracket.
func TestFindSaturationTemperatureRoundTrip(t *testing.T) {
	p := New(StandardPressure)

	for temp := -10.0; temp <= 60.0; temp += 1.0 {
		w, err := p.SatHumRatio(temp)
		if err != nil {
			t.Fatalf("SatHumRatio(%g): unexpected error: %v", temp, err)
		}
		got, err := p.FindSaturationTemperature(w)
		if err != nil {
			t.Fatalf("FindSaturationTemperature(w(%g)): unexpected error: %v", temp, err)
		}
		if math.Abs(got-temp) > 0.01 {
			t.Errorf("round trip at %g°C came back as %g°C", temp, got)
		}
	}
}

func TestFindSaturationTemperatureOutOfRange(t *testing.T) {
	p := New(StandardPressure)

	wMax, err := p.SatHumRatio(60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = p.FindSaturationTemperature(wMax * 1.1)
	var satErr *OutOfSaturationRangeError
	if !errors.As(err, &satErr) {
		t.Fatalf("expected OutOfSaturationRangeError, got %v", err)
	}

	// The reported upper bound must be the same number an independent
	// saturation evaluation computes.
	if satErr.MaxRatio != wMax {
		t.Errorf("error reports max ratio %.7f, independent computation gives %.7f", satErr.MaxRatio, wMax)
	}
	if satErr.TempMin != -10 || satErr.TempMax != 60 {
		t.Errorf("error reports bracket [%g, %g], expected [-10, 60]", satErr.TempMin, satErr.TempMax)
	}
}

func TestNewDefaultsPressure(t *testing.T) {
	p := New(0)
	if p.Pressure != StandardPressure {
		t.Errorf("New(0).Pressure = %g, expected %g", p.Pressure, StandardPressure)
	}
	if p.SatSearchMin != -10 || p.SatSearchMax != 60 {
		t.Errorf("unexpected default bracket [%g, %g]", p.SatSearchMin, p.SatSearchMax)
	}
}
