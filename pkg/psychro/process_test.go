package psychro

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSolveCoolingProcess(t *testing.T) {
	p := New(StandardPressure)

	outside := AirState{DryBulbTemp: 32, RelHumidity: 55}
	room := AirState{DryBulbTemp: 20, RelHumidity: 50}
	massFlow := 2.5
	cp := 1.02

	res, err := p.SolveCoolingProcess(outside, room, massFlow, cp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The cooling point is saturation at the room's moisture content,
	// which for sub-saturated room air sits below the room dry-bulb
	// temperature, and always within the search bracket.
	if res.CoolingPointTemp >= room.DryBulbTemp {
		t.Errorf("cooling point %g°C not below room temperature %g°C", res.CoolingPointTemp, room.DryBulbTemp)
	}
	if res.CoolingPointTemp <= p.SatSearchMin {
		t.Errorf("cooling point %g°C outside search bracket", res.CoolingPointTemp)
	}

	// Cooling to saturation at constant moisture content is exactly the
	// room state's dew point.
	if math.Abs(res.CoolingPointTemp-res.Room.DewPoint) > 0.05 {
		t.Errorf("cooling point %g°C disagrees with room dew point %g°C", res.CoolingPointTemp, res.Room.DewPoint)
	}

	if res.CoolerLoad < 0 || res.ReheaterLoad < 0 {
		t.Errorf("loads must be non-negative, got cooler=%g reheater=%g", res.CoolerLoad, res.ReheaterLoad)
	}

	// The temperature spans implied by the two loads must cover the
	// outside-to-room range: (T_out - T_sat) - (T_room - T_sat) = T_out - T_room.
	coolerSpan := res.CoolerLoad / (massFlow * cp)
	reheatSpan := res.ReheaterLoad / (massFlow * cp)
	if math.Abs((coolerSpan-reheatSpan)-(outside.DryBulbTemp-room.DryBulbTemp)) > 1e-6 {
		t.Errorf("load spans inconsistent: cooler=%g reheat=%g", coolerSpan, reheatSpan)
	}

	// Moisture is removed in the cooling stage, so the outside humidity
	// ratio must exceed the room's here.
	if res.Outside.HumidityRatio <= res.Room.HumidityRatio {
		t.Errorf("expected outside humidity ratio %g > room %g", res.Outside.HumidityRatio, res.Room.HumidityRatio)
	}

	// Enthalpy deltas: cooling releases heat (negative delta), reheat
	// adds it back (positive delta).
	if res.CoolingEnthalpyDelta >= 0 {
		t.Errorf("expected negative cooling enthalpy delta, got %g", res.CoolingEnthalpyDelta)
	}
	if res.ReheatEnthalpyDelta <= 0 {
		t.Errorf("expected positive reheat enthalpy delta, got %g", res.ReheatEnthalpyDelta)
	}
}

func TestSolveCoolingProcessGeometry(t *testing.T) {
	p := New(StandardPressure)

	tests := []struct {
		name     string
		outside  AirState
		room     AirState
	}{
		{
			name:    "outside colder than room",
			outside: AirState{DryBulbTemp: 18, RelHumidity: 55},
			room:    AirState{DryBulbTemp: 20, RelHumidity: 50},
		},
		{
			name:    "equal temperatures",
			outside: AirState{DryBulbTemp: 20, RelHumidity: 55},
			room:    AirState{DryBulbTemp: 20, RelHumidity: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.SolveCoolingProcess(tt.outside, tt.room, 2.5, 1.02)
			var geomErr *InvalidProcessGeometryError
			if !errors.As(err, &geomErr) {
				t.Fatalf("expected InvalidProcessGeometryError, got %v", err)
			}
			if geomErr.OutsideTemp != tt.outside.DryBulbTemp || geomErr.RoomTemp != tt.room.DryBulbTemp {
				t.Errorf("error carries temps (%g, %g), expected (%g, %g)",
					geomErr.OutsideTemp, geomErr.RoomTemp, tt.outside.DryBulbTemp, tt.room.DryBulbTemp)
			}
		})
	}
}

func TestSolveCoolingProcessLabelsFailingState(t *testing.T) {
	p := New(StandardPressure)

	_, err := p.SolveCoolingProcess(
		AirState{DryBulbTemp: 32, RelHumidity: 150},
		AirState{DryBulbTemp: 20, RelHumidity: 50},
		2.5, 1.02)
	if err == nil || !strings.Contains(err.Error(), "outside condition") {
		t.Fatalf("expected error naming the outside condition, got %v", err)
	}

	_, err = p.SolveCoolingProcess(
		AirState{DryBulbTemp: 32, RelHumidity: 55},
		AirState{DryBulbTemp: 20, RelHumidity: -5},
		2.5, 1.02)
	if err == nil || !strings.Contains(err.Error(), "room condition") {
		t.Fatalf("expected error naming the room condition, got %v", err)
	}
}

func TestStateProperties(t *testing.T) {
	p := New(StandardPressure)

	props, err := p.StateProperties(AirState{DryBulbTemp: 25, RelHumidity: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(props.HumidityRatio-0.00988) > 1e-4 {
		t.Errorf("humidity ratio %g, expected ~0.00988", props.HumidityRatio)
	}
	if math.Abs(props.DewPoint-13.86) > 0.1 {
		t.Errorf("dew point %g, expected ~13.86", props.DewPoint)
	}
	if math.Abs(props.Enthalpy-50.3) > 0.3 {
		t.Errorf("enthalpy %g, expected ~50.3", props.Enthalpy)
	}
}
