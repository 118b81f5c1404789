package psychro

import "fmt"

// PropertyOutOfRangeError reports a moist-air property evaluation outside
// the supported range of the underlying correlation.
type PropertyOutOfRangeError struct {
	Property string
	Value    float64
	Min, Max float64
}

func (e *PropertyOutOfRangeError) Error() string {
	return fmt.Sprintf("psychro: %s %g outside supported range [%g, %g]",
		e.Property, e.Value, e.Min, e.Max)
}

// OutOfSaturationRangeError reports a target humidity ratio that cannot be
// reached on the saturation curve within the configured temperature bracket.
// MinRatio and MaxRatio are the saturation humidity ratios at the bracket
// ends, so callers can explain the infeasibility.
type OutOfSaturationRangeError struct {
	Target             float64
	MinRatio, MaxRatio float64
	TempMin, TempMax   float64
}

func (e *OutOfSaturationRangeError) Error() string {
	return fmt.Sprintf("psychro: humidity ratio %.5f kg/kg outside the saturation curve range (%.5f to %.5f kg/kg over %g..%g°C)",
		e.Target, e.MinRatio, e.MaxRatio, e.TempMin, e.TempMax)
}

// InvalidProcessGeometryError reports a cooling/reheat process whose outside
// condition is not hotter than the room condition.
type InvalidProcessGeometryError struct {
	OutsideTemp float64
	RoomTemp    float64
}

func (e *InvalidProcessGeometryError) Error() string {
	return fmt.Sprintf("psychro: room condition (%g°C) must be cooler than outside condition (%g°C)",
		e.RoomTemp, e.OutsideTemp)
}
