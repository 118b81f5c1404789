package resnet

import "fmt"

// InvalidLayerSpecError reports a wall layer whose physical definition is
// incomplete or unusable. Networks containing such a layer must be rejected
// whole rather than solved with a guessed value.
type InvalidLayerSpecError struct {
	Material string
	Reason   string
}

func (e *InvalidLayerSpecError) Error() string {
	return fmt.Sprintf("resnet: layer %q: %s", e.Material, e.Reason)
}

// DegenerateNetworkError reports a resistance network that cannot represent
// a physical wall: a non-positive aggregate resistance or malformed
// parallel-path fractions.
type DegenerateNetworkError struct {
	Reason string
	Value  float64
}

func (e *DegenerateNetworkError) Error() string {
	return fmt.Sprintf("resnet: degenerate network: %s (%g)", e.Reason, e.Value)
}
