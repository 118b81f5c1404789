// Package generator produces randomized question scenarios from the
// material catalog: multilayer wall heat loss, thermal bridging and
// psychrometric cooling/reheat processes. The numeric solving itself lives
// in pkg/resnet and pkg/psychro; this package only draws parameters.
package generator

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/thermoquiz/thermoquiz/pkg/catalog"
)

// DefaultSpecificHeat is the specific heat of moist air used by the
// psychrometry questions, kJ/kg·K.
const DefaultSpecificHeat = 1.02

// Generator draws random question scenarios. Safe for concurrent use; the
// underlying rand source is guarded by a mutex.
type Generator struct {
	catalog      *catalog.Catalog
	specificHeat float64

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator over the given catalog. A zero seed selects a
// time-based seed; a fixed seed makes the question stream reproducible. A
// non-positive specificHeat selects the default.
func New(cat *catalog.Catalog, seed int64, specificHeat float64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if specificHeat <= 0 {
		specificHeat = DefaultSpecificHeat
	}
	return &Generator{
		catalog:      cat,
		specificHeat: specificHeat,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// intBetween returns a uniform integer in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.Intn(hi-lo+1)
}

// floatBetween returns a uniform float in [lo, hi).
func (g *Generator) floatBetween(lo, hi float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rng.Float64()*(hi-lo)
}

// pick returns a uniform index into a collection of length n.
func (g *Generator) pick(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

// round2 rounds to two decimal places, matching the precision shown in the
// question data.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
