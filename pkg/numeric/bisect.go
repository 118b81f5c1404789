// Package numeric provides small self-contained numerical routines shared
// by the solver packages.
package numeric

import (
	"fmt"
	"math"
)

// Defaults for the bisection search. 100 iterations halve an initial
// bracket of 70 K down to ~5e-20, far below any tolerance we use.
const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 100
)

// Func is a scalar function that may fail to evaluate at a point.
type Func func(x float64) (float64, error)

// Bisect finds a root of f within [lo, hi] by interval bisection. The
// bracket must straddle a sign change. The search stops when the half
// bracket width drops below tol or the residual is exactly zero, and
// errors out if maxIter iterations are exhausted first. Evaluation
// errors from f abort the search immediately.
func Bisect(f Func, lo, hi, tol float64, maxIter int) (float64, error) {
	if hi <= lo {
		return 0, fmt.Errorf("bisect: invalid bracket [%g, %g]", lo, hi)
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	flo, err := f(lo)
	if err != nil {
		return 0, fmt.Errorf("bisect: evaluating lower bound %g: %w", lo, err)
	}
	if flo == 0 {
		return lo, nil
	}
	fhi, err := f(hi)
	if err != nil {
		return 0, fmt.Errorf("bisect: evaluating upper bound %g: %w", hi, err)
	}
	if fhi == 0 {
		return hi, nil
	}
	if math.Signbit(flo) == math.Signbit(fhi) {
		return 0, fmt.Errorf("bisect: no sign change over [%g, %g]", lo, hi)
	}

	for i := 0; i < maxIter; i++ {
		mid := lo + (hi-lo)/2
		fmid, err := f(mid)
		if err != nil {
			return 0, fmt.Errorf("bisect: evaluating %g: %w", mid, err)
		}
		if fmid == 0 || (hi-lo)/2 < tol {
			return mid, nil
		}
		if math.Signbit(fmid) == math.Signbit(flo) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return 0, fmt.Errorf("bisect: no convergence within %d iterations", maxIter)
}
