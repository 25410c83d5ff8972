// Copyright 2013 Sonia Keys
// License: MIT

// Package root finds roots of continuous scalar residual functions by the
// secant method, in the spirit of the teacher's iterate package (Chapter 5):
// minimal, illustrative of the text it implements, not a general-purpose
// numerics library. The engine's solar-term and new-moon searches both wrap
// an apparent-longitude residual and hand it to Secant (§4.6).
package root

import (
	"errors"
	"math"
)

// ResidualFunc is a convenience type for the function Secant iterates.
type ResidualFunc func(x float64) float64

// ErrMaxIterations is returned (wrapped with the last estimate) when Secant
// exhausts its iteration budget without converging. Callers that seed the
// search close to the answer, as the engine does, should treat this as a
// warning rather than a hard failure: the returned x is still usually a
// good estimate (§7 ConvergenceWarning).
var ErrMaxIterations = errors.New("root: maximum iterations reached")

// maxIterations bounds Secant's iteration count. The engine's residual
// functions converge in 3-5 iterations when seeded near the answer; this
// is a generous ceiling, not a tuned parameter.
const maxIterations = 50

// Secant finds x such that f(x) ≈ 0, starting from two estimates x0, x1,
// stopping when |f(x1)| < eps, when |x0 - x1| < eps, or when f(x0) equals
// f(x1) (the secant line is degenerate and iteration cannot continue).
//
// x2 = x1 - f(x1)*(x1-x0)/(f(x1)-f(x0))
//
// If the iteration budget is exhausted first, Secant returns its last
// estimate along with ErrMaxIterations.
func Secant(f ResidualFunc, x0, x1, eps float64) (float64, error) {
	f0 := f(x0)
	for i := 0; i < maxIterations; i++ {
		f1 := f(x1)
		if math.Abs(f1) < eps {
			return x1, nil
		}
		if math.Abs(x1-x0) < eps {
			return x1, nil
		}
		if f1 == f0 {
			return x1, nil
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		x0, f0 = x1, f1
		x1 = x2
	}
	return x1, ErrMaxIterations
}
