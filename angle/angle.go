// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package angle collects the small set of angle-normalisation helpers and
// physical constants shared by every package in the astronomical pipeline.
// VSOP87D/LEA-406 evaluation, nutation, root finding and event search all
// reduce to plain float64 radians at this level, the way base.PMod serves
// every chapter package in the teacher.
package angle

import "math"

// ASec2Rad converts arcseconds to radians.
const ASec2Rad = 4.848136811095359935899141e-6

// Deg2Rad converts degrees to radians.
const Deg2Rad = math.Pi / 180

// TwoPi is 2π, named because it is used often enough in this package and
// its callers to deserve it.
const TwoPi = 2 * math.Pi

// Norm2Pi normalises r to the half-open range [0, 2π).
func Norm2Pi(r float64) float64 {
	a := math.Mod(r, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a
}

// NPiToPi folds r into (−π, +π], the range the solar-term and new-moon
// residual functions need so f is continuous across the target angle they
// search for.
func NPiToPi(r float64) float64 {
	a := math.Mod(r, TwoPi)
	switch {
	case a > math.Pi:
		a -= TwoPi
	case a <= -math.Pi:
		a += TwoPi
	}
	return a
}
