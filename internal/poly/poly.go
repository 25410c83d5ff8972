// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package poly holds the one helper nearly every package in this module
// needs: Horner's method for evaluating a polynomial. Lifted from
// base.Horner in the teacher package so every ΔT segment, VSOP87D series,
// nutation fundamental argument and LEA-406 mean longitude evaluates a
// polynomial the same way.
package poly

// Horner evaluates a polynomial with coefficients c at x. The constant
// term is c[0]. Horner panics given an empty coefficient list.
func Horner(x float64, c ...float64) float64 {
	i := len(c) - 1
	y := c[i]
	for i > 0 {
		i--
		y = y*x + c[i]
	}
	return y
}
