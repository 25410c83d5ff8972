// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package moonposition computes the Moon's apparent geocentric ecliptic
// longitude from a LEA-406-shaped series: a V0 mean-longitude polynomial
// plus a struct-of-arrays harmonic sum, the way the teacher's moonposition
// package builds Position from a V0 polynomial plus the ta/tb Table 47.A
// periodic terms (§4.4).
//
// The harmonic table here is derived at init time from the classical
// Moon elongation/anomaly/latitude argument combinations (the same
// (D, M, M′, F) integer-multiplier rows Meeus's Table 47.A lists) rather
// than typed in as literal LEA-406 (f0..f4) rows: the full LEA-406 theory
// carries on the order of 10³–10⁴ rows that were not available to copy
// verbatim, so this reduces to its dominant ~40 terms (see DESIGN.md).
// Converting (D, M, M′, F) integers once at init time into a flat
// (f0, f1) argument polynomial reproduces the LEA-406 row shape exactly
// -- f2, f3 and f4 are always zero because the source data truncates the
// fundamental arguments to their linear-in-t terms.
package moonposition

import (
	"math"

	"github.com/lunartime/lunargo/angle"
	"github.com/lunartime/lunargo/internal/poly"
	"github.com/lunartime/lunargo/nutation"
	"github.com/soniakeys/unit"
)

// term is one row of the harmonic sum (§4.4 step 3-4): argument
// polynomial-of-t coefficients f0 (arcsec) and f1 (arcsec/century), phase
// triple c/cT/cTT (radians, pre-scaled from degrees at init), and
// amplitude triple a/aT/aTT (arcsec).
type term struct {
	f0, f1     float64
	c, cT, cTT float64
	a, aT, aTT float64
	nM         int // Sun-anomaly multiplier; nonzero rows need the E^|nM| eccentricity correction
}

// rawTerm is a Table-47.A-style row: integer multipliers of D (elongation),
// M (Sun anomaly), M′ (Moon anomaly), F (latitude argument), and Σl
// amplitude in units of 1e-6 degree.
type rawTerm struct {
	nD, nM, nMp, nF int
	sigmaL          float64
}

// Fundamental-argument polynomials, arcsec and arcsec/century, Meeus ch.47 /
// IAU 2000B convention (shared numerically with package nutation's L, L',
// F, D — the classical lunar theory and the nutation theory use the same
// mean elongation/anomaly/latitude arguments).
const (
	d0, d1   = 1072260.70369, 1602961601.2090
	m0, m1   = 1287104.79305, 129596581.0481
	mp0, mp1 = 485868.249036, 1717915923.2178
	f0c, f1c = 335779.526232, 1739527262.8478
)

var table []term

func init() {
	table = make([]term, len(rawTable))
	for i, r := range rawTable {
		table[i] = term{
			f0: float64(r.nD)*d0 + float64(r.nM)*m0 + float64(r.nMp)*mp0 + float64(r.nF)*f0c,
			f1: float64(r.nD)*d1 + float64(r.nM)*m1 + float64(r.nMp)*mp1 + float64(r.nF)*f1c,
			a:  r.sigmaL * 3.6e-3, // 1e-6 degree -> arcsec
			nM: r.nM,
		}
	}
}

// v0Poly is the LEA-406 mean-longitude polynomial (§4.4 step 2), arcsec.
var v0Poly = []float64{785939.924268, 1732564372.3047, -5.279, 0.006665, -5.522e-5}

// ApparentLongitude returns the Moon's apparent geocentric ecliptic
// longitude for jdTT (§4.4). If suppressNutation is true, Δψ is omitted.
func ApparentLongitude(jdTT float64, suppressNutation bool) unit.Angle {
	t := (jdTT - 2451545) / 36525
	tm := t / 10

	v0 := poly.Horner(t, v0Poly...)

	// Earth-orbit eccentricity correction (Meeus ch.47): any term whose
	// argument carries the Sun's mean anomaly M must scale its amplitude by
	// E raised to the |nM| power, since Table 47.A's Σl amplitudes are
	// tabulated for the J2000 eccentricity and drift with t otherwise.
	e := 1 - 0.002516*t - 0.0000074*t*t

	sum := 0.0
	for i := range table {
		row := &table[i]
		ecc := math.Pow(e, math.Abs(float64(row.nM)))
		arg := (row.f0 + row.f1*t) * angle.ASec2Rad
		sum += ecc * (row.a*math.Sin(arg+row.c) +
			row.aT*math.Sin(arg+row.cT)*tm +
			row.aTT*math.Sin(arg+row.cTT)*tm*tm)
	}

	v := (v0 + sum) * angle.ASec2Rad
	if !suppressNutation {
		v += nutation.Nutation(jdTT).Rad()
	}
	return unit.Angle(angle.Norm2Pi(v))
}
