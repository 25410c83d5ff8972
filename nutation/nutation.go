// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package nutation computes Δψ, the nutation in longitude, from the
// fundamental-argument/periodic-term model of §4.5: five linear-in-t
// fundamental arguments (Moon mean anomaly, Sun mean anomaly, Moon argument
// of latitude, elongation, ascending node) combined through a table of
// integer multipliers and arcsecond coefficients, the same shape as the
// teacher's Chapter 22 table but carried at reduced row count (see DESIGN.md).
package nutation

import (
	"math"

	"github.com/lunartime/lunargo/angle"
	"github.com/lunartime/lunargo/internal/poly"
	"github.com/soniakeys/unit"
)

// term is one row of the periodic table: multipliers m1..m5 of the
// fundamental arguments (L, L', F, D, Ω) in that order, the longitude
// coefficient split into constant and per-century parts (s, sT), and a
// cosine coefficient c′. Coefficients are in units of 0.0001 arcsec.
type term struct {
	m1, m2, m3, m4, m5 float64
	s, sT, cPrime      float64
}

// fundamentalArgs returns L, L', F, D, Ω in arcsec for t, Julian centuries
// since J2000 (§4.5).
func fundamentalArgs(t float64) (l, lp, f, d, om float64) {
	l = poly.Horner(t, 485868.249036, 1717915923.2178)
	lp = poly.Horner(t, 1287104.79305, 129596581.0481)
	f = poly.Horner(t, 335779.526232, 1739527262.8478)
	d = poly.Horner(t, 1072260.70369, 1602961601.2090)
	om = poly.Horner(t, 450160.398036, -6962890.5431)
	return
}

// Nutation returns Δψ, the nutation in longitude, for a Julian Date in
// Terrestrial Time.
func Nutation(jdTT float64) unit.Angle {
	t := (jdTT - 2451545) / 36525
	l, lp, f, d, om := fundamentalArgs(t)
	var dpsi float64 // 0.0001 arcsec
	for _, row := range table {
		arg := (row.m1*l + row.m2*lp + row.m3*f + row.m4*d + row.m5*om) * angle.ASec2Rad
		dpsi += (row.s+row.sT*t)*math.Sin(arg) + row.cPrime*math.Cos(arg)
	}
	// long-period planetary constant (§4.5); obliquity nutation Δε is not
	// needed by the calendar and is not computed.
	return unit.AngleFromSec(dpsi*0.0001 + 0.000388)
}

// table holds the periodic terms, ordered by decreasing amplitude of Δψ.
// Columns are (m1 m2 m3 m4 m5 | s sT cPrime); s, sT, cPrime in 0.0001 arcsec.
// c′ is left zero throughout: the underlying 1980-theory derivation this
// model is built from supplies no independent cosine term for Δψ, only for
// Δε, which this package does not compute.
var table = []term{
	{0, 0, 0, 0, 1, -171996, -174.2, 0},
	{0, 0, 2, -2, 2, -13187, -1.6, 0},
	{0, 0, 2, 0, 2, -2274, -0.2, 0},
	{0, 0, 0, 0, 2, 2062, 0.2, 0},
	{0, 1, 0, 0, 0, 1426, -3.4, 0},
	{1, 0, 0, 0, 0, 712, 0.1, 0},
	{0, 1, 2, -2, 2, -517, 1.2, 0},
	{0, 0, 2, 0, 1, -386, -0.4, 0},
	{1, 0, 2, 0, 2, -301, 0, 0},
	{0, -1, 2, -2, 2, 217, -0.5, 0},
	{1, 0, 0, -2, 0, -158, 0, 0},
	{0, 0, 2, -2, 1, 129, 0.1, 0},
	{-1, 0, 2, 0, 2, 123, 0, 0},
	{0, 0, 0, 2, 0, 63, 0, 0},
	{1, 0, 0, 0, 1, 63, 0.1, 0},
	{-1, 0, 2, 2, 2, -59, 0, 0},
	{-1, 0, 0, 0, 1, -58, -0.1, 0},
	{1, 0, 2, 0, 1, -51, 0, 0},
	{2, 0, 0, -2, 0, 48, 0, 0},
	{-2, 0, 2, 0, 1, 46, 0, 0},
	{0, 0, 2, 2, 2, -38, 0, 0},
	{2, 0, 2, 0, 2, -31, 0, 0},
	{2, 0, 0, 0, 0, 29, 0, 0},
	{1, 0, 2, -2, 2, 29, 0, 0},
	{0, 0, 2, 0, 0, 26, 0, 0},
	{0, 0, 2, -2, 0, -22, 0, 0},
	{-1, 0, 2, 0, 1, 21, 0, 0},
	{0, 2, 0, 0, 0, 17, -0.1, 0},
	{-1, 0, 0, 2, 1, 16, 0, 0},
	{0, 2, 2, -2, 2, -16, 0.1, 0},
	{0, 1, 0, 0, 1, -15, 0, 0},
	{1, 0, 0, -2, 1, -13, 0, 0},
	{0, -1, 0, 0, 1, -12, 0, 0},
	{2, 0, -2, 0, 0, 11, 0, 0},
	{-1, 0, 2, 2, 1, -10, 0, 0},
	{1, 0, 2, 2, 2, -8, 0, 0},
	{0, 1, 2, 0, 2, 7, 0, 0},
	{1, 1, 0, -2, 0, -7, 0, 0},
	{0, -1, 2, 0, 2, -7, 0, 0},
	{0, 0, 2, 2, 1, -7, 0, 0},
}
