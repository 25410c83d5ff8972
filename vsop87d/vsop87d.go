// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package vsop87d computes the Sun's apparent geocentric ecliptic
// longitude: a truncated VSOP87D series for Earth's heliocentric
// longitude, an FK5 frame-correction constant, nutation, and light-time
// aberration — the same composition the teacher's solar package builds
// from planetposition.VSOP87 and nutation, adapted to evaluate the VSOP87D
// series directly rather than through the general N-planet table.
package vsop87d

import (
	"math"

	"github.com/lunartime/lunargo/angle"
	"github.com/lunartime/lunargo/internal/poly"
	"github.com/lunartime/lunargo/nutation"
	"github.com/soniakeys/unit"
)

// term is one line of a VSOP87D longitude series: amplitude A (1e-8 rad),
// phase B (rad), frequency C (rad per Julian millennium).
type term struct {
	a, b, c float64
}

// fk5Correction is the constant first-order approximation to the FK5
// frame shift (§4.3 step 4, §9 Open Question: exact value documented
// rather than the full position-dependent term).
const fk5Correction = -4.379321981462438e-7

// aberrationConstant is the leading coefficient of Δ_ab (§4.3 Aberration).
const aberrationConstant = -0.005775518

// tau returns τ, Julian millennia from J2000, for jdTT.
func tau(jdTT float64) float64 {
	return (jdTT - 2451545) / 365250
}

// julianCentury returns T, Julian centuries from J2000, for jdTT. The
// Sun mean-anomaly/eccentricity/radius formulas below are lifted directly
// from the teacher's solar package, which works in centuries rather than
// millennia.
func julianCentury(jdTT float64) float64 {
	return (jdTT - 2451545) / 36525
}

func sumSeries(series []term, t float64) float64 {
	s := 0.0
	for i := len(series) - 1; i >= 0; i-- {
		s += series[i].a * math.Cos(series[i].b+series[i].c*t)
	}
	return s
}

// EarthHeliocentricLongitude evaluates τ and L0..L5 (§4.3 steps 1-3) and
// returns Earth's heliocentric ecliptic longitude in radians, unreduced.
func EarthHeliocentricLongitude(jdTT float64) float64 {
	t := tau(jdTT)
	cf := [6]float64{
		sumSeries(l0, t), sumSeries(l1, t), sumSeries(l2, t),
		sumSeries(l3, t), sumSeries(l4, t), sumSeries(l5, t),
	}
	return poly.Horner(t, cf[0]*1e-8, cf[1]*1e-8, cf[2]*1e-8, cf[3]*1e-8, cf[4]*1e-8, cf[5]*1e-8)
}

// sunMeanAnomaly, eccentricity and radius follow Meeus ch.25 (25.3-25.5),
// in T Julian centuries from J2000 — ported from the teacher's solar
// package (solar.MeanAnomaly, solar.Eccentricity, solar.Radius).
func sunMeanAnomaly(T float64) unit.Angle {
	return unit.AngleFromDeg(poly.Horner(T, 357.52911, 35999.05029, -0.0001537))
}

func eccentricity(T float64) float64 {
	return poly.Horner(T, 0.016708634, -0.000042037, -0.0000001267)
}

func equationOfCenter(T float64, M unit.Angle) unit.Angle {
	return unit.AngleFromDeg(poly.Horner(T, 1.914602, -0.004817, -0.000014)*M.Sin() +
		(0.019993-0.000101*T)*M.Mul(2).Sin() +
		0.000289*M.Mul(3).Sin())
}

func radius(T float64) float64 {
	M := sunMeanAnomaly(T)
	C := equationOfCenter(T, M)
	v := M + C
	e := eccentricity(T)
	return 1.000001018 * (1 - e*e) / (1 + e*v.Cos())
}

// Aberration returns Δ_ab, the light-time aberration correction to the
// Sun's apparent longitude, in radians (§4.3 Aberration).
func Aberration(jdTT float64) unit.Angle {
	T := julianCentury(jdTT)
	t := tau(jdTT)
	varLon := 3548.330
	for _, row := range aberrationTable {
		varLon += math.Pow(t, float64(row.power)) * row.a * math.Sin(row.b+row.c*t)
	}
	R := radius(T)
	return unit.Angle(aberrationConstant * R * varLon * angle.ASec2Rad)
}

// ApparentLongitude returns the Sun's apparent geocentric ecliptic
// longitude for jdTT (§4.3). If suppressNutation is true, Δψ is omitted —
// used by the new-moon residual to keep Sun and Moon on the same nutation
// footing (§9 Open Question, see package search for the asymmetric usage).
func ApparentLongitude(jdTT float64, suppressNutation bool) unit.Angle {
	lHelio := EarthHeliocentricLongitude(jdTT) + fk5Correction
	λGeo := lHelio + math.Pi
	if !suppressNutation {
		λGeo += nutation.Nutation(jdTT).Rad()
	}
	λGeo += Aberration(jdTT).Rad()
	return unit.Angle(angle.Norm2Pi(λGeo))
}
