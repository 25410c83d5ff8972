// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package search locates solar terms and new moons by wrapping the Sun and
// Moon apparent-longitude functions in residual closures and handing them
// to package root's secant finder (§4.6), the same "seed near the answer,
// let the iterator converge" pattern the teacher's solstice package uses
// around its eq2 high-precision refinement.
package search

import (
	"fmt"
	"math"

	"github.com/lunartime/lunargo/angle"
	"github.com/lunartime/lunargo/julian"
	"github.com/lunartime/lunargo/moonposition"
	"github.com/lunartime/lunargo/root"
	"github.com/lunartime/lunargo/vsop87d"
)

// SynodicMonth is the mean length, in days, of a lunation (new moon to
// new moon) — the seeding/advance step for EnumerateNewMoons.
const SynodicMonth = 29.53

// moonSpeed is the Moon's mean angular speed relative to the Sun,
// radians/day, used only to seed the new-moon secant search.
const moonSpeed = 2 * math.Pi / SynodicMonth

// solarTermEps is the secant convergence tolerance for solar-term search,
// ≈0.001″ (§4.6).
const solarTermEps = 5e-9

// newMoonEps is the secant convergence tolerance for new-moon search,
// ≈0.02″ (§4.6).
const newMoonEps = 1e-7

// SolarTerm returns the Julian Date (TT) at which the Sun's apparent
// geocentric longitude equals angleDeg degrees, searching near the March
// equinox of the given civil year (§4.6). The solar-term residual uses
// full nutation, matching apparent geocentric longitude exactly — the
// asymmetry with NewMoonNear's suppressed-nutation residual is intentional
// (§9 Open Question).
func SolarTerm(year int, angleDeg float64) (float64, error) {
	target := angleDeg * angle.Deg2Rad
	x0 := julian.GregorianToJD(year, 3, 20.5) + angleDeg*365.2422/360
	x1 := x0 + 0.5
	residual := func(jd float64) float64 {
		λ := vsop87d.ApparentLongitude(jd, false).Rad()
		return angle.NPiToPi(λ - target)
	}
	jd, err := root.Secant(residual, x0, x1, solarTermEps)
	if err != nil {
		return jd, fmt.Errorf("search: SolarTerm(%d, %v): %w", year, angleDeg, err)
	}
	return jd, nil
}

// NewMoonNear returns the Julian Date (TT) of the new moon closest to jd,
// by secant search seeded from the Moon-Sun angular separation and its
// mean rate of change. Both apparent longitudes are computed with nutation
// suppressed, so that their difference is unaffected by it (§4.6, §9 Open
// Question: this is deliberately asymmetric with SolarTerm's residual).
func NewMoonNear(jd float64) (float64, error) {
	residual := func(x float64) float64 {
		λMoon := moonposition.ApparentLongitude(x, true).Rad()
		λSun := vsop87d.ApparentLongitude(x, true).Rad()
		return angle.NPiToPi(λMoon - λSun)
	}
	x0 := jd - residual(jd)/moonSpeed
	x1 := x0 + 0.5
	got, err := root.Secant(residual, x0, x1, newMoonEps)
	if err != nil {
		return got, fmt.Errorf("search: NewMoonNear(%v): %w", jd, err)
	}
	return got, nil
}

// EnumerateNewMoons returns up to count new moons at or after startJD,
// advancing the seed by one synodic month after each hit. If a search
// stalls (returns an instant not later than the previous one, which can
// happen from a poorly seeded secant iteration near a discontinuity), the
// seed is nudged forward by one day and retried (ported from the
// original implementation's findnewmoons retry rule).
func EnumerateNewMoons(startJD float64, count int) ([]float64, error) {
	out := make([]float64, 0, count)
	seed := startJD
	var prev float64
	for len(out) < count {
		jd, err := NewMoonNear(seed)
		if err != nil {
			return out, err
		}
		if len(out) > 0 && jd <= prev {
			seed += 1
			continue
		}
		if jd < startJD {
			// the nearest new moon precedes startJD; look one lunation later.
			seed = jd + SynodicMonth
			continue
		}
		out = append(out, jd)
		prev = jd
		seed = jd + SynodicMonth
	}
	return out, nil
}
