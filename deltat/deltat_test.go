// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package deltat_test

import (
	"math"
	"testing"

	"github.com/lunartime/lunargo/deltat"
)

func TestSmoke(t *testing.T) {
	// §8 scenario 6: delta_T smoke test.
	for _, tc := range []struct {
		y, m int
		want float64
		tol  float64
	}{
		{2000, 1, 64.0, 1.0},
		{1900, 1, -2.1, 3.0},
		{500, 1, 5706, 50},
	} {
		got := float64(deltat.AtYearMonth(tc.y, tc.m))
		if math.Abs(got-tc.want) > tc.tol {
			t.Errorf("AtYearMonth(%d,%d) = %v, want ~%v (±%v)", tc.y, tc.m, got, tc.want, tc.tol)
		}
	}
}

func TestContinuityAtSegmentBoundaries(t *testing.T) {
	// adjacent segments should agree closely at their shared boundary,
	// since each is a fit to the same observed/extrapolated ΔT curve.
	boundaries := []float64{-500, 500, 1600, 1700, 1800, 1860, 1900, 1920, 1941, 1961, 1986, 2005, 2050, 2150}
	for _, b := range boundaries {
		lo := float64(deltat.Poly(b - 1e-6))
		hi := float64(deltat.Poly(b + 1e-6))
		if math.Abs(lo-hi) > 5 {
			t.Errorf("ΔT discontinuity at year %v: %v vs %v", b, lo, hi)
		}
	}
}

func TestMonotonicNearPresent(t *testing.T) {
	// ΔT has grown steadily since the mid 20th century due to tidal braking.
	a := float64(deltat.AtYearMonth(1990, 1))
	b := float64(deltat.AtYearMonth(2020, 1))
	if b <= a {
		t.Errorf("expected ΔT(2020) > ΔT(1990), got %v <= %v", b, a)
	}
}
