// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package moonposition_test

import (
	"math"
	"testing"

	"github.com/lunartime/lunargo/julian"
	"github.com/lunartime/lunargo/moonposition"
)

func TestApparentLongitudeRange(t *testing.T) {
	jd := julian.GregorianToJD(2014, 3, 21)
	λ := moonposition.ApparentLongitude(jd, false).Rad()
	if λ < 0 || λ >= 2*math.Pi {
		t.Errorf("ApparentLongitude = %v, want in [0, 2π)", λ)
	}
}

func TestApparentLongitudeAdvancesFast(t *testing.T) {
	// the Moon moves roughly 13 degrees per day, much faster than the Sun.
	jd0 := julian.GregorianToJD(2014, 6, 1)
	jd1 := julian.GregorianToJD(2014, 6, 2)
	λ0 := moonposition.ApparentLongitude(jd0, false).Rad()
	λ1 := moonposition.ApparentLongitude(jd1, false).Rad()
	d := λ1 - λ0
	if d < 0 {
		d += 2 * math.Pi
	}
	deg := d * 180 / math.Pi
	if deg < 9 || deg > 16 {
		t.Errorf("one-day advance = %v deg, want roughly 13 deg", deg)
	}
}

func TestNutationSuppressionChangesResult(t *testing.T) {
	jd := julian.GregorianToJD(2014, 3, 21)
	withNutation := moonposition.ApparentLongitude(jd, false).Rad()
	suppressed := moonposition.ApparentLongitude(jd, true).Rad()
	if withNutation == suppressed {
		t.Errorf("expected nutation suppression to change the result")
	}
}

func TestSiderealPeriodRoughly(t *testing.T) {
	// the moon completes a full 360° relative to a fixed start point in
	// roughly a sidereal month (~27.3 days).
	jd0 := julian.GregorianToJD(2014, 1, 1)
	start := moonposition.ApparentLongitude(jd0, false).Rad()
	for d := 25.0; d <= 30; d++ {
		λ := moonposition.ApparentLongitude(jd0+d, false).Rad()
		diff := math.Mod(λ-start+2*math.Pi, 2*math.Pi)
		if diff < 0.3 { // back near the start
			if d < 26 || d > 29 {
				t.Errorf("sidereal-month wraparound at day %v, want ~27.3", d)
			}
			return
		}
	}
}
