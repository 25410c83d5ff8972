// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package search_test

import (
	"math"
	"testing"

	"github.com/lunartime/lunargo/civiltime"
	"github.com/lunartime/lunargo/julian"
	"github.com/lunartime/lunargo/search"
)

func TestSolarTermWinterSolstice(t *testing.T) {
	// 2014 December solstice (sun longitude 270°) fell near Dec 21-22.
	jd, err := search.SolarTerm(2014, 270)
	if err != nil {
		t.Fatalf("SolarTerm: %v", err)
	}
	want := julian.GregorianToJD(2014, 12, 21.5)
	if math.Abs(jd-want) > 2 {
		t.Errorf("SolarTerm(2014, 270) = %v, want within 2 days of %v", jd, want)
	}
}

func TestSolarTermMarchEquinox(t *testing.T) {
	jd, err := search.SolarTerm(2014, 0)
	if err != nil {
		t.Fatalf("SolarTerm: %v", err)
	}
	want := julian.GregorianToJD(2014, 3, 20.75)
	if math.Abs(jd-want) > 2 {
		t.Errorf("SolarTerm(2014, 0) = %v, want within 2 days of %v", jd, want)
	}
}

// TestSolarTermVernalEquinox2014BeijingTime pins spec §8 scenario 1:
// solar_term(2014, 0) converted to Beijing civil time is 2014-03-21 01:57,
// to within 2 minutes.
func TestSolarTermVernalEquinox2014BeijingTime(t *testing.T) {
	jdTT, err := search.SolarTerm(2014, 0)
	if err != nil {
		t.Fatalf("SolarTerm: %v", err)
	}
	civil := civiltime.ToCivil(jdTT, civiltime.BeijingTZHours)
	want := julian.GregorianToJD(2014, 3, 21) + (1*60+57)/1440.0
	gotMinutes := (civil - want) * 1440
	if math.Abs(gotMinutes) > 2 {
		t.Errorf("SolarTerm(2014, 0) Beijing civil time off by %.2f min, want within 2 min of 2014-03-21 01:57 (got %s)",
			gotMinutes, civiltime.Format(civil, civiltime.LayoutMinute))
	}
}

func TestNewMoonNearConverges(t *testing.T) {
	seed := julian.GregorianToJD(2014, 1, 1)
	jd, err := search.NewMoonNear(seed)
	if err != nil {
		t.Fatalf("NewMoonNear: %v", err)
	}
	if math.Abs(jd-seed) > search.SynodicMonth {
		t.Errorf("NewMoonNear(%v) = %v, too far from seed", seed, jd)
	}
}

func TestEnumerateNewMoonsSpacing(t *testing.T) {
	start := julian.GregorianToJD(2014, 1, 1)
	moons, err := search.EnumerateNewMoons(start, 5)
	if err != nil {
		t.Fatalf("EnumerateNewMoons: %v", err)
	}
	if len(moons) != 5 {
		t.Fatalf("got %d new moons, want 5", len(moons))
	}
	for i := 1; i < len(moons); i++ {
		gap := moons[i] - moons[i-1]
		if gap < search.SynodicMonth-1.5 || gap > search.SynodicMonth+1.5 {
			t.Errorf("gap between new moons %v, %v = %v, want ~%v", moons[i-1], moons[i], gap, search.SynodicMonth)
		}
	}
}
