// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package civiltime_test

import (
	"math"
	"testing"

	"github.com/lunartime/lunargo/civiltime"
	"github.com/lunartime/lunargo/julian"
)

func TestFormatDate(t *testing.T) {
	jd := julian.GregorianToJD(2014, 3, 21)
	got := civiltime.Format(jd, civiltime.LayoutDate)
	if want := "2014-03-21"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormatSecond(t *testing.T) {
	jd := julian.GregorianToJD(2014, 3, 21.5) // noon
	got := civiltime.Format(jd, civiltime.LayoutSecond)
	if want := "2014-03-21 12:00:00"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestBreakRoundTrip(t *testing.T) {
	jd := julian.GregorianToJD(2020, 6, 15.75) // 18:00
	c := civiltime.Break(jd)
	if c.Year != 2020 || c.Month != 6 || c.Day != 15 || c.Hour != 18 || c.Minute != 0 || c.Second != 0 {
		t.Errorf("Break = %+v, want 2020-06-15 18:00:00", c)
	}
}

func TestDayCarryOnSecondRounding(t *testing.T) {
	// a fractional day just shy of midnight should round up into the
	// next calendar day rather than reporting second 60.
	base := julian.GregorianToJD(2014, 3, 21)
	almostMidnight := base + 86399.6/86400
	c := civiltime.Break(almostMidnight)
	if c.Year != 2014 || c.Month != 3 || c.Day != 22 || c.Hour != 0 || c.Minute != 0 || c.Second != 0 {
		t.Errorf("Break(almost midnight) = %+v, want 2014-03-22 00:00:00", c)
	}
}

func TestToCivilBeijingOffset(t *testing.T) {
	// Beijing civil time is 8 hours ahead of the UT side of the TT/UT
	// split; the shift should be (approximately, modulo ΔT) 8/24 of a day.
	jdTT := julian.GregorianToJD(2014, 3, 21.5)
	civil := civiltime.ToCivil(jdTT, civiltime.BeijingTZHours)
	diff := civil - jdTT
	if math.Abs(diff-8.0/24) > 0.01 {
		t.Errorf("ToCivil shift = %v, want ~%v", diff, 8.0/24)
	}
}

func TestBeijingMidnightJDEndsInHalf(t *testing.T) {
	jdTT := julian.GregorianToJD(2014, 3, 21.5)
	m := civiltime.BeijingMidnightJD(jdTT)
	frac := m - math.Floor(m)
	if math.Abs(frac-0.5) > 1e-9 {
		t.Errorf("BeijingMidnightJD = %v, want a .5 Julian Date", m)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		s      string
		layout string
	}{
		{"2014-03-21", civiltime.LayoutDate},
		{"2014-03-21 13:05", civiltime.LayoutMinute},
		{"2014-03-21 13:05:09", civiltime.LayoutSecond},
	} {
		jd, err := civiltime.Parse(tc.s, tc.layout)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.s, err)
		}
		got := civiltime.Format(jd, tc.layout)
		if got != tc.s {
			t.Errorf("round trip %q -> %v -> %q", tc.s, jd, got)
		}
	}
}
