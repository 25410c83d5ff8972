// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package lunar assembles Chinese lunisolar calendar years from the
// underlying ephemeris (§4.8-§4.9): solar terms and new moons are located,
// normalised to Beijing civil midnight, numbered into months with leap-month
// detection, and expanded into per-day records carrying month/day/jieqi/
// holiday labels.
package lunar

import "fmt"

// CalendarDay is one civil day's worth of Chinese-calendar annotation
// (§3 CalendarDay).
type CalendarDay struct {
	Year, Month, Day int // civil Gregorian date
	ChineseMonth     int // 1..12, or 101..112 for a leap month
	DayOfMonth       int // 1..30
	MonthLabel       string
	DayLabel         string
	JieqiLabel       string // "" if this day is not a solar term
	HolidayLabel     string // "" if this day carries no holiday tag
}

func (d CalendarDay) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %s%s", d.Year, d.Month, d.Day, d.MonthLabel, d.DayLabel)
}

// solarTermAngles is the 27-angle sweep §4.8 step 1 searches: -120 through
// 270 in 15° steps, which takes in the previous winter solstice (-90) and
// this winter solstice (270).
var solarTermAngles = func() []float64 {
	a := make([]float64, 0, 27)
	for deg := -120.0; deg <= 270; deg += 15 {
		a = append(a, deg)
	}
	return a
}()

// reduceMonthCode applies §4.8 step 9: subtract 12 from any month number
// greater than 12 (both in the plain 1..24 range and the leap 101..124
// range), until it settles into 1..12 or 101..112.
func reduceMonthCode(code int) int {
	for code > 112 {
		code -= 12
	}
	for code > 12 && code < 100 {
		code -= 12
	}
	return code
}
