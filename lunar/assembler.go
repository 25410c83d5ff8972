// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package lunar

import (
	"fmt"
	"sort"

	"github.com/lunartime/lunargo/astroevent"
	"github.com/lunartime/lunargo/civiltime"
	"github.com/lunartime/lunargo/julian"
	"github.com/lunartime/lunargo/search"
)

// lunarMonth is one numbered month spanning [startJD, nextStartJD) of
// Beijing civil-midnight Julian Dates.
type lunarMonth struct {
	code    int
	startJD float64
}

// assembleLunarYear runs §4.8 steps 1-10 for the lunar year anchored on
// civilYear's winter solstice: it spans roughly the previous December
// through this December (month 11 of one year to month 11 of the next).
// Package lunar's Engine (see engine.go) calls this twice, for Y and Y+1,
// to build the public per-civil-year calendar (§4.9).
func assembleLunarYear(civilYear int) ([]CalendarDay, error) {
	// step 1: 27 solar terms, angle -120..270 step 15.
	var terms []astroevent.Event
	for _, a := range solarTermAngles {
		jd, err := search.SolarTerm(civilYear, a)
		if err != nil {
			return nil, fmt.Errorf("lunar: solar term %v of %d: %w", a, civilYear, err)
		}
		terms = append(terms, astroevent.Event{
			JD: civiltime.BeijingMidnightJD(jd), Kind: astroevent.SolarTerm, AngleDeg: a,
		})
	}

	var prevWinterSolstice, thisWinterSolstice astroevent.Event
	for _, e := range terms {
		switch e.AngleDeg {
		case -90:
			prevWinterSolstice = e
		case 270:
			thisWinterSolstice = e
		}
	}

	// step 2: 15 new moons starting 30 days before the seed term (in TT,
	// before midnight normalisation — the normalisation happens uniformly
	// in step 3 below). The original's find_astro seeds from
	// solarterms[1][0], index 1 of its 0-indexed angle-(-120) array, i.e.
	// the -105° term, not the -90° winter solstice its own comment claims
	// ("search 15 newmoons start 30 days before last Winter Solstice");
	// that off-by-one is carried here deliberately (SPEC_FULL.md,
	// "SUPPLEMENTED FEATURES" §2).
	seedJDTT, err := search.SolarTerm(civilYear, -105)
	if err != nil {
		return nil, fmt.Errorf("lunar: -105 deg seed term of %d: %w", civilYear, err)
	}
	newMoonsTT, err := search.EnumerateNewMoons(seedJDTT-30, 15)
	if err != nil {
		return nil, fmt.Errorf("lunar: new moons for %d: %w", civilYear, err)
	}

	// step 3: normalise every event to a Beijing civil midnight JD.
	var newMoons []astroevent.Event
	for _, jd := range newMoonsTT {
		newMoons = append(newMoons, astroevent.Event{JD: civiltime.BeijingMidnightJD(jd), Kind: astroevent.NewMoon})
	}

	// step 4: merge and sort.
	all := append(append([]astroevent.Event{}, terms...), newMoons...)
	astroevent.SortByJD(all)

	// step 5: lc_start = latest new moon <= previous winter solstice date;
	// lc_end = this winter solstice date. newMoons is already ascending
	// (EnumerateNewMoons advances forward), so the last qualifying entry
	// is the latest one.
	lcStart := newMoons[0].JD
	for _, nm := range newMoons {
		if nm.JD <= prevWinterSolstice.JD {
			lcStart = nm.JD
		}
	}
	lcEnd := thisWinterSolstice.JD

	// months spanning [lcStart, lcEnd): every new moon on or after lcStart
	// and before lcEnd starts a new month, numbered 11, 12, 13, ...
	var monthStarts []float64
	for _, nm := range newMoons {
		if nm.JD >= lcStart && nm.JD < lcEnd {
			monthStarts = append(monthStarts, nm.JD)
		}
	}
	sort.Float64s(monthStarts)

	months := make([]lunarMonth, len(monthStarts))
	for i, s := range monthStarts {
		months[i] = lunarMonth{code: 11 + i, startJD: s}
	}

	// step 7: trim events to [lc_start, lc_end].
	var trimmed []astroevent.Event
	for _, e := range all {
		if e.JD >= lcStart && e.JD <= lcEnd {
			trimmed = append(trimmed, e)
		}
	}

	// step 8: count new moons strictly between lc_start and lc_end; if
	// more than 12, this is a leap year.
	nmCount := 0
	for _, nm := range newMoons {
		if nm.JD > lcStart && nm.JD < lcEnd {
			nmCount++
		}
	}
	if nmCount > 12 {
		if err := markLeapMonth(months, trimmed); err != nil {
			return nil, fmt.Errorf("lunar: %d: %w", civilYear, err)
		}
	} else {
		for i := range months {
			months[i].code = reduceMonthCode(months[i].code)
		}
	}

	return expandDays(months, trimmed, lcStart, lcEnd)
}

// markLeapMonth implements §4.8 step 8-9 in place: scans months in raw
// order for the first with no zhongqi, tags it as the leap of the
// preceding month, and renumbers everything else.
func markLeapMonth(months []lunarMonth, events []astroevent.Event) error {
	leapIndex := -1
	for i, m := range months {
		var nextStart float64
		if i+1 < len(months) {
			nextStart = months[i+1].startJD
		} else {
			nextStart = m.startJD + 40 // past any possible month length
		}
		hasZhongqi := false
		for _, e := range events {
			if e.Kind == astroevent.SolarTerm && e.JD >= m.startJD && e.JD < nextStart && IsZhongqi(e.AngleDeg) {
				hasZhongqi = true
				break
			}
		}
		if !hasZhongqi {
			leapIndex = i
			break
		}
	}
	if leapIndex < 0 {
		return fmt.Errorf("LeapNotFound: no zhongqi-free month among %d candidate months", len(months))
	}

	leapRaw := months[leapIndex].code
	months[leapIndex].code = reduceMonthCode(leapRaw + 99)
	for i := leapIndex + 1; i < len(months); i++ {
		months[i].code = reduceMonthCode(months[i].code - 1)
	}
	for i := 0; i < leapIndex; i++ {
		months[i].code = reduceMonthCode(months[i].code)
	}
	return nil
}

// expandDays implements §4.8 step 10: walk every civil day in
// [lcStart, lcEnd), attaching Chinese-month/day-of-month, jieqi and
// holiday labels.
func expandDays(months []lunarMonth, events []astroevent.Event, lcStart, lcEnd float64) ([]CalendarDay, error) {
	jieqiByDay := map[float64]float64{}
	for _, e := range events {
		if e.Kind == astroevent.SolarTerm {
			jieqiByDay[e.JD] = e.AngleDeg
		}
	}

	var qingmingJD float64
	hasQingming := false
	for jd, a := range jieqiByDay {
		if a == 15 {
			qingmingJD, hasQingming = jd, true
		}
	}

	days := make([]CalendarDay, 0, int(lcEnd-lcStart)+1)
	monthIdx := 0
	for jd := lcStart; jd < lcEnd; jd++ {
		for monthIdx+1 < len(months) && months[monthIdx+1].startJD <= jd {
			monthIdx++
		}
		y, m, dFrac := julian.JDToGregorian(jd)
		d := int(dFrac)

		month := months[monthIdx]
		dayOfMonth := int(jd-month.startJD) + 1
		holiday := ""
		if month.code <= 12 {
			holiday = HolidayLabel(month.code, dayOfMonth)
		}

		cd := CalendarDay{
			Year: y, Month: m, Day: d,
			ChineseMonth: month.code,
			DayOfMonth:   dayOfMonth,
			MonthLabel:   MonthLabel(month.code),
			DayLabel:     DayLabel(dayOfMonth),
			HolidayLabel: holiday,
		}
		if a, ok := jieqiByDay[jd]; ok {
			cd.JieqiLabel = JieqiLabel(a)
		}
		if month.code == 1 && dayOfMonth == 1 {
			cd.HolidayLabel = "春节"
		}
		days = append(days, cd)
	}

	// derived holidays: 除夕 (day before 春节) and 寒食 (day before 清明).
	for i, d := range days {
		if i+1 < len(days) && days[i+1].HolidayLabel == "春节" {
			days[i].HolidayLabel = "除夕"
		}
		if hasQingming {
			prevOfQingming := qingmingJD - 1
			dJD := julian.GregorianToJD(d.Year, d.Month, float64(d.Day))
			if dJD == prevOfQingming {
				days[i].HolidayLabel = "寒食"
			}
		}
	}

	return days, nil
}
