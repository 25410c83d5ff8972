// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package astroevent defines the transient event type produced by the
// solar-term/new-moon searches (§3 AstroEvent) and consumed by the
// lunar-year assembler.
package astroevent

import "sort"

// Kind distinguishes the two event types the search package produces.
type Kind int

const (
	// NewMoon marks an instant when the Moon and Sun share ecliptic
	// longitude (§4.6).
	NewMoon Kind = iota
	// SolarTerm marks an instant when the Sun's apparent longitude
	// crosses one of the 24 jieqi angles (§4.6).
	SolarTerm
)

func (k Kind) String() string {
	switch k {
	case NewMoon:
		return "NewMoon"
	case SolarTerm:
		return "SolarTerm"
	default:
		return "Unknown"
	}
}

// Event is a single astronomical instant: a Julian Date in Terrestrial
// Time tagged with what kind of event it is. AngleDeg is meaningful only
// for SolarTerm events, where it records which of the 24 jieqi angles
// (−120, −105, …, 270) was being searched for.
type Event struct {
	JD       float64
	Kind     Kind
	AngleDeg float64
}

// SortByJD sorts events in place by ascending Julian Date, the order the
// lunar-year assembler expects them in.
func SortByJD(events []Event) {
	sort.Slice(events, func(i, j int) bool { return events[i].JD < events[j].JD })
}
