// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// DeltaT: ΔT = TT − UT, the offset between Terrestrial Time and Universal
// Time.
//
// Poly computes ΔT from the NASA/Espenak-Meeus long-range polynomial
// family, one function per segment (polyBefore500, poly500to1600, ...composed
// by Poly, the dispatcher), the same "one function per historical segment"
// shape the teacher uses in its own deltat package (Poly1800to1899,
// Poly1900to1997, PolyAfter2000, ...).
package deltat

import (
	"github.com/lunartime/lunargo/internal/poly"
	"github.com/soniakeys/unit"
)

// Poly returns ΔT in seconds for a decimal calendar year, valid over the
// full −1999..+3000 range (§3, §7 OutOfRange: precision degrades but the
// polynomial still evaluates outside that range).
//
// Year should be y + (m-0.5)/12 for month m, per §4.1.
func Poly(year float64) unit.Time {
	switch {
	case year < -500:
		return polyBefore500(year)
	case year < 500:
		return poly500Range(year)
	case year < 1600:
		return poly500to1600(year)
	case year < 1700:
		return poly1600to1700(year)
	case year < 1800:
		return poly1700to1800(year)
	case year < 1860:
		return poly1800to1860(year)
	case year < 1900:
		return poly1860to1900(year)
	case year < 1920:
		return poly1900to1920(year)
	case year < 1941:
		return poly1920to1941(year)
	case year < 1961:
		return poly1941to1961(year)
	case year < 1986:
		return poly1961to1986(year)
	case year < 2005:
		return poly1986to2005(year)
	case year < 2050:
		return poly2005to2050(year)
	case year < 2150:
		return poly2050to2150(year)
	default:
		return polyAfter2150(year)
	}
}

// AtYearMonth returns ΔT for civil year y and month m, per §4.1's
// year + (m-0.5)/12 convention.
func AtYearMonth(y, m int) unit.Time {
	return Poly(float64(y) + (float64(m)-0.5)/12)
}

func polyBefore500(year float64) unit.Time {
	u := (year - 1820) / 100
	return unit.Time(-20 + 32*u*u)
}

func poly500Range(year float64) unit.Time {
	u := year / 100
	return unit.Time(poly.Horner(u,
		10583.6, -1014.41, 33.78311, -5.952053, -0.1798452,
		0.022174192, 0.0090316521))
}

func poly500to1600(year float64) unit.Time {
	u := (year - 1000) / 100
	return unit.Time(poly.Horner(u,
		1574.2, -556.01, 71.23472, 0.319781, -0.8503463,
		-0.005050998, 0.0083572073))
}

func poly1600to1700(year float64) unit.Time {
	t := year - 1600
	return unit.Time(poly.Horner(t, 120, -0.9808, -0.01532, 1.0/7129))
}

func poly1700to1800(year float64) unit.Time {
	t := year - 1700
	return unit.Time(poly.Horner(t,
		8.83, 0.1603, -0.0059285, 0.00013336, -1.0/1174000))
}

func poly1800to1860(year float64) unit.Time {
	t := year - 1800
	return unit.Time(poly.Horner(t,
		13.72, -0.332447, 0.0068612, 0.0041116, -0.00037436,
		0.0000121272, -0.0000001699, 0.000000000875))
}

func poly1860to1900(year float64) unit.Time {
	t := year - 1860
	return unit.Time(poly.Horner(t,
		7.62, 0.5737, -0.251754, 0.01680668, -0.0004473624, 1.0/233174))
}

func poly1900to1920(year float64) unit.Time {
	t := year - 1900
	return unit.Time(poly.Horner(t, -2.79, 1.494119, -0.0598939, 0.0061966, -0.000197))
}

func poly1920to1941(year float64) unit.Time {
	t := year - 1920
	return unit.Time(poly.Horner(t, 21.20, 0.84493, -0.0761, 0.0020936))
}

func poly1941to1961(year float64) unit.Time {
	t := year - 1950
	return unit.Time(poly.Horner(t, 29.07, 0.407, -1.0/233, 1.0/2547))
}

func poly1961to1986(year float64) unit.Time {
	t := year - 1975
	return unit.Time(poly.Horner(t, 45.45, 1.067, -1.0/260, -1.0/718))
}

func poly1986to2005(year float64) unit.Time {
	t := year - 2000
	return unit.Time(poly.Horner(t,
		63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599))
}

func poly2005to2050(year float64) unit.Time {
	t := year - 2000
	return unit.Time(poly.Horner(t, 62.92, 0.32217, 0.005589))
}

func poly2050to2150(year float64) unit.Time {
	u := (year - 1820) / 100
	return unit.Time(-20 + 32*u*u - 0.5628*(2150-year))
}

func polyAfter2150(year float64) unit.Time {
	u := (year - 1820) / 100
	return unit.Time(-20 + 32*u*u)
}
