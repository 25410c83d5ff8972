// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package nutation_test

import (
	"math"
	"testing"

	"github.com/lunartime/lunargo/julian"
	"github.com/lunartime/lunargo/nutation"
)

func TestNutationMagnitude(t *testing.T) {
	// Δψ is a small correction, typically within about ±20″.
	jd := julian.GregorianToJD(2014, 3, 21)
	dpsi := nutation.Nutation(jd).Rad()
	arcsec := dpsi * 180 / math.Pi * 3600
	if math.Abs(arcsec) > 25 {
		t.Errorf("|Δψ| = %v arcsec, want < 25", arcsec)
	}
}

func TestNutationVariesWithTime(t *testing.T) {
	jd0 := julian.GregorianToJD(2014, 1, 1)
	jd1 := julian.GregorianToJD(2015, 1, 1)
	d0 := nutation.Nutation(jd0).Rad()
	d1 := nutation.Nutation(jd1).Rad()
	if d0 == d1 {
		t.Errorf("expected Δψ to vary over a year")
	}
}
