package angle_test

import (
	"math"
	"testing"

	"github.com/lunartime/lunargo/angle"
)

func TestNorm2Pi(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{
		{0, 0},
		{angle.TwoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	} {
		got := angle.Norm2Pi(tc.in)
		if got < 0 || got >= angle.TwoPi {
			t.Fatalf("Norm2Pi(%v) = %v, out of [0,2π)", tc.in, got)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Norm2Pi(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNPiToPi(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{
		{0, 0},
		{math.Pi, math.Pi},
		{math.Pi + .1, -math.Pi + .1},
		{-math.Pi - .1, math.Pi - .1},
	} {
		got := angle.NPiToPi(tc.in)
		if got <= -math.Pi || got > math.Pi {
			t.Fatalf("NPiToPi(%v) = %v, out of (-π,π]", tc.in, got)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("NPiToPi(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 100, -100, math.Pi, -math.Pi} {
		a := angle.Norm2Pi(angle.NPiToPi(x))
		b := angle.Norm2Pi(x)
		if math.Abs(a-b) > 1e-9 {
			t.Errorf("Norm2Pi(NPiToPi(%v)) = %v, want %v", x, a, b)
		}
	}
}
