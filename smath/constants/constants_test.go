package constants

import (
	"math"
	"testing"
)

func TestConstantsMatchStdlib(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{name: "Pi", got: Pi, want: math.Pi},
		{name: "TwoPi", got: TwoPi, want: 2 * math.Pi},
		{name: "Pi2", got: Pi2, want: math.Pi / 2},
		{name: "Pi4", got: Pi4, want: math.Pi / 4},
		{name: "Rad", got: Rad, want: math.Pi / 180},
		{name: "Deg", got: Deg, want: 180 / math.Pi},
		{name: "E", got: E, want: math.E},
		{name: "Log2E", got: Log2E, want: math.Log2E},
		{name: "Log10E", got: Log10E, want: math.Log10E},
		{name: "Ln2", got: Ln2, want: math.Ln2},
		{name: "Ln10", got: Ln10, want: math.Ln10},
		{name: "Sqrt2", got: Sqrt2, want: math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-15*math.Max(1, math.Abs(tt.want)) {
				t.Fatalf("%s = %.20g, want %.20g", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestSinglePrecisionConversion(t *testing.T) {
	if float32(Pi) != float32(math.Pi) {
		t.Fatal("float32(Pi) differs from float32(math.Pi)")
	}
	if float32(E) != float32(math.E) {
		t.Fatal("float32(E) differs from float32(math.E)")
	}
}
