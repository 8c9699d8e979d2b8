package color

import (
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// TestEncodeEdgeCases tests edge cases of the encoding curves.
func TestEncodeEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
		input float64
		want  float64
	}{
		{"srgb black", SRGB, 0, 0},
		{"srgb white", SRGB, 1, 1},
		{"srgb toe", SRGB, 0.002, 0.002 * 12.92},
		{"srgb mid", SRGB, 0.5, 1.055*math.Pow(0.5, 1/2.4) - 0.055},
		{"srgb below range", SRGB, -0.5, 0},
		{"srgb above range", SRGB, 2, 1},
		{"rec709 toe", Rec709, 0.01, 0.045},
		{"rec709 mid", Rec709, 0.5, 1.099*math.Pow(0.5, 0.45) - 0.099},
		{"rec2020 12-bit mid", Rec2020_12Bit, 0.5, 1.0993*math.Pow(0.5, 0.45) - 0.0993},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.curve.Encode(tt.input)
			if !near(got, tt.want, 1e-9) {
				t.Errorf("Encode(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestRoundTrip tests Decode(Encode(x)) == x across the range.
func TestRoundTrip(t *testing.T) {
	for name, c := range map[string]Curve{"srgb": SRGB, "rec709": Rec709, "rec2020_12": Rec2020_12Bit} {
		t.Run(name, func(t *testing.T) {
			for i := 0; i <= 1000; i++ {
				x := float64(i) / 1000
				got := c.Decode(c.Encode(x))
				if !near(got, x, 1e-4) {
					t.Fatalf("Decode(Encode(%v)) = %v", x, got)
				}
			}
		})
	}
}

// TestCurveContinuity checks that the two segments meet at the breakpoint.
func TestCurveContinuity(t *testing.T) {
	for name, c := range map[string]Curve{"srgb": SRGB, "rec709": Rec709, "rec2020_12": Rec2020_12Bit} {
		t.Run(name, func(t *testing.T) {
			toe := c.LinearSlope * c.Beta
			power := c.Alpha*math.Pow(c.Beta, c.Power) - (c.Alpha - 1)
			if !near(toe, power, 1e-3) {
				t.Errorf("segments differ at breakpoint: toe=%v power=%v", toe, power)
			}
		})
	}
}

func TestFillEncodeTable(t *testing.T) {
	table := make([]float32, 256)
	FillEncodeTable(table, SRGB)

	if table[0] != 0 {
		t.Errorf("table[0] = %v, want 0", table[0])
	}
	if !near(float64(table[255]), 1, 1e-6) {
		t.Errorf("table[255] = %v, want 1", table[255])
	}
	for i := 1; i < len(table); i++ {
		if table[i] < table[i-1] {
			t.Fatalf("table not monotonic at %d: %v < %v", i, table[i], table[i-1])
		}
	}
	want := SRGB.Encode(128.0 / 255)
	if !near(float64(table[128]), want, 1e-6) {
		t.Errorf("table[128] = %v, want %v", table[128], want)
	}

	one := make([]float32, 1)
	FillEncodeTable(one, Rec709)
	if one[0] != 0 {
		t.Errorf("single-entry table = %v, want 0", one[0])
	}
}

func matNear(t *testing.T, got, want f32.Mat3, tol float64) {
	t.Helper()
	for i := range got {
		if !near(float64(got[i]), float64(want[i]), tol) {
			t.Errorf("element %d = %v, want %v\ngot  %v\nwant %v", i, got[i], want[i], got, want)
			return
		}
	}
}

func TestRGBToXYZ_SRGB(t *testing.T) {
	want := f32.Mat3{
		0.4124, 0.3576, 0.1805,
		0.2126, 0.7152, 0.0722,
		0.0193, 0.1192, 0.9505,
	}
	matNear(t, Rec709Primaries.RGBToXYZ(), want, 1e-3)
}

func TestRGBToXYZ_WhiteHasUnitLuminance(t *testing.T) {
	for name, p := range map[string]Primaries{
		"rec709":     Rec709Primaries,
		"rec601_525": Rec601_525Primaries,
		"rec601_625": Rec601_625Primaries,
		"rec2020":    Rec2020Primaries,
	} {
		t.Run(name, func(t *testing.T) {
			m := p.RGBToXYZ()
			y := float64(m[3]) + float64(m[4]) + float64(m[5])
			if !near(y, 1, 1e-5) {
				t.Errorf("Y of white = %v, want 1", y)
			}
		})
	}
}

func TestConversionMatrix(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		want := f32.Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
		matNear(t, ConversionMatrix(Rec2020Primaries, Rec2020Primaries), want, 1e-5)
	})

	// ITU-R BT.2087, linear Rec. 709 to Rec. 2020.
	t.Run("rec709 to rec2020", func(t *testing.T) {
		want := f32.Mat3{
			0.6274, 0.3293, 0.0433,
			0.0691, 0.9195, 0.0114,
			0.0164, 0.0880, 0.8956,
		}
		matNear(t, ConversionMatrix(Rec709Primaries, Rec2020Primaries), want, 1e-3)
	})

	t.Run("rows preserve white", func(t *testing.T) {
		m := ConversionMatrix(Rec601_525Primaries, Rec709Primaries)
		for row := 0; row < 3; row++ {
			sum := float64(m[row*3]) + float64(m[row*3+1]) + float64(m[row*3+2])
			if !near(sum, 1, 1e-5) {
				t.Errorf("row %d sums to %v, want 1", row, sum)
			}
		}
	})
}
