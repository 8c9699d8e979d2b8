// Package color provides transfer curves, primaries and conversion matrices
// for the color representations an effect chain moves between.
//
// All math is done in float64 and narrowed to float32 only where values are
// handed to the GPU (lookup tables, matrices, uniforms).
package color

// Curve describes a piecewise transfer function of the form used by sRGB and
// the ITU-R BT.709/BT.2020 family:
//
//	E = LinearSlope * L                    for L <  Beta
//	E = Alpha * L^Power - (Alpha - 1)      for L >= Beta
//
// where L is linear light and E the encoded signal, both in [0,1].
type Curve struct {
	// Alpha is the scale of the power segment.
	Alpha float64

	// Beta is the breakpoint in the linear domain.
	Beta float64

	// LinearSlope is the slope of the linear toe segment.
	LinearSlope float64

	// Power is the encoding exponent.
	Power float64
}

// Published transfer curves.
//
// References:
//   - sRGB: IEC 61966-2-1
//   - Rec. 709: ITU-R BT.709-6, item 1.2 (also Rec. 601 and 10-bit Rec. 2020)
//   - Rec. 2020 12-bit: ITU-R BT.2020-2, table 4
var (
	SRGB = Curve{Alpha: 1.055, Beta: 0.0031308, LinearSlope: 12.92, Power: 1.0 / 2.4}

	Rec709 = Curve{Alpha: 1.099, Beta: 0.018, LinearSlope: 4.5, Power: 0.45}

	Rec2020_12Bit = Curve{Alpha: 1.0993, Beta: 0.0181, LinearSlope: 4.5, Power: 0.45}
)

// EncodedBreakpoint returns the breakpoint in the encoded domain, that is
// the signal value where the linear toe meets the power segment.
func (c Curve) EncodedBreakpoint() float64 {
	return c.Beta * c.LinearSlope
}
