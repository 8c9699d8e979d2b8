package color

import (
	"golang.org/x/image/math/f32"
)

// Chromaticity is a CIE 1931 xy chromaticity coordinate.
type Chromaticity struct {
	X, Y float64
}

// Primaries is an RGB color space gamut: three primaries and a white point.
type Primaries struct {
	R, G, B Chromaticity
	White   Chromaticity
}

// D65 is the CIE standard illuminant used by every supported space.
var D65 = Chromaticity{X: 0.3127, Y: 0.3290}

// Supported gamuts.
var (
	// Rec709Primaries is shared by sRGB and ITU-R BT.709.
	Rec709Primaries = Primaries{
		R:     Chromaticity{0.640, 0.330},
		G:     Chromaticity{0.300, 0.600},
		B:     Chromaticity{0.150, 0.060},
		White: D65,
	}

	// Rec601_525Primaries is ITU-R BT.601 for 525-line systems (SMPTE C).
	Rec601_525Primaries = Primaries{
		R:     Chromaticity{0.630, 0.340},
		G:     Chromaticity{0.310, 0.595},
		B:     Chromaticity{0.155, 0.070},
		White: D65,
	}

	// Rec601_625Primaries is ITU-R BT.601 for 625-line systems (EBU).
	Rec601_625Primaries = Primaries{
		R:     Chromaticity{0.640, 0.330},
		G:     Chromaticity{0.290, 0.600},
		B:     Chromaticity{0.150, 0.060},
		White: D65,
	}

	// Rec2020Primaries is ITU-R BT.2020.
	Rec2020Primaries = Primaries{
		R:     Chromaticity{0.708, 0.292},
		G:     Chromaticity{0.170, 0.797},
		B:     Chromaticity{0.131, 0.046},
		White: D65,
	}
)

// mat3 is a row-major 3x3 matrix.
type mat3 [9]float64

func (m mat3) mul(n mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = m[i*3]*n[j] + m[i*3+1]*n[3+j] + m[i*3+2]*n[6+j]
		}
	}
	return r
}

func (m mat3) apply(v [3]float64) [3]float64 {
	return [3]float64{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// inverse returns the inverse of m. Gamut matrices built from valid
// primaries are never singular.
func (m mat3) inverse() mat3 {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	A := e*i - f*h
	B := -(d*i - f*g)
	C := d*h - e*g
	det := a*A + b*B + c*C

	return mat3{
		A / det, -(b*i - c*h) / det, (b*f - c*e) / det,
		B / det, (a*i - c*g) / det, -(a*f - c*d) / det,
		C / det, -(a*h - b*g) / det, (a*e - b*d) / det,
	}
}

// xyz returns the XYZ tristimulus of a chromaticity at Y = 1.
func (c Chromaticity) xyz() [3]float64 {
	return [3]float64{c.X / c.Y, 1, (1 - c.X - c.Y) / c.Y}
}

func (p Primaries) rgbToXYZ() mat3 {
	r, g, b := p.R.xyz(), p.G.xyz(), p.B.xyz()
	m := mat3{
		r[0], g[0], b[0],
		r[1], g[1], b[1],
		r[2], g[2], b[2],
	}
	s := m.inverse().apply(p.White.xyz())
	return mat3{
		m[0] * s[0], m[1] * s[1], m[2] * s[2],
		m[3] * s[0], m[4] * s[1], m[5] * s[2],
		m[6] * s[0], m[7] * s[1], m[8] * s[2],
	}
}

// RGBToXYZ returns the row-major matrix taking linear RGB in p to CIE XYZ.
func (p Primaries) RGBToXYZ() f32.Mat3 {
	return narrow(p.rgbToXYZ())
}

// ConversionMatrix returns the row-major matrix taking linear RGB in src to
// linear RGB in dst, going through CIE XYZ.
func ConversionMatrix(src, dst Primaries) f32.Mat3 {
	return narrow(dst.rgbToXYZ().inverse().mul(src.rgbToXYZ()))
}

func narrow(m mat3) f32.Mat3 {
	var r f32.Mat3
	for i, v := range m {
		r[i] = float32(v)
	}
	return r
}
