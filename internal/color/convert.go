package color

import "math"

// Encode converts linear light to the encoded signal (OETF).
// Input is clamped to [0,1].
func (c Curve) Encode(l float64) float64 {
	l = clamp01(l)
	if l < c.Beta {
		return c.LinearSlope * l
	}
	return c.Alpha*math.Pow(l, c.Power) - (c.Alpha - 1)
}

// Decode converts an encoded signal back to linear light (inverse OETF).
// Input is clamped to [0,1].
func (c Curve) Decode(e float64) float64 {
	e = clamp01(e)
	if e < c.EncodedBreakpoint() {
		return e / c.LinearSlope
	}
	return math.Pow((e+(c.Alpha-1))/c.Alpha, 1/c.Power)
}

func clamp01(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}
