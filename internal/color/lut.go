package color

// FillEncodeTable samples c.Encode at len(dst) evenly spaced points over
// [0,1] and stores the results in dst.
//
// The table is meant for a linearly filtered 1-D texture: entry i holds the
// encoded value of i/(len(dst)-1), so texture lookups at the linear value
// interpolate between neighbouring samples. Tables shorter than two entries
// are filled with Encode(0).
func FillEncodeTable(dst []float32, c Curve) {
	n := len(dst)
	if n < 2 {
		for i := range dst {
			dst[i] = float32(c.Encode(0))
		}
		return
	}
	for i := range dst {
		x := float64(i) / float64(n-1)
		dst[i] = float32(c.Encode(x))
	}
}
