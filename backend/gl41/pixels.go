package gl41

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/fxchain"
)

// pixelData converts img to tightly packed rows in the memory layout of f,
// bottom row first to match GL texture coordinates.
func pixelData(img image.Image, f fxchain.PixelFormat) []byte {
	b := img.Bounds()
	r := image.Rect(0, 0, b.Dx(), b.Dy())

	var pix []byte
	switch f {
	case fxchain.FormatGrayscale:
		g := image.NewGray(r)
		draw.Draw(g, r, img, b.Min, draw.Src)
		pix = g.Pix
	default:
		rgba := image.NewRGBA(r)
		draw.Draw(rgba, r, img, b.Min, draw.Src)
		pix = rgba.Pix
		if f == fxchain.FormatBGRA {
			for i := 0; i+3 < len(pix); i += 4 {
				pix[i], pix[i+2] = pix[i+2], pix[i]
			}
		}
	}
	flipRows(pix, b.Dx()*f.BytesPerPixel())
	return pix
}

// flipRows reverses the order of the rows of pix in place.
func flipRows(pix []byte, stride int) {
	if stride <= 0 {
		return
	}
	rows := len(pix) / stride
	tmp := make([]byte, stride)
	for top, bottom := 0, rows-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := pix[top*stride : (top+1)*stride]
		u := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, t)
		copy(t, u)
		copy(u, tmp)
	}
}
