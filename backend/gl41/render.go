//go:build !nogl

package gl41

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/fxchain"
	"github.com/gogpu/fxchain/backend"
)

// quad covers the unit square as a triangle strip. The vertex shader maps
// it to clip space and passes it on as the texture coordinate.
var quad = []float32{
	0, 0,
	1, 0,
	0, 1,
	1, 1,
}

// uploadFormat maps a texture format to glTexImage2D arguments.
// Single-channel input is swizzled to gray so effects see RGB.
func uploadFormat(f gputypes.TextureFormat) (internal int32, format uint32, gray bool, err error) {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm:
		return gl.RGBA8, gl.RGBA, false, nil
	case gputypes.TextureFormatBGRA8Unorm:
		return gl.RGBA8, gl.BGRA, false, nil
	case gputypes.TextureFormatR8Unorm:
		return gl.R8, gl.RED, true, nil
	default:
		return 0, 0, false, fmt.Errorf("gl41: unsupported input format %v", f)
	}
}

func (b *Backend) uploadInput(src image.Image, f fxchain.PixelFormat) (uint32, error) {
	internal, format, gray, err := uploadFormat(f.TextureFormat())
	if err != nil {
		return 0, err
	}
	w, h := int32(src.Bounds().Dx()), int32(src.Bounds().Dy())
	pix := pixelData(src, f)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	if gray {
		swizzle := []int32{gl.RED, gl.RED, gl.RED, gl.ONE}
		gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_RGBA, &swizzle[0])
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, w, h, 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return tex, nil
}

// RenderImage runs a finalized chain over src and returns the premultiplied
// RGBA result of chain.OutputSize(). src must be the size the chain was
// created with.
func (b *Backend) RenderImage(chain *fxchain.EffectChain, src image.Image) (*image.RGBA, error) {
	if b.dev == nil {
		return nil, fmt.Errorf("gl41: render: %w", backend.ErrNotInitialized)
	}

	in, err := b.uploadInput(src, chain.InputFormat().PixelFormat)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteTextures(1, &in)

	w, h := chain.OutputSize()

	var out, fbo uint32
	gl.GenTextures(1, &out)
	defer gl.DeleteTextures(1, &out)
	gl.BindTexture(gl.TEXTURE_2D, out)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.GenFramebuffers(1, &fbo)
	defer gl.DeleteFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, out, 0)
	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return nil, fmt.Errorf("%w: status 0x%04x", ErrIncompleteFramebuffer, status)
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	defer gl.DeleteVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	defer gl.DeleteBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 0, 0)

	unit := chain.SetGLState()
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, in)
	b.dev.Uniform1i(chain.Program(), fxchain.InputSamplerName, int32(unit))

	gl.Viewport(0, 0, int32(w), int32(h))
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	flipRows(img.Pix, img.Stride)

	if err := b.dev.Err(); err != nil {
		return nil, fmt.Errorf("gl41: render: %w", err)
	}
	return img, nil
}
