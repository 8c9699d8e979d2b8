package fxchain

import (
	"io/fs"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/fxchain/device"
)

// texelFudge keeps an extra border texel when a shift lands almost exactly
// on a half texel, rather than losing one on integer shifts.
const texelFudge = 0.5 - 1e-3

// PaddingEffect places its input on a larger canvas of "width" x "height"
// pixels filled with "border_color". The input's top-left corner is at
// ("left", "top"); with "pad_from_bottom" set, "top" counts from the bottom
// edge instead.
type PaddingEffect struct {
	effectBase
}

func newPaddingEffect(dev device.Device) *PaddingEffect {
	e := &PaddingEffect{effectBase: newEffectBase(dev)}
	e.params.RegisterVec4("border_color", f32.Vec4{0, 0, 0, 0})
	e.params.RegisterInt("width", 1280)
	e.params.RegisterInt("height", 720)
	e.params.RegisterFloat("top", 0)
	e.params.RegisterFloat("left", 0)
	e.params.RegisterInt("pad_from_bottom", 0)
	return e
}

func (e *PaddingEffect) EffectTypeID() string    { return "PaddingEffect" }
func (e *PaddingEffect) ChangesOutputSize() bool { return true }

func (e *PaddingEffect) OutputSize() (width, height int) {
	return e.params.Int("width"), e.params.Int("height")
}

// The pixels of the input are passed through untouched, so only the border
// color can restrict where the effect may run.

// NeedsLinearLight is false only for a solid border whose channels are all
// 0 or 1, which read the same under every curve.
func (e *PaddingEffect) NeedsLinearLight() bool {
	c := e.params.Vec4("border_color")
	extreme := func(v float32) bool { return v == 0 || v == 1 }
	return !(extreme(c[0]) && extreme(c[1]) && extreme(c[2]) && c[3] == 1)
}

// NeedsSRGBPrimaries is false for pure black and pure white borders.
func (e *PaddingEffect) NeedsSRGBPrimaries() bool {
	c := e.params.Vec4("border_color")
	if c[0] == 0 && c[1] == 0 && c[2] == 0 {
		return false
	}
	if c[0] == 1 && c[1] == 1 && c[2] == 1 {
		return false
	}
	return true
}

func (e *PaddingEffect) AlphaHandling() AlphaHandling {
	c := e.params.Vec4("border_color")
	switch {
	case c[0] == 0 && c[1] == 0 && c[2] == 0 && c[3] == 1:
		return DontCare
	case c[3] == 1:
		// A solid border never turns blank alpha into anything else.
		return InputPremultipliedKeepBlank
	default:
		return InputAndOutputPremultiplied
	}
}

func (e *PaddingEffect) OutputFragmentShader(shaders fs.FS) (string, error) {
	return readShader(shaders, "padding_effect.frag")
}

func (e *PaddingEffect) SetGLState(dev device.Device, program device.ProgramID, prefix string, sampler *int) {
	e.effectBase.SetGLState(dev, program, prefix, sampler)

	outW, outH := float32(e.params.Int("width")), float32(e.params.Int("height"))
	inW, inH := float32(e.inputWidth), float32(e.inputHeight)
	if inW <= 0 || inH <= 0 {
		inW, inH = outW, outH
	}
	if outW <= 0 || outH <= 0 {
		outW, outH = 1, 1
	}

	top, left := e.params.Float("top"), e.params.Float("left")
	offset := f32.Vec2{left / outW, (outH - inH - top) / outH}
	if e.params.Int("pad_from_bottom") != 0 {
		offset[1] = top / outH
	}

	dev.Uniform2f(program, uniformName(prefix, "offset"), offset)
	dev.Uniform2f(program, uniformName(prefix, "scale"), f32.Vec2{outW / inW, outH / inH})
	dev.Uniform2f(program, uniformName(prefix, "texcoord_min"), f32.Vec2{texelFudge / inW, texelFudge / inH})
	dev.Uniform2f(program, uniformName(prefix, "texcoord_max"), f32.Vec2{1 - texelFudge/inW, 1 - texelFudge/inH})
	checkError(dev, "set padding uniforms")
}
