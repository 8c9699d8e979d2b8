package fxchain

import (
	"io/fs"
	"math"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/fxchain/device"
)

// VignetteEffect is a circular vignette falling off as cos² of the distance
// from "center", the classic approximation of a real lens. Inside
// "inner_radius" the image is untouched; the falloff reaches black
// "radius" further out. Distances are relative to the shorter image side.
type VignetteEffect struct {
	effectBase
}

func newVignetteEffect(dev device.Device) *VignetteEffect {
	e := &VignetteEffect{effectBase: newEffectBase(dev)}
	e.params.RegisterVec2("center", f32.Vec2{0.5, 0.5})
	e.params.RegisterFloat("radius", 0.3)
	e.params.RegisterFloat("inner_radius", 0.3)
	return e
}

func (e *VignetteEffect) EffectTypeID() string         { return "VignetteEffect" }
func (e *VignetteEffect) NeedsSRGBPrimaries() bool     { return false }
func (e *VignetteEffect) AlphaHandling() AlphaHandling { return DontCare }

func (e *VignetteEffect) OutputFragmentShader(shaders fs.FS) (string, error) {
	return readShader(shaders, "vignette_effect.frag")
}

func (e *VignetteEffect) SetGLState(dev device.Device, program device.ProgramID, prefix string, sampler *int) {
	e.effectBase.SetGLState(dev, program, prefix, sampler)

	aspect := f32.Vec2{1, 1}
	if w, h := float32(e.inputWidth), float32(e.inputHeight); w > 0 && h > 0 {
		if w > h {
			aspect[0] = w / h
		} else {
			aspect[1] = h / w
		}
	}

	// Texture coordinates have their origin at the bottom left.
	center := e.params.Vec2("center")
	flipped := f32.Vec2{center[0] * aspect[0], (1 - center[1]) * aspect[1]}

	dev.Uniform1f(program, uniformName(prefix, "pihalf_div_radius"), float32(0.5*math.Pi)/e.params.Float("radius"))
	dev.Uniform2f(program, uniformName(prefix, "aspect_correction"), aspect)
	dev.Uniform2f(program, uniformName(prefix, "flipped_center"), flipped)
	checkError(dev, "set vignette uniforms")
}
