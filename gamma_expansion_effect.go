package fxchain

import (
	"io/fs"

	"github.com/gogpu/fxchain/device"
)

// GammaExpansionEffect converts a signal encoded with the curve in the
// "source_curve" int parameter to linear light. The chain inserts one
// automatically in front of any effect that needs linear light.
type GammaExpansionEffect struct {
	effectBase
}

func newGammaExpansionEffect(dev device.Device) *GammaExpansionEffect {
	e := &GammaExpansionEffect{effectBase: newEffectBase(dev)}
	e.params.RegisterInt("source_curve", int(GammaLinear))
	return e
}

func (e *GammaExpansionEffect) EffectTypeID() string         { return "GammaExpansionEffect" }
func (e *GammaExpansionEffect) NeedsLinearLight() bool       { return false }
func (e *GammaExpansionEffect) NeedsSRGBPrimaries() bool     { return false }
func (e *GammaExpansionEffect) AlphaHandling() AlphaHandling { return DontCare }

// SourceCurve returns the curve being expanded.
func (e *GammaExpansionEffect) SourceCurve() GammaCurve {
	return GammaCurve(e.params.Int("source_curve"))
}

func (e *GammaExpansionEffect) OutputFragmentShader(shaders fs.FS) (string, error) {
	src := e.SourceCurve()
	if src == GammaLinear {
		return readShader(shaders, "identity.frag")
	}
	if _, ok := src.curve(); !ok {
		violation(ErrUnknownCurve, "gamma expansion from %v", src)
	}
	return readShader(shaders, "gamma_expansion_effect.frag")
}

func (e *GammaExpansionEffect) SetGLState(dev device.Device, program device.ProgramID, prefix string, sampler *int) {
	e.effectBase.SetGLState(dev, program, prefix, sampler)

	c, ok := e.SourceCurve().curve()
	if !ok {
		return
	}
	dev.Uniform1f(program, uniformName(prefix, "linear_scale"), float32(1/c.LinearSlope))
	dev.Uniform1f(program, uniformName(prefix, "breakpoint"), float32(c.EncodedBreakpoint()))
	dev.Uniform1f(program, uniformName(prefix, "curve_alpha"), float32(c.Alpha))
	dev.Uniform1f(program, uniformName(prefix, "power"), float32(1/c.Power))
	checkError(dev, "set gamma expansion uniforms")
}
