package fxchain

import (
	"io/fs"

	"github.com/gogpu/fxchain/device"
	"github.com/gogpu/fxchain/internal/color"
)

// compressionCurveSize is the number of texels in the sampled curve.
// 4096 entries keep the error of linear interpolation well below 12 bits.
const compressionCurveSize = 4096

// GammaCompressionEffect encodes linear light with the curve in the
// "destination_curve" int parameter.
//
// Non-linear curves are applied through a 1-D lookup texture,
// "compression_curve_tex". The table is rebuilt, and the texture marked for
// upload, only when the destination curve differs from the one the table
// was last built for. Which shader is used is fixed by Finalize: switching
// a linear compression to a curve afterwards has no effect, and switching a
// curve back to linear turns the table into the identity.
type GammaCompressionEffect struct {
	effectBase

	curve    []float32
	built    bool
	builtFor GammaCurve
}

func newGammaCompressionEffect(dev device.Device) *GammaCompressionEffect {
	e := &GammaCompressionEffect{
		effectBase: newEffectBase(dev),
		curve:      make([]float32, compressionCurveSize),
	}
	e.params.RegisterInt("destination_curve", int(GammaLinear))
	e.params.RegisterTexture1D("compression_curve_tex", e.curve)
	return e
}

func (e *GammaCompressionEffect) EffectTypeID() string         { return "GammaCompressionEffect" }
func (e *GammaCompressionEffect) NeedsLinearLight() bool       { return false }
func (e *GammaCompressionEffect) NeedsSRGBPrimaries() bool     { return false }
func (e *GammaCompressionEffect) AlphaHandling() AlphaHandling { return DontCare }

// DestinationCurve returns the curve being applied.
func (e *GammaCompressionEffect) DestinationCurve() GammaCurve {
	return GammaCurve(e.params.Int("destination_curve"))
}

// updateCurve rebuilds the lookup table if the destination curve changed.
func (e *GammaCompressionEffect) updateCurve() {
	dst := e.DestinationCurve()
	if e.built && e.builtFor == dst {
		return
	}
	switch {
	case dst != GammaLinear:
		c, ok := dst.curve()
		if !ok {
			violation(ErrUnknownCurve, "gamma compression to %v", dst)
		}
		color.FillEncodeTable(e.curve, c)
		e.params.InvalidateTexture1D("compression_curve_tex")
	case e.built && e.builtFor != GammaLinear:
		// The program may already sample the table, so it has to pass
		// values through unchanged.
		fillIdentity(e.curve)
		e.params.InvalidateTexture1D("compression_curve_tex")
	}
	e.built, e.builtFor = true, dst
}

func fillIdentity(dst []float32) {
	n := len(dst) - 1
	for i := range dst {
		dst[i] = float32(i) / float32(n)
	}
}

func (e *GammaCompressionEffect) OutputFragmentShader(shaders fs.FS) (string, error) {
	e.updateCurve()
	if e.DestinationCurve() == GammaLinear {
		return readShader(shaders, "identity.frag")
	}
	return readShader(shaders, "gamma_compression_effect.frag")
}

func (e *GammaCompressionEffect) SetGLState(dev device.Device, program device.ProgramID, prefix string, sampler *int) {
	e.updateCurve()
	e.effectBase.SetGLState(dev, program, prefix, sampler)

	n := float32(len(e.curve))
	dev.Uniform1f(program, uniformName(prefix, "lut_scale"), (n-1)/n)
	dev.Uniform1f(program, uniformName(prefix, "lut_offset"), 0.5/n)
	checkError(dev, "set gamma compression uniforms")
}
