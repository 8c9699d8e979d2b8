package fxchain

import (
	"io/fs"
	"math"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/fxchain/device"
)

// LiftGammaGainEffect is a three-way color corrector with per-channel
// "lift" (shadows), "gamma" (midtones) and "gain" (highlights) vec3
// parameters. Neutral values are lift 0, gamma 1, gain 1.
//
// Lift is applied in an approximately perceptual (gamma 2.2) space; gamma
// and gain are folded into two derived uniforms computed on the CPU.
type LiftGammaGainEffect struct {
	effectBase
}

func newLiftGammaGainEffect(dev device.Device) *LiftGammaGainEffect {
	e := &LiftGammaGainEffect{effectBase: newEffectBase(dev)}
	e.params.RegisterVec3("lift", f32.Vec3{0, 0, 0})
	e.params.RegisterVec3("gamma", f32.Vec3{1, 1, 1})
	e.params.RegisterVec3("gain", f32.Vec3{1, 1, 1})
	return e
}

func (e *LiftGammaGainEffect) EffectTypeID() string { return "LiftGammaGainEffect" }

func (e *LiftGammaGainEffect) OutputFragmentShader(shaders fs.FS) (string, error) {
	return readShader(shaders, "lift_gamma_gain_effect.frag")
}

func (e *LiftGammaGainEffect) SetGLState(dev device.Device, program device.ProgramID, prefix string, sampler *int) {
	e.effectBase.SetGLState(dev, program, prefix, sampler)

	gamma := e.params.Vec3("gamma")
	gain := e.params.Vec3("gain")

	var invGamma22, gainPowInvGamma f32.Vec3
	for i := range gamma {
		invGamma22[i] = 2.2 / gamma[i]
		gainPowInvGamma[i] = float32(math.Pow(float64(gain[i]), 1/float64(gamma[i])))
	}
	dev.Uniform3f(program, uniformName(prefix, "inv_gamma_22"), invGamma22)
	dev.Uniform3f(program, uniformName(prefix, "gain_pow_inv_gamma"), gainPowInvGamma)
	checkError(dev, "set lift/gamma/gain uniforms")
}
