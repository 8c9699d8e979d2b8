package fxchain

import (
	"io/fs"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/fxchain/device"
)

// Effect is one processing stage of a chain.
//
// An effect contributes a GLSL function to the fused fragment shader. Its
// source refers to its own symbols through the placeholders
//
//	PREFIX(name)  a uniform or helper private to this effect instance
//	FUNCNAME      the name of the function the effect must define
//	LAST_INPUT    the function producing the previous stage's output
//
// which EffectChain rewrites when it finalizes. The function has the
// signature vec4 FUNCNAME(vec2 tc).
//
// Capability methods are pure: the chain queries them while assembling and
// never mutates an effect through them.
type Effect interface {
	// EffectTypeID names the concrete effect type, e.g. "SaturationEffect".
	EffectTypeID() string

	// Params returns the effect's parameter registry.
	Params() *Params

	// SetInt sets a registered int parameter, reporting false for unknown keys.
	SetInt(key string, v int) bool
	// SetFloat sets a registered float parameter, reporting false for unknown keys.
	SetFloat(key string, v float32) bool
	// SetVec2 sets a registered vec2 parameter, reporting false for unknown keys.
	SetVec2(key string, v f32.Vec2) bool
	// SetVec3 sets a registered vec3 parameter, reporting false for unknown keys.
	SetVec3(key string, v f32.Vec3) bool
	// SetVec4 sets a registered vec4 parameter, reporting false for unknown keys.
	SetVec4(key string, v f32.Vec4) bool

	// OutputConvenienceUniforms declares one PREFIX()ed uniform per
	// registered parameter.
	OutputConvenienceUniforms() string

	// OutputFragmentShader returns the effect's GLSL body. Fixed shader
	// text is read from shaders by file name.
	OutputFragmentShader(shaders fs.FS) (string, error)

	// SetGLState pushes the effect's current values into program, resolving
	// uniform names with prefix. Each texture consumes one unit starting
	// at *sampler.
	SetGLState(dev device.Device, program device.ProgramID, prefix string, sampler *int)

	// NeedsLinearLight reports whether the effect must see linear light.
	NeedsLinearLight() bool

	// NeedsSRGBPrimaries reports whether the effect must see sRGB primaries.
	NeedsSRGBPrimaries() bool

	// NeedsManySamples reports whether the effect reads more than one input
	// sample per output pixel. Such effects are rejected by the chain.
	NeedsManySamples() bool

	// NeedsMipmaps reports whether the effect samples its input with
	// mipmaps. Such effects are rejected by the chain.
	NeedsMipmaps() bool

	// AlphaHandling declares how the effect treats alpha.
	AlphaHandling() AlphaHandling

	// ChangesOutputSize reports whether OutputSize can differ from the
	// input size.
	ChangesOutputSize() bool

	// InformInputSize tells the effect the size of its input.
	InformInputSize(width, height int)

	// OutputSize returns the size of the image the effect produces.
	OutputSize() (width, height int)

	// Release frees device resources held by the effect.
	Release(dev device.Device)
}

// effectBase carries the parameter registry and the default capabilities
// shared by most effects: linear light and sRGB primaries required,
// premultiplied alpha in and out, size unchanged.
type effectBase struct {
	params *Params

	inputWidth, inputHeight int
}

func newEffectBase(dev device.Device) effectBase {
	return effectBase{params: NewParams(dev)}
}

func (e *effectBase) Params() *Params { return e.params }

func (e *effectBase) SetInt(key string, v int) bool       { return e.params.SetInt(key, v) }
func (e *effectBase) SetFloat(key string, v float32) bool { return e.params.SetFloat(key, v) }
func (e *effectBase) SetVec2(key string, v f32.Vec2) bool { return e.params.SetVec2(key, v) }
func (e *effectBase) SetVec3(key string, v f32.Vec3) bool { return e.params.SetVec3(key, v) }
func (e *effectBase) SetVec4(key string, v f32.Vec4) bool { return e.params.SetVec4(key, v) }
func (e *effectBase) OutputConvenienceUniforms() string   { return e.params.OutputConvenienceUniforms() }
func (e *effectBase) NeedsLinearLight() bool              { return true }
func (e *effectBase) NeedsSRGBPrimaries() bool            { return true }
func (e *effectBase) NeedsManySamples() bool              { return false }
func (e *effectBase) NeedsMipmaps() bool                  { return false }
func (e *effectBase) AlphaHandling() AlphaHandling        { return InputAndOutputPremultiplied }
func (e *effectBase) ChangesOutputSize() bool             { return false }
func (e *effectBase) Release(dev device.Device)           { e.params.release(dev) }
func (e *effectBase) OutputSize() (width, height int)     { return e.inputWidth, e.inputHeight }
func (e *effectBase) InformInputSize(width, height int)   { e.inputWidth, e.inputHeight = width, height }

func (e *effectBase) SetGLState(dev device.Device, program device.ProgramID, prefix string, sampler *int) {
	e.params.SetGLState(dev, program, prefix, sampler)
}

// readShader loads a fixed shader fragment by file name.
func readShader(shaders fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(shaders, name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
