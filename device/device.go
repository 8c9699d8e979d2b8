// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"golang.org/x/image/math/f32"
)

// ShaderStage identifies the pipeline stage a shader object is compiled for.
type ShaderStage uint8

const (
	// StageVertex is the vertex shader stage.
	StageVertex ShaderStage = iota

	// StageFragment is the fragment shader stage.
	StageFragment
)

// String returns the stage name as used in driver diagnostics.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// TextureID is a driver handle for a texture object. Zero is never a valid handle.
type TextureID uint32

// ShaderID is a driver handle for a compiled shader object.
type ShaderID uint32

// ProgramID is a driver handle for a linked program.
type ProgramID uint32

// Device is the GPU driver binding layer used by an effect chain.
//
// The chain RECEIVES a device from the host application, it does NOT create
// one. The host owns the context and makes it current on the calling thread
// before handing the device to a chain.
//
// Only shader compilation and program linking report recoverable errors.
// Every other call is checked afterwards through Err, which plays the role
// of glGetError: a non-nil result is a fatal driver failure.
//
// Uniforms are addressed by name. Implementations resolve and cache the
// location; setting a uniform the linker optimized away is a no-op.
type Device interface {
	// CreateTexture1D allocates a single-channel float 1-D texture of
	// len(values) texels with linear filtering and clamp-to-edge wrapping,
	// and uploads values as its initial contents.
	CreateTexture1D(values []float32) TextureID

	// UpdateTexture1D re-uploads the full contents of a 1-D texture.
	UpdateTexture1D(tex TextureID, values []float32)

	// BindTexture1D binds tex to the given texture unit.
	BindTexture1D(unit int, tex TextureID)

	// DeleteTexture releases a texture.
	DeleteTexture(tex TextureID)

	// CompileShader compiles source for the given stage. On failure the
	// returned error carries the driver's info log.
	CompileShader(stage ShaderStage, source string) (ShaderID, error)

	// LinkProgram links the given shader objects into a program. On failure
	// the returned error carries the driver's info log.
	LinkProgram(shaders ...ShaderID) (ProgramID, error)

	// UseProgram makes program current for subsequent uniform updates.
	UseProgram(program ProgramID)

	// DeleteProgram releases a program.
	DeleteProgram(program ProgramID)

	// Uniform1i sets an int or sampler uniform.
	Uniform1i(program ProgramID, name string, v int32)

	// Uniform1f sets a float uniform.
	Uniform1f(program ProgramID, name string, v float32)

	// Uniform2f sets a vec2 uniform.
	Uniform2f(program ProgramID, name string, v f32.Vec2)

	// Uniform3f sets a vec3 uniform.
	Uniform3f(program ProgramID, name string, v f32.Vec3)

	// Uniform4f sets a vec4 uniform.
	Uniform4f(program ProgramID, name string, v f32.Vec4)

	// Err returns and clears the first pending driver error, if any.
	Err() error
}
