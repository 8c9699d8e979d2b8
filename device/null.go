// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"golang.org/x/image/math/f32"
)

// Null is a Device that accepts every call and does nothing.
// Used to assemble and inspect chains where no GL context is available,
// for example when only the generated shader text is wanted.
//
// Handles are allocated from a counter so they are distinct and non-zero.
type Null struct {
	next uint32
}

func (n *Null) alloc() uint32 {
	n.next++
	return n.next
}

// CreateTexture1D returns a fresh handle.
func (n *Null) CreateTexture1D([]float32) TextureID { return TextureID(n.alloc()) }

// UpdateTexture1D does nothing.
func (*Null) UpdateTexture1D(TextureID, []float32) {}

// BindTexture1D does nothing.
func (*Null) BindTexture1D(int, TextureID) {}

// DeleteTexture does nothing.
func (*Null) DeleteTexture(TextureID) {}

// CompileShader returns a fresh handle and never fails.
func (n *Null) CompileShader(ShaderStage, string) (ShaderID, error) {
	return ShaderID(n.alloc()), nil
}

// LinkProgram returns a fresh handle and never fails.
func (n *Null) LinkProgram(...ShaderID) (ProgramID, error) {
	return ProgramID(n.alloc()), nil
}

// UseProgram does nothing.
func (*Null) UseProgram(ProgramID) {}

// DeleteProgram does nothing.
func (*Null) DeleteProgram(ProgramID) {}

// Uniform1i does nothing.
func (*Null) Uniform1i(ProgramID, string, int32) {}

// Uniform1f does nothing.
func (*Null) Uniform1f(ProgramID, string, float32) {}

// Uniform2f does nothing.
func (*Null) Uniform2f(ProgramID, string, f32.Vec2) {}

// Uniform3f does nothing.
func (*Null) Uniform3f(ProgramID, string, f32.Vec3) {}

// Uniform4f does nothing.
func (*Null) Uniform4f(ProgramID, string, f32.Vec4) {}

// Err always returns nil.
func (*Null) Err() error { return nil }

// Ensure Null implements Device.
var _ Device = (*Null)(nil)
