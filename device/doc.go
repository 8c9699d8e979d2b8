// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package device defines the GPU driver binding layer that fxchain compiles
// and drives effect chains through.
//
// # Key Principle
//
// fxchain RECEIVES a device from the host application. Creating windows,
// contexts and making them current is the host's job; the chain only issues
// texture, shader, program and uniform calls against the Device it was given.
//
// # Implementations
//
//   - Null: accepts everything, useful for generating shader text offline
//   - backend/gl41: OpenGL 4.1 core profile via go-gl
//
// # Error Model
//
// Device mirrors the GL error model: ordinary calls do not return errors and
// are checked in batches through Device.Err. Shader compilation and program
// linking return errors carrying the driver info log.
package device
