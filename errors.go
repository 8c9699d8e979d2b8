package fxchain

import (
	"errors"
	"fmt"

	"github.com/gogpu/fxchain/device"
)

// Contract violations. These are integrator bugs, not runtime conditions:
// fxchain panics with an error wrapping one of them, so callers that want
// to test for a specific violation can recover and use errors.Is.
var (
	// ErrDuplicateParam is raised when a parameter key is registered twice
	// for the same type.
	ErrDuplicateParam = errors.New("fxchain: parameter already registered")

	// ErrUnknownTexture is raised when invalidating a texture parameter
	// that was never registered.
	ErrUnknownTexture = errors.New("fxchain: texture parameter not registered")

	// ErrUnknownEffect is raised for an EffectID outside the closed set.
	ErrUnknownEffect = errors.New("fxchain: unknown effect id")

	// ErrUnsupportedEffect is raised for effects that need many input
	// samples per pixel or mipmaps.
	ErrUnsupportedEffect = errors.New("fxchain: effect capability not supported")

	// ErrNotLinear is raised when a colorspace conversion would be inserted
	// while the signal is not in linear light.
	ErrNotLinear = errors.New("fxchain: colorspace conversion requires linear light")

	// ErrFinalized is raised when a finalized chain is modified or
	// finalized again.
	ErrFinalized = errors.New("fxchain: chain already finalized")

	// ErrNotFinalized is raised when uniforms are pushed before Finalize.
	ErrNotFinalized = errors.New("fxchain: chain not finalized")

	// ErrNoInput is raised when effects are added before AddInput.
	ErrNoInput = errors.New("fxchain: no input")

	// ErrInputAlreadySet is raised by a second AddInput call.
	ErrInputAlreadySet = errors.New("fxchain: only one input is supported")

	// ErrUnbalancedPrefix is returned by ReplacePrefix for a PREFIX( token
	// without its closing parenthesis.
	ErrUnbalancedPrefix = errors.New("fxchain: unbalanced PREFIX( parentheses")

	// ErrUnknownCurve is raised for a gamma curve or colorspace value a
	// conversion effect cannot handle.
	ErrUnknownCurve = errors.New("fxchain: unsupported gamma curve or colorspace")

	// ErrDevice wraps failures reported by device.Device.Err.
	ErrDevice = errors.New("fxchain: device error")
)

// Recoverable driver failures returned by EffectChain.Finalize.
var (
	// ErrShaderCompile is wrapped by CompileError.
	ErrShaderCompile = errors.New("fxchain: shader compilation failed")

	// ErrProgramLink is wrapped by LinkError.
	ErrProgramLink = errors.New("fxchain: program link failed")
)

// CompileError is returned when the driver rejects a generated shader.
type CompileError struct {
	// Stage is the shader stage that failed.
	Stage device.ShaderStage

	// Source is the complete text handed to the driver.
	Source string

	// Err is the driver error, normally carrying its info log.
	Err error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("fxchain: compile %s shader: %v", e.Stage, e.Err)
}

// Unwrap allows errors.Is to match both ErrShaderCompile and the driver error.
func (e *CompileError) Unwrap() []error {
	return []error{ErrShaderCompile, e.Err}
}

// LinkError is returned when the driver fails to link the fused program.
type LinkError struct {
	Err error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("fxchain: link program: %v", e.Err)
}

// Unwrap allows errors.Is to match both ErrProgramLink and the driver error.
func (e *LinkError) Unwrap() []error {
	return []error{ErrProgramLink, e.Err}
}

// violation panics with err wrapped in a formatted message.
func violation(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{err}, args...)...))
}

// checkError is the fatal error check run after a batch of device calls.
func checkError(dev device.Device, op string) {
	if err := dev.Err(); err != nil {
		panic(fmt.Errorf("%w: %s: %w", ErrDevice, op, err))
	}
}
