package gl41

import (
	"errors"
	"fmt"
)

// ErrIncompleteFramebuffer is returned by RenderImage when the offscreen
// target cannot be rendered to.
var ErrIncompleteFramebuffer = errors.New("gl41: framebuffer incomplete")

// Error is a glGetError code.
type Error struct {
	Code uint32
}

// glGetError codes from the OpenGL 4.1 core profile.
const (
	codeInvalidEnum                 = 0x0500
	codeInvalidValue                = 0x0501
	codeInvalidOperation            = 0x0502
	codeOutOfMemory                 = 0x0505
	codeInvalidFramebufferOperation = 0x0506
)

func (e *Error) Error() string {
	switch e.Code {
	case codeInvalidEnum:
		return "gl41: GL_INVALID_ENUM"
	case codeInvalidValue:
		return "gl41: GL_INVALID_VALUE"
	case codeInvalidOperation:
		return "gl41: GL_INVALID_OPERATION"
	case codeOutOfMemory:
		return "gl41: GL_OUT_OF_MEMORY"
	case codeInvalidFramebufferOperation:
		return "gl41: GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return fmt.Sprintf("gl41: GL error 0x%04x", e.Code)
	}
}
