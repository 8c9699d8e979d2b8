//go:build !nogl

package gl41

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/fxchain/backend"
	"github.com/gogpu/fxchain/device"
)

// init registers the OpenGL backend on package import.
func init() {
	backend.Register(backend.BackendGL41, func() backend.DeviceBackend {
		return &Backend{}
	})
}

// Backend owns a hidden GLFW window whose OpenGL 4.1 core context backs a
// Device. Rendering happens offscreen; the window is never shown.
//
// GLFW and the context are bound to the OS thread that calls Init. Callers
// must lock that thread (runtime.LockOSThread, usually from main's init) and
// make every later call from it.
type Backend struct {
	window *glfw.Window
	dev    *Device
}

var (
	_ backend.DeviceBackend = (*Backend)(nil)
	_ backend.ImageRenderer = (*Backend)(nil)
)

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendGL41
}

// Init initializes GLFW, creates the hidden window and loads GL entry points.
func (b *Backend) Init() error {
	if b.window != nil {
		return nil
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("gl41: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(1, 1, "fxchain", nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("gl41: create context: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return fmt.Errorf("gl41: load entry points: %w", err)
	}

	b.window = window
	b.dev = NewDevice()
	return nil
}

// Close destroys the context and terminates GLFW.
func (b *Backend) Close() {
	if b.window == nil {
		return
	}
	b.window.Destroy()
	glfw.Terminate()
	b.window = nil
	b.dev = nil
}

// Device returns the device, or nil before Init.
func (b *Backend) Device() device.Device {
	if b.dev == nil {
		return nil
	}
	return b.dev
}

// Version returns the GL_VERSION string of the context.
func (b *Backend) Version() string {
	if b.window == nil {
		return ""
	}
	return gl.GoStr(gl.GetString(gl.VERSION))
}
