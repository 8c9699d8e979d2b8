package backend

import (
	"github.com/gogpu/fxchain/device"
)

// Backend name constants.
const (
	// BackendNull is the name of the backend that accepts every device call
	// and does nothing.
	BackendNull = "null"
	// BackendGL41 is the name of the OpenGL 4.1 core backend (backend/gl41).
	BackendGL41 = "gl41"
)

// NullBackend wraps device.Null. It needs no GPU and is always available,
// which makes it the backend for generating and inspecting shader text.
type NullBackend struct {
	dev *device.Null
}

// init registers the null backend on package import.
func init() {
	Register(BackendNull, func() DeviceBackend {
		return &NullBackend{}
	})
}

// NewNullBackend creates a new null backend.
func NewNullBackend() *NullBackend {
	return &NullBackend{}
}

// Name returns the backend identifier.
func (b *NullBackend) Name() string {
	return BackendNull
}

// Init creates the device.
func (b *NullBackend) Init() error {
	b.dev = &device.Null{}
	return nil
}

// Close drops the device.
func (b *NullBackend) Close() {
	b.dev = nil
}

// Device returns the device, or nil before Init.
func (b *NullBackend) Device() device.Device {
	if b.dev == nil {
		return nil
	}
	return b.dev
}
