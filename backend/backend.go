package backend

import (
	"errors"
	"image"

	"github.com/gogpu/fxchain"
	"github.com/gogpu/fxchain/device"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// DeviceBackend owns a GPU context and the device.Device bound to it.
// It abstracts how the context is obtained, allowing the same effect chain
// code to run on a real driver or on a device that only records text.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type DeviceBackend interface {
	// Name returns the backend identifier (e.g., "null", "gl41").
	Name() string

	// Init creates the context and the device.
	// This must be called before Device.
	Init() error

	// Close releases the context.
	// The device must not be used after Close is called.
	Close()

	// Device returns the device, or nil before Init.
	Device() device.Device
}

// ImageRenderer is implemented by backends that can run a finalized chain
// over an image and read the result back.
type ImageRenderer interface {
	// RenderImage uploads src as the chain input, draws the chain into an
	// offscreen target of chain.OutputSize() and returns the pixels.
	RenderImage(chain *fxchain.EffectChain, src image.Image) (*image.RGBA, error)
}
