// Package backend provides a pluggable device backend abstraction.
//
// An effect chain drives the GPU through device.Device, but something has
// to create the context that device talks to. Backends own that context.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The null backend is automatically registered on import; the OpenGL one
// registers itself when its package is imported:
//
//	import _ "github.com/gogpu/fxchain/backend/gl41"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	b := backend.Default()
//
//	// Or request a specific backend
//	b := backend.Get("null")
//
// # Usage with EffectChain
//
//	b, err := backend.Open("gl41")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	chain := fxchain.NewEffectChain(b.Device(), 1280, 720)
//
// Backends that can execute a chain implement ImageRenderer.
//
// # Available Backends
//
// - "null": records nothing, compiles nothing (always available)
// - "gl41": OpenGL 4.1 core through go-gl, hidden GLFW window
package backend
