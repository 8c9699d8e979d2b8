// Package gl41 implements device.Device on OpenGL 4.1 core through go-gl,
// with a GLFW hidden-window backend and an offscreen render path.
//
// Importing the package registers the "gl41" backend:
//
//	import _ "github.com/gogpu/fxchain/backend/gl41"
//
//	b, err := backend.Open("gl41")
//	...
//	img, err := b.(backend.ImageRenderer).RenderImage(chain, src)
//
// Build with -tags nogl to leave out everything that needs cgo and a GL
// driver.
package gl41
