package fxchain

import (
	"embed"
	"io/fs"
)

// Embedded GLSL sources: the fixed header, footer and vertex shader, and one
// body per effect type. Files are addressed by base name.

//go:embed shaders/*.glsl shaders/*.frag
var shaderFiles embed.FS

// Fixed shader file names read by EffectChain.Finalize.
const (
	headerShader = "header.glsl"
	footerShader = "footer.glsl"
	vertexShader = "vs.glsl"
)

// InputSamplerName is the sampler uniform the generated fragment shader
// reads the chain input from. Bind the input texture to the unit returned
// by EffectChain.SetGLState and set this uniform to it.
const InputSamplerName = "input_tex"

// DefaultShaders returns the embedded shader sources.
func DefaultShaders() fs.FS {
	sub, err := fs.Sub(shaderFiles, "shaders")
	if err != nil {
		// fs.Sub only fails for invalid paths.
		panic(err)
	}
	return sub
}
