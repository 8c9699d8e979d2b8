// Package fxchain compiles a chain of image effects into one fused GLSL
// fragment program.
//
// # Overview
//
// An EffectChain takes one input image of known format (pixel layout,
// colorspace and gamma curve) and any number of effects. Each effect
// contributes a GLSL function; the chain concatenates them into a single
// fragment shader in which every stage reads the previous one, so the whole
// chain runs in one pass.
//
// # Color management
//
// Effects declare what representation they work in. The chain tracks the
// colorspace and gamma curve of the signal as effects are added and inserts
// conversions where needed:
//
//   - an effect that needs linear light gets a GammaExpansionEffect in front
//     of it if the signal is still gamma-encoded;
//   - an effect that needs sRGB primaries gets a ColorspaceConversionEffect
//     if the signal is in another gamut.
//
// Gamma expansion always precedes colorspace conversion, because primaries
// can only be converted in linear light. With WithOutputConversion the chain
// also converts to the format given to AddOutput before finalizing.
//
// # Shader contract
//
// Effect shader text uses three placeholders:
//
//	PREFIX(name)  per-instance symbol, rewritten to <tag>_name
//	FUNCNAME      the function the effect defines, vec4 FUNCNAME(vec2 tc)
//	LAST_INPUT    the previous stage, called as LAST_INPUT(tc)
//
// Tags are eff0, eff1, ... in chain order. Parameters registered on an
// effect become uniforms named <tag>_<key> and are pushed by SetGLState.
//
// # Quick Start
//
//	chain := fxchain.NewEffectChain(dev, 1280, 720)
//	chain.AddInput(fxchain.ImageFormat{
//	    PixelFormat: fxchain.FormatRGBA,
//	    Colorspace:  fxchain.ColorspaceSRGB,
//	    GammaCurve:  fxchain.GammaSRGB,
//	})
//	chain.AddEffect(fxchain.EffectSaturation).SetFloat("saturation", 0.5)
//	if err := chain.Finalize(); err != nil {
//	    log.Fatal(err)
//	}
//	defer chain.Close()
//
//	unit := chain.SetGLState() // bind the input texture to this unit
//
// # Devices
//
// The chain drives the GPU through device.Device. Package backend/gl41
// implements it on OpenGL 4.1 core; device.Null accepts every call and is
// enough to generate and inspect shader text.
//
// # Errors
//
// Integration mistakes (unknown effect ids, duplicate parameters, adding
// effects after Finalize, ...) panic with an error wrapping one of the Err*
// sentinels. Shader compile and link failures are returned by Finalize.
//
// # Logging
//
// fxchain logs through log/slog. It is silent unless SetLogger or
// WithLogger supplies a logger.
package fxchain
