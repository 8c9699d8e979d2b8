package fxchain

import (
	"io"
	"io/fs"
	"log/slog"
)

// ChainOption configures an EffectChain during creation.
//
// Example:
//
//	// Default: embedded shaders, package logger
//	chain := fxchain.NewEffectChain(dev, 1280, 720)
//
//	// Dump the generated fragment shader and convert to the output format
//	chain := fxchain.NewEffectChain(dev, 1280, 720,
//	    fxchain.WithShaderDump(os.Stderr),
//	    fxchain.WithOutputConversion())
type ChainOption func(*chainOptions)

// chainOptions holds optional configuration for EffectChain creation.
type chainOptions struct {
	logger           *slog.Logger
	shaders          fs.FS
	dump             io.Writer
	outputConversion bool
}

// defaultOptions returns the default chain options.
func defaultOptions() chainOptions {
	return chainOptions{
		logger:  nil, // Falls back to Logger() at log time
		shaders: nil, // DefaultShaders()
	}
}

// WithLogger sets the logger used by this chain instead of the package-wide
// logger configured with SetLogger.
func WithLogger(l *slog.Logger) ChainOption {
	return func(o *chainOptions) {
		o.logger = l
	}
}

// WithShaderFS replaces the embedded shader sources. The file system must
// provide header.glsl, footer.glsl, vs.glsl, identity.frag and one
// <effect>.frag per effect type used, all at its root.
//
// Example:
//
//	chain := fxchain.NewEffectChain(dev, w, h, fxchain.WithShaderFS(os.DirFS("myshaders")))
func WithShaderFS(shaders fs.FS) ChainOption {
	return func(o *chainOptions) {
		o.shaders = shaders
	}
}

// WithShaderDump writes the generated fragment shader to w during Finalize,
// before it is handed to the driver.
func WithShaderDump(w io.Writer) ChainOption {
	return func(o *chainOptions) {
		o.dump = w
	}
}

// WithOutputConversion makes Finalize append the gamma and colorspace
// conversions needed to deliver the format given to AddOutput.
//
// Without it the chain ends in whatever representation its last effect
// left, and converting to the output format is up to the caller.
func WithOutputConversion() ChainOption {
	return func(o *chainOptions) {
		o.outputConversion = true
	}
}
