package fxchain

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/gogpu/fxchain/device"
)

// EffectChain assembles effects into a single fused fragment program.
//
// A chain is built in three phases:
//
//	chain := fxchain.NewEffectChain(dev, 1280, 720)
//	chain.AddInput(fxchain.ImageFormat{PixelFormat: fxchain.FormatRGBA,
//	    Colorspace: fxchain.ColorspaceSRGB, GammaCurve: fxchain.GammaSRGB})
//	chain.AddEffect(fxchain.EffectLiftGammaGain).SetVec3("gain", f32.Vec3{1.2, 1, 1})
//	chain.AddOutput(outFormat)
//	if err := chain.Finalize(); err != nil { ... }
//
//	// every frame
//	unit := chain.SetGLState()
//
// While effects are added the chain tracks the colorspace and gamma curve of
// the signal and inserts GammaExpansionEffect and ColorspaceConversionEffect
// stages wherever the next effect needs linear light or sRGB primaries.
//
// EffectChain is not safe for concurrent use. All calls must happen on the
// thread that owns the device's GL context.
type EffectChain struct {
	dev           device.Device
	width, height int
	opts          chainOptions
	shaders       fs.FS

	inputFormat  ImageFormat
	outputFormat ImageFormat
	hasInput     bool
	hasOutput    bool

	effects   []Effect
	fragment  string
	program   device.ProgramID
	finalized bool

	outWidth, outHeight int
}

// NewEffectChain creates an empty chain whose input is width x height
// pixels. The device must stay valid until Close.
func NewEffectChain(dev device.Device, width, height int, opts ...ChainOption) *EffectChain {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	shaders := o.shaders
	if shaders == nil {
		shaders = DefaultShaders()
	}
	return &EffectChain{
		dev:     dev,
		width:     width,
		height:    height,
		opts:      o,
		shaders:   shaders,
		outWidth:  width,
		outHeight: height,
	}
}

func (c *EffectChain) logger() *slog.Logger {
	if c.opts.logger != nil {
		return c.opts.logger
	}
	return Logger()
}

// AddInput declares the chain's only input and seeds the tracked
// colorspace and gamma curve from it. A second call panics with
// ErrInputAlreadySet.
func (c *EffectChain) AddInput(format ImageFormat) {
	if c.finalized {
		violation(ErrFinalized, "AddInput")
	}
	if c.hasInput {
		violation(ErrInputAlreadySet, "AddInput(%v)", format)
	}
	c.inputFormat = format
	c.hasInput = true
}

// state replays the effect list from the input format and returns the
// colorspace and gamma curve the signal is in after the last effect.
// Conversion effects are read through their current parameters, so
// conversions added with AddEffect and configured afterwards count too.
func (c *EffectChain) state() (Colorspace, GammaCurve) {
	space, gamma := c.inputFormat.Colorspace, c.inputFormat.GammaCurve
	for _, e := range c.effects {
		switch e := e.(type) {
		case *GammaExpansionEffect:
			if e.SourceCurve() != GammaLinear {
				gamma = GammaLinear
			}
		case *GammaCompressionEffect:
			if dst := e.DestinationCurve(); dst != GammaLinear {
				gamma = dst
			}
		case *ColorspaceConversionEffect:
			_, space = e.Spaces()
		}
	}
	return space, gamma
}

// AddOutput records the format the chain output is meant to have. Unless
// the chain was created with WithOutputConversion it has no effect on the
// generated program.
func (c *EffectChain) AddOutput(format ImageFormat) {
	if c.finalized {
		violation(ErrFinalized, "AddOutput")
	}
	c.outputFormat = format
	c.hasOutput = true
}

// AddEffect instantiates the effect named by id and appends it, preceded by
// whatever conversions it needs. The returned effect is owned by the chain;
// use it to set parameters.
//
// AddEffect panics with ErrNoInput before AddInput, with ErrFinalized after
// Finalize, with ErrUnknownEffect for an id outside the known set and with
// ErrUnsupportedEffect for effects that need many samples or mipmaps.
func (c *EffectChain) AddEffect(id EffectID) Effect {
	if c.finalized {
		violation(ErrFinalized, "AddEffect(%v)", id)
	}
	if !c.hasInput {
		violation(ErrNoInput, "AddEffect(%v)", id)
	}
	e := instantiateEffect(id, c.dev)
	c.appendEffect(e)
	return e
}

// appendEffect runs the conversion rules for e and appends it.
func (c *EffectChain) appendEffect(e Effect) {
	if _, gamma := c.state(); e.NeedsLinearLight() && gamma != GammaLinear {
		c.expandGamma()
	}

	if space, _ := c.state(); e.NeedsSRGBPrimaries() && space != ColorspaceSRGB {
		c.convertColorspace(ColorspaceSRGB)
	}

	// Multi-pass rendering is not supported, so anything that reads its
	// input more than once per pixel cannot be fused.
	if e.NeedsManySamples() {
		violation(ErrUnsupportedEffect, "%s needs many samples", e.EffectTypeID())
	}
	if e.NeedsMipmaps() {
		violation(ErrUnsupportedEffect, "%s needs mipmaps", e.EffectTypeID())
	}

	c.effects = append(c.effects, e)
	space, gamma := c.state()
	c.logger().Debug("fxchain: effect added",
		"effect", e.EffectTypeID(),
		"index", len(c.effects)-1,
		"colorspace", space,
		"gamma", gamma)
}

// expandGamma appends a gamma expansion from the current curve to linear.
func (c *EffectChain) expandGamma() {
	_, gamma := c.state()
	g := newGammaExpansionEffect(c.dev)
	g.SetInt("source_curve", int(gamma))
	c.effects = append(c.effects, g)
	c.logger().Debug("fxchain: inserted gamma expansion", "from", gamma)
}

// compressGamma appends a gamma compression from linear to dst.
func (c *EffectChain) compressGamma(dst GammaCurve) {
	g := newGammaCompressionEffect(c.dev)
	g.SetInt("destination_curve", int(dst))
	c.effects = append(c.effects, g)
	c.logger().Debug("fxchain: inserted gamma compression", "to", dst)
}

// convertColorspace appends a colorspace conversion to dst. The signal must
// already be in linear light.
func (c *EffectChain) convertColorspace(dst Colorspace) {
	space, gamma := c.state()
	if gamma != GammaLinear {
		violation(ErrNotLinear, "converting %v to %v with gamma %v", space, dst, gamma)
	}
	cc := newColorspaceConversionEffect(c.dev)
	cc.SetInt("source_space", int(space))
	cc.SetInt("destination_space", int(dst))
	c.effects = append(c.effects, cc)
	c.logger().Debug("fxchain: inserted colorspace conversion", "from", space, "to", dst)
}

// convertToOutput appends the conversions that bring the current signal to
// the output format. Colorspace conversion happens in linear light, before
// the final gamma compression. Conversions the caller already appended are
// taken into account.
func (c *EffectChain) convertToOutput() {
	out := c.outputFormat
	if space, gamma := c.state(); space != out.Colorspace {
		if gamma != GammaLinear {
			c.expandGamma()
		}
		c.convertColorspace(out.Colorspace)
	}
	if _, gamma := c.state(); gamma != out.GammaCurve {
		if gamma != GammaLinear {
			c.expandGamma()
		}
		if out.GammaCurve != GammaLinear {
			c.compressGamma(out.GammaCurve)
		}
	}
}

// Finalize generates the fused fragment shader, compiles it together with
// the vertex shader and links the program. It may be called only once;
// afterwards the chain accepts no more effects.
//
// Errors from reading shader text, compiling or linking are returned;
// compile and link failures are *CompileError and *LinkError carrying the
// driver log. An effect whose text has an unbalanced PREFIX( is a broken
// effect and panics with ErrUnbalancedPrefix.
func (c *EffectChain) Finalize() error {
	if c.finalized {
		violation(ErrFinalized, "Finalize")
	}
	if !c.hasInput {
		violation(ErrNoInput, "Finalize")
	}
	c.finalized = true

	if c.opts.outputConversion && c.hasOutput {
		c.convertToOutput()
	}

	w, h := c.propagateSizes()

	src, err := c.generateFragmentShader()
	if err != nil {
		return err
	}
	c.fragment = src
	c.logger().Debug("fxchain: fragment shader generated",
		"effects", len(c.effects),
		"bytes", len(src))

	if c.opts.dump != nil {
		if _, err := io.WriteString(c.opts.dump, src); err != nil {
			return fmt.Errorf("fxchain: dump shader: %w", err)
		}
	}

	vsSrc, err := readShader(c.shaders, vertexShader)
	if err != nil {
		return fmt.Errorf("fxchain: read %s: %w", vertexShader, err)
	}
	vs, err := c.compile(device.StageVertex, vsSrc)
	if err != nil {
		return err
	}
	fsh, err := c.compile(device.StageFragment, src)
	if err != nil {
		return err
	}

	program, err := c.dev.LinkProgram(vs, fsh)
	if err != nil {
		c.logger().Error("fxchain: program link failed", "err", err)
		return &LinkError{Err: err}
	}
	checkError(c.dev, "link program")
	c.program = program

	c.logger().Info("fxchain: program linked",
		"program", program,
		"effects", len(c.effects),
		"output_width", w,
		"output_height", h)
	return nil
}

func (c *EffectChain) compile(stage device.ShaderStage, src string) (device.ShaderID, error) {
	id, err := c.dev.CompileShader(stage, src)
	if err != nil {
		c.logger().Error("fxchain: shader compile failed", "stage", stage, "err", err)
		return 0, &CompileError{Stage: stage, Source: src, Err: err}
	}
	checkError(c.dev, "compile "+stage.String()+" shader")
	return id, nil
}

// generateFragmentShader concatenates the header, every effect's uniforms
// and body under its tag, and the footer.
func (c *EffectChain) generateFragmentShader() (string, error) {
	header, err := readShader(c.shaders, headerShader)
	if err != nil {
		return "", fmt.Errorf("fxchain: read %s: %w", headerShader, err)
	}
	footer, err := readShader(c.shaders, footerShader)
	if err != nil {
		return "", fmt.Errorf("fxchain: read %s: %w", footerShader, err)
	}

	var b strings.Builder
	b.WriteString(header)
	for i, e := range c.effects {
		tag := effectTag(i)

		body, err := e.OutputFragmentShader(c.shaders)
		if err != nil {
			return "", fmt.Errorf("fxchain: %s shader: %w", e.EffectTypeID(), err)
		}
		uniforms, err := ReplacePrefix(e.OutputConvenienceUniforms(), tag)
		if err != nil {
			violation(ErrUnbalancedPrefix, "%s uniforms: %v", e.EffectTypeID(), err)
		}
		body, err = ReplacePrefix(body, tag)
		if err != nil {
			violation(ErrUnbalancedPrefix, "%s shader: %v", e.EffectTypeID(), err)
		}

		b.WriteString("\n")
		fmt.Fprintf(&b, "#define FUNCNAME %s\n", tag)
		b.WriteString(uniforms)
		b.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("#undef FUNCNAME\n")
		b.WriteString("#undef LAST_INPUT\n")
		fmt.Fprintf(&b, "#define LAST_INPUT %s\n", tag)

		c.logger().Debug("fxchain: effect tagged", "tag", tag, "effect", e.EffectTypeID())
	}
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String(), nil
}

// effectTag names the i-th effect's symbols in the fused shader.
func effectTag(i int) string {
	return fmt.Sprintf("eff%d", i)
}

// SetGLState makes the program current and pushes every effect's uniforms.
// Texture parameters take units 0, 1, ... in effect order. The returned
// unit is the first one left free; bind the chain input there and point
// InputSamplerName at it.
//
// SetGLState panics with ErrNotFinalized unless Finalize succeeded.
func (c *EffectChain) SetGLState() int {
	if !c.finalized || c.program == 0 {
		violation(ErrNotFinalized, "SetGLState")
	}
	c.dev.UseProgram(c.program)
	checkError(c.dev, "use program")

	sampler := 0
	for i, e := range c.effects {
		e.SetGLState(c.dev, c.program, effectTag(i), &sampler)
	}
	return sampler
}

// Effects returns the chain's effects in order, including inserted
// conversions. The slice must not be modified.
func (c *EffectChain) Effects() []Effect { return c.effects }

// CurrentColorspace returns the colorspace after the last appended effect.
func (c *EffectChain) CurrentColorspace() Colorspace {
	space, _ := c.state()
	return space
}

// CurrentGammaCurve returns the gamma curve after the last appended effect.
func (c *EffectChain) CurrentGammaCurve() GammaCurve {
	_, gamma := c.state()
	return gamma
}

// InputFormat returns the format given to AddInput.
func (c *EffectChain) InputFormat() ImageFormat { return c.inputFormat }

// OutputFormat returns the format given to AddOutput.
func (c *EffectChain) OutputFormat() ImageFormat { return c.outputFormat }

// FragmentShader returns the generated fragment shader, or "" before
// Finalize.
func (c *EffectChain) FragmentShader() string { return c.fragment }

// Program returns the linked program, or 0 before a successful Finalize.
func (c *EffectChain) Program() device.ProgramID { return c.program }

// Finalized reports whether Finalize has been called.
func (c *EffectChain) Finalized() bool { return c.finalized }

// OutputSize returns the size of the image the chain produces, as computed
// by Finalize. Before Finalize it is the input size.
func (c *EffectChain) OutputSize() (width, height int) {
	return c.outWidth, c.outHeight
}

// propagateSizes informs every effect of its input size, starting from the
// chain's, and records the size that comes out of the last one.
func (c *EffectChain) propagateSizes() (width, height int) {
	w, h := c.width, c.height
	for _, e := range c.effects {
		e.InformInputSize(w, h)
		w, h = e.OutputSize()
	}
	c.outWidth, c.outHeight = w, h
	return w, h
}

// Close releases the program and every effect's textures.
func (c *EffectChain) Close() {
	for _, e := range c.effects {
		e.Release(c.dev)
	}
	if c.program != 0 {
		c.dev.DeleteProgram(c.program)
		c.program = 0
	}
	checkError(c.dev, "release chain")
}
