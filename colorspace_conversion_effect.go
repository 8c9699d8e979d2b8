package fxchain

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/gogpu/fxchain/device"
	"github.com/gogpu/fxchain/internal/color"
)

// ColorspaceConversionEffect converts linear RGB from the "source_space"
// primaries to the "destination_space" primaries. It is only meaningful in
// linear light; the chain never inserts one anywhere else.
//
// The 3x3 matrix is constant for a given pair of spaces and is baked into
// the shader text instead of being sent as a uniform.
type ColorspaceConversionEffect struct {
	effectBase
}

func newColorspaceConversionEffect(dev device.Device) *ColorspaceConversionEffect {
	e := &ColorspaceConversionEffect{effectBase: newEffectBase(dev)}
	e.params.RegisterInt("source_space", int(ColorspaceSRGB))
	e.params.RegisterInt("destination_space", int(ColorspaceSRGB))
	return e
}

func (e *ColorspaceConversionEffect) EffectTypeID() string         { return "ColorspaceConversionEffect" }
func (e *ColorspaceConversionEffect) NeedsLinearLight() bool       { return false }
func (e *ColorspaceConversionEffect) NeedsSRGBPrimaries() bool     { return false }
func (e *ColorspaceConversionEffect) AlphaHandling() AlphaHandling { return DontCare }

// Spaces returns the source and destination colorspaces.
func (e *ColorspaceConversionEffect) Spaces() (src, dst Colorspace) {
	return Colorspace(e.params.Int("source_space")), Colorspace(e.params.Int("destination_space"))
}

func (e *ColorspaceConversionEffect) OutputFragmentShader(shaders fs.FS) (string, error) {
	src, dst := e.Spaces()
	sp, ok := src.primaries()
	if !ok {
		violation(ErrUnknownCurve, "colorspace conversion from %v", src)
	}
	dp, ok := dst.primaries()
	if !ok {
		violation(ErrUnknownCurve, "colorspace conversion to %v", dst)
	}

	body, err := readShader(shaders, "colorspace_conversion_effect.frag")
	if err != nil {
		return "", err
	}

	m := color.ConversionMatrix(sp, dp)

	// GLSL matrix constructors take columns; m is row-major.
	cols := make([]string, 0, 3)
	for c := 0; c < 3; c++ {
		cols = append(cols, fmt.Sprintf("%.8f, %.8f, %.8f", m[c], m[3+c], m[6+c]))
	}
	return "const mat3 PREFIX(conversion_matrix) = mat3(\n\t" +
		strings.Join(cols, ",\n\t") + ");\n\n" + body, nil
}
