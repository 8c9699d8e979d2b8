package fxchain

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/fxchain/internal/color"
)

// Colorspace identifies a set of RGB primaries.
type Colorspace int

const (
	// ColorspaceSRGB is sRGB, which shares its primaries with Rec. 709.
	ColorspaceSRGB Colorspace = iota

	// ColorspaceRec601_525 is ITU-R BT.601 for 525-line (NTSC) systems.
	ColorspaceRec601_525

	// ColorspaceRec601_625 is ITU-R BT.601 for 625-line (PAL) systems.
	ColorspaceRec601_625

	// ColorspaceRec2020 is ITU-R BT.2020.
	ColorspaceRec2020
)

// ColorspaceRec709 has the same primaries as sRGB.
const ColorspaceRec709 = ColorspaceSRGB

// String returns the colorspace name.
func (c Colorspace) String() string {
	switch c {
	case ColorspaceSRGB:
		return "sRGB"
	case ColorspaceRec601_525:
		return "Rec601_525"
	case ColorspaceRec601_625:
		return "Rec601_625"
	case ColorspaceRec2020:
		return "Rec2020"
	default:
		return "Unknown"
	}
}

// primaries maps c to its gamut. ok is false for unknown values.
func (c Colorspace) primaries() (p color.Primaries, ok bool) {
	switch c {
	case ColorspaceSRGB:
		return color.Rec709Primaries, true
	case ColorspaceRec601_525:
		return color.Rec601_525Primaries, true
	case ColorspaceRec601_625:
		return color.Rec601_625Primaries, true
	case ColorspaceRec2020:
		return color.Rec2020Primaries, true
	default:
		return color.Primaries{}, false
	}
}

// GammaCurve identifies the transfer function a signal is encoded with.
type GammaCurve int

const (
	// GammaLinear is linear light.
	GammaLinear GammaCurve = iota

	// GammaSRGB is the sRGB transfer function.
	GammaSRGB

	// GammaRec709 is the Rec. 709 transfer function, also used by Rec. 601
	// and 10-bit Rec. 2020.
	GammaRec709

	// GammaRec2020_12Bit is the 12-bit Rec. 2020 transfer function.
	GammaRec2020_12Bit
)

// Aliases for curves identical to Rec. 709.
const (
	GammaRec601        = GammaRec709
	GammaRec2020_10Bit = GammaRec709
)

// String returns the curve name.
func (g GammaCurve) String() string {
	switch g {
	case GammaLinear:
		return "Linear"
	case GammaSRGB:
		return "sRGB"
	case GammaRec709:
		return "Rec709"
	case GammaRec2020_12Bit:
		return "Rec2020_12Bit"
	default:
		return "Unknown"
	}
}

// curve maps g to its transfer function. ok is false for GammaLinear and
// unknown values.
func (g GammaCurve) curve() (c color.Curve, ok bool) {
	switch g {
	case GammaSRGB:
		return color.SRGB, true
	case GammaRec709:
		return color.Rec709, true
	case GammaRec2020_12Bit:
		return color.Rec2020_12Bit, true
	default:
		return color.Curve{}, false
	}
}

// PixelFormat is the memory layout of input and output pixels.
type PixelFormat int

const (
	// FormatRGBA is 8-bit RGBA.
	FormatRGBA PixelFormat = iota

	// FormatBGRA is 8-bit BGRA.
	FormatBGRA

	// FormatGrayscale is a single 8-bit luminance channel.
	FormatGrayscale
)

// String returns the pixel format name.
func (f PixelFormat) String() string {
	switch f {
	case FormatRGBA:
		return "RGBA"
	case FormatBGRA:
		return "BGRA"
	case FormatGrayscale:
		return "Grayscale"
	default:
		return "Unknown"
	}
}

// TextureFormat returns the GPU texture format used to upload pixels of f.
func (f PixelFormat) TextureFormat() gputypes.TextureFormat {
	switch f {
	case FormatRGBA:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatBGRA:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatGrayscale:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// BytesPerPixel returns the size of one pixel of f.
func (f PixelFormat) BytesPerPixel() int {
	if f == FormatGrayscale {
		return 1
	}
	return 4
}

// ImageFormat describes how an image's samples are to be interpreted.
// It is a value type; the chain keeps its own copy.
type ImageFormat struct {
	PixelFormat PixelFormat
	Colorspace  Colorspace
	GammaCurve  GammaCurve
}

// AlphaHandling declares how an effect treats the alpha channel.
type AlphaHandling int

const (
	// InputAndOutputPremultiplied means the effect reads and writes
	// premultiplied alpha.
	InputAndOutputPremultiplied AlphaHandling = iota

	// InputPremultipliedKeepBlank is like InputAndOutputPremultiplied, but
	// the effect never turns fully opaque pixels into non-opaque ones.
	InputPremultipliedKeepBlank

	// OutputBlankAlpha means the effect ignores its input alpha and always
	// writes alpha = 1.
	OutputBlankAlpha

	// DontCare means the effect works equally on premultiplied and
	// postmultiplied input and preserves whichever it received.
	DontCare
)

// String returns the alpha handling name.
func (a AlphaHandling) String() string {
	switch a {
	case InputAndOutputPremultiplied:
		return "InputAndOutputPremultiplied"
	case InputPremultipliedKeepBlank:
		return "InputPremultipliedKeepBlank"
	case OutputBlankAlpha:
		return "OutputBlankAlpha"
	case DontCare:
		return "DontCare"
	default:
		return "Unknown"
	}
}
