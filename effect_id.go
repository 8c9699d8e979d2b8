package fxchain

import (
	"github.com/gogpu/fxchain/device"
)

// EffectID selects a concrete effect type for EffectChain.AddEffect.
// The set is closed; values outside it are a programming error.
type EffectID int

const (
	// EffectGammaExpansion converts a gamma-encoded signal to linear light.
	EffectGammaExpansion EffectID = iota

	// EffectGammaCompression encodes linear light with a gamma curve.
	EffectGammaCompression

	// EffectColorspaceConversion converts linear RGB between primaries.
	EffectColorspaceConversion

	// EffectSaturation scales color saturation around Rec. 709 luminance.
	EffectSaturation

	// EffectLiftGammaGain is the classic three-way color corrector.
	EffectLiftGammaGain

	// EffectVignette darkens the image towards the edges.
	EffectVignette

	// EffectPadding places the image on a larger canvas.
	EffectPadding

	// EffectMirror flips the image horizontally.
	EffectMirror
)

var effectNames = [...]string{
	EffectGammaExpansion:       "gamma_expansion",
	EffectGammaCompression:     "gamma_compression",
	EffectColorspaceConversion: "colorspace_conversion",
	EffectSaturation:           "saturation",
	EffectLiftGammaGain:        "lift_gamma_gain",
	EffectVignette:             "vignette",
	EffectPadding:              "padding",
	EffectMirror:               "mirror",
}

// String returns the identifier's name, e.g. "lift_gamma_gain".
func (id EffectID) String() string {
	if id < 0 || int(id) >= len(effectNames) {
		return "unknown"
	}
	return effectNames[id]
}

// EffectIDs returns every known identifier in declaration order.
func EffectIDs() []EffectID {
	ids := make([]EffectID, len(effectNames))
	for i := range effectNames {
		ids[i] = EffectID(i)
	}
	return ids
}

// ParseEffectID resolves a name produced by EffectID.String.
func ParseEffectID(name string) (EffectID, bool) {
	for i, n := range effectNames {
		if n == name {
			return EffectID(i), true
		}
	}
	return 0, false
}

// instantiateEffect maps an identifier to a new effect living on dev.
func instantiateEffect(id EffectID, dev device.Device) Effect {
	switch id {
	case EffectGammaExpansion:
		return newGammaExpansionEffect(dev)
	case EffectGammaCompression:
		return newGammaCompressionEffect(dev)
	case EffectColorspaceConversion:
		return newColorspaceConversionEffect(dev)
	case EffectSaturation:
		return newSaturationEffect(dev)
	case EffectLiftGammaGain:
		return newLiftGammaGainEffect(dev)
	case EffectVignette:
		return newVignetteEffect(dev)
	case EffectPadding:
		return newPaddingEffect(dev)
	case EffectMirror:
		return newMirrorEffect(dev)
	}
	violation(ErrUnknownEffect, "%d", int(id))
	return nil
}
