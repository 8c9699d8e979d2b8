package fxchain

import (
	"io/fs"

	"github.com/gogpu/fxchain/device"
)

// SaturationEffect mixes each pixel with its Rec. 709 luminance. The
// "saturation" float is 0 for grayscale, 1 for unchanged, above 1 to
// oversaturate.
type SaturationEffect struct {
	effectBase
}

func newSaturationEffect(dev device.Device) *SaturationEffect {
	e := &SaturationEffect{effectBase: newEffectBase(dev)}
	e.params.RegisterFloat("saturation", 1)
	return e
}

func (e *SaturationEffect) EffectTypeID() string { return "SaturationEffect" }

func (e *SaturationEffect) OutputFragmentShader(shaders fs.FS) (string, error) {
	return readShader(shaders, "saturation_effect.frag")
}
