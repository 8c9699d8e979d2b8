package fxchain

import (
	"io/fs"

	"github.com/gogpu/fxchain/device"
)

// MirrorEffect flips the image horizontally.
type MirrorEffect struct {
	effectBase
}

func newMirrorEffect(dev device.Device) *MirrorEffect {
	return &MirrorEffect{effectBase: newEffectBase(dev)}
}

func (e *MirrorEffect) EffectTypeID() string         { return "MirrorEffect" }
func (e *MirrorEffect) NeedsLinearLight() bool       { return false }
func (e *MirrorEffect) NeedsSRGBPrimaries() bool     { return false }
func (e *MirrorEffect) AlphaHandling() AlphaHandling { return DontCare }

func (e *MirrorEffect) OutputFragmentShader(shaders fs.FS) (string, error) {
	return readShader(shaders, "mirror_effect.frag")
}
