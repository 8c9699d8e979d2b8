// Package gltest provides a recording device.Device for tests that need no
// GPU.
package gltest

import (
	"fmt"
	"slices"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/fxchain/device"
)

// Device records every call made through the device.Device interface.
//
// Failures are injected through the exported error fields: CompileErr fails
// CompileShader for one stage, LinkErr fails LinkProgram and PendingErr is
// returned once by the next Err call.
type Device struct {
	// Textures holds the last contents uploaded to each live texture.
	Textures map[device.TextureID][]float32

	// Uploads counts UpdateTexture1D calls per texture. The initial upload
	// done by CreateTexture1D is not counted.
	Uploads map[device.TextureID]int

	// Bindings maps texture units to the texture last bound there.
	Bindings map[int]device.TextureID

	// Uniforms maps uniform names to the last value set, as int32, float32,
	// f32.Vec2, f32.Vec3 or f32.Vec4.
	Uniforms map[string]any

	// Sources holds every compiled source per stage, in order.
	Sources map[device.ShaderStage][]string

	// Linked lists the shaders passed to each LinkProgram call.
	Linked [][]device.ShaderID

	// Current is the program passed to the last UseProgram call.
	Current device.ProgramID

	// DeletedTextures and DeletedPrograms list released handles.
	DeletedTextures []device.TextureID
	DeletedPrograms []device.ProgramID

	CompileErr map[device.ShaderStage]error
	LinkErr    error
	PendingErr error

	next uint32
}

var _ device.Device = (*Device)(nil)

// New returns an empty recording device.
func New() *Device {
	return &Device{
		Textures:   make(map[device.TextureID][]float32),
		Uploads:    make(map[device.TextureID]int),
		Bindings:   make(map[int]device.TextureID),
		Uniforms:   make(map[string]any),
		Sources:    make(map[device.ShaderStage][]string),
		CompileErr: make(map[device.ShaderStage]error),
	}
}

func (d *Device) alloc() uint32 {
	d.next++
	return d.next
}

func (d *Device) CreateTexture1D(values []float32) device.TextureID {
	id := device.TextureID(d.alloc())
	d.Textures[id] = slices.Clone(values)
	return id
}

func (d *Device) UpdateTexture1D(tex device.TextureID, values []float32) {
	if _, ok := d.Textures[tex]; !ok {
		d.fail("update of unknown texture %d", tex)
		return
	}
	d.Textures[tex] = slices.Clone(values)
	d.Uploads[tex]++
}

func (d *Device) BindTexture1D(unit int, tex device.TextureID) {
	d.Bindings[unit] = tex
}

func (d *Device) DeleteTexture(tex device.TextureID) {
	delete(d.Textures, tex)
	d.DeletedTextures = append(d.DeletedTextures, tex)
}

func (d *Device) CompileShader(stage device.ShaderStage, source string) (device.ShaderID, error) {
	d.Sources[stage] = append(d.Sources[stage], source)
	if err := d.CompileErr[stage]; err != nil {
		return 0, err
	}
	return device.ShaderID(d.alloc()), nil
}

func (d *Device) LinkProgram(shaders ...device.ShaderID) (device.ProgramID, error) {
	d.Linked = append(d.Linked, slices.Clone(shaders))
	if d.LinkErr != nil {
		return 0, d.LinkErr
	}
	return device.ProgramID(d.alloc()), nil
}

func (d *Device) UseProgram(program device.ProgramID) { d.Current = program }

func (d *Device) DeleteProgram(program device.ProgramID) {
	d.DeletedPrograms = append(d.DeletedPrograms, program)
}

func (d *Device) Uniform1i(_ device.ProgramID, name string, v int32)    { d.Uniforms[name] = v }
func (d *Device) Uniform1f(_ device.ProgramID, name string, v float32)  { d.Uniforms[name] = v }
func (d *Device) Uniform2f(_ device.ProgramID, name string, v f32.Vec2) { d.Uniforms[name] = v }
func (d *Device) Uniform3f(_ device.ProgramID, name string, v f32.Vec3) { d.Uniforms[name] = v }
func (d *Device) Uniform4f(_ device.ProgramID, name string, v f32.Vec4) { d.Uniforms[name] = v }

// Err returns and clears PendingErr.
func (d *Device) Err() error {
	err := d.PendingErr
	d.PendingErr = nil
	return err
}

func (d *Device) fail(format string, args ...any) {
	if d.PendingErr == nil {
		d.PendingErr = fmt.Errorf("gltest: "+format, args...)
	}
}

// TotalUploads returns the number of UpdateTexture1D calls on all textures.
func (d *Device) TotalUploads() int {
	n := 0
	for _, c := range d.Uploads {
		n += c
	}
	return n
}

// LastSource returns the most recent source compiled for stage, or "".
func (d *Device) LastSource(stage device.ShaderStage) string {
	src := d.Sources[stage]
	if len(src) == 0 {
		return ""
	}
	return src[len(src)-1]
}
