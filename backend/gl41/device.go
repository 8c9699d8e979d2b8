//go:build !nogl

package gl41

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/fxchain/device"
)

// Device implements device.Device on an OpenGL 4.1 core context.
//
// The context must be current on the calling OS thread for every call,
// including NewDevice. Uniforms are set with glProgramUniform, so they do
// not depend on the program bound by UseProgram.
type Device struct {
	locations map[uniformKey]int32
}

type uniformKey struct {
	program device.ProgramID
	name    string
}

var _ device.Device = (*Device)(nil)

// NewDevice returns a device for the current context. gl.Init must have
// been called.
func NewDevice() *Device {
	return &Device{locations: make(map[uniformKey]int32)}
}

// CreateTexture1D allocates an R16F 1-D texture with linear filtering.
func (d *Device) CreateTexture1D(values []float32) device.TextureID {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_1D, id)
	gl.TexParameteri(gl.TEXTURE_1D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_1D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_1D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexImage1D(gl.TEXTURE_1D, 0, gl.R16F, int32(len(values)), 0, gl.RED, gl.FLOAT, floatPtr(values))
	gl.BindTexture(gl.TEXTURE_1D, 0)
	return device.TextureID(id)
}

func (d *Device) UpdateTexture1D(tex device.TextureID, values []float32) {
	gl.BindTexture(gl.TEXTURE_1D, uint32(tex))
	gl.TexSubImage1D(gl.TEXTURE_1D, 0, 0, int32(len(values)), gl.RED, gl.FLOAT, floatPtr(values))
}

func (d *Device) BindTexture1D(unit int, tex device.TextureID) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_1D, uint32(tex))
}

func (d *Device) DeleteTexture(tex device.TextureID) {
	id := uint32(tex)
	gl.DeleteTextures(1, &id)
}

// CompileShader compiles a single shader. A failed shader object is
// deleted and its info log returned as the error.
func (d *Device) CompileShader(stage device.ShaderStage, source string) (device.ShaderID, error) {
	var kind uint32
	switch stage {
	case device.StageVertex:
		kind = gl.VERTEX_SHADER
	case device.StageFragment:
		kind = gl.FRAGMENT_SHADER
	default:
		return 0, fmt.Errorf("gl41: unsupported shader stage %v", stage)
	}

	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetShaderInfoLog(shader, logLen, nil, buf) })
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("gl41: %s shader: %s", stage, log)
	}
	return device.ShaderID(shader), nil
}

// LinkProgram links the shaders and deletes them; they are not reusable
// afterwards.
func (d *Device) LinkProgram(shaders ...device.ShaderID) (device.ProgramID, error) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, uint32(s))
	}
	gl.LinkProgram(program)
	for _, s := range shaders {
		gl.DetachShader(program, uint32(s))
		gl.DeleteShader(uint32(s))
	}

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetProgramInfoLog(program, logLen, nil, buf) })
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("gl41: link: %s", log)
	}
	return device.ProgramID(program), nil
}

func (d *Device) UseProgram(program device.ProgramID) {
	gl.UseProgram(uint32(program))
}

func (d *Device) DeleteProgram(program device.ProgramID) {
	gl.DeleteProgram(uint32(program))
	for k := range d.locations {
		if k.program == program {
			delete(d.locations, k)
		}
	}
}

// location resolves and caches a uniform location. Names the linker
// removed resolve to -1, which GL ignores.
func (d *Device) location(program device.ProgramID, name string) int32 {
	key := uniformKey{program, name}
	if loc, ok := d.locations[key]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00"))
	d.locations[key] = loc
	return loc
}

func (d *Device) Uniform1i(program device.ProgramID, name string, v int32) {
	if loc := d.location(program, name); loc >= 0 {
		gl.ProgramUniform1i(uint32(program), loc, v)
	}
}

func (d *Device) Uniform1f(program device.ProgramID, name string, v float32) {
	if loc := d.location(program, name); loc >= 0 {
		gl.ProgramUniform1f(uint32(program), loc, v)
	}
}

func (d *Device) Uniform2f(program device.ProgramID, name string, v f32.Vec2) {
	if loc := d.location(program, name); loc >= 0 {
		gl.ProgramUniform2f(uint32(program), loc, v[0], v[1])
	}
}

func (d *Device) Uniform3f(program device.ProgramID, name string, v f32.Vec3) {
	if loc := d.location(program, name); loc >= 0 {
		gl.ProgramUniform3f(uint32(program), loc, v[0], v[1], v[2])
	}
}

func (d *Device) Uniform4f(program device.ProgramID, name string, v f32.Vec4) {
	if loc := d.location(program, name); loc >= 0 {
		gl.ProgramUniform4f(uint32(program), loc, v[0], v[1], v[2], v[3])
	}
}

// Err drains glGetError and reports the first code, if any.
func (d *Device) Err() error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	for gl.GetError() != gl.NO_ERROR {
	}
	return &Error{Code: code}
}

func infoLog(n int32, get func(*uint8)) string {
	if n <= 0 {
		return "(no info log)"
	}
	buf := make([]uint8, n)
	get(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

func floatPtr(values []float32) unsafe.Pointer {
	if len(values) == 0 {
		return nil
	}
	return gl.Ptr(values)
}
