package fxchain

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/fxchain/device"
)

// ParamType tags the kind of value a parameter slot holds.
type ParamType uint8

const (
	ParamInt ParamType = iota
	ParamFloat
	ParamVec2
	ParamVec3
	ParamVec4
	ParamTexture1D

	numParamTypes
)

// String returns the GLSL type used to declare a parameter of type t.
func (t ParamType) String() string {
	switch t {
	case ParamInt:
		return "int"
	case ParamFloat:
		return "float"
	case ParamVec2:
		return "vec2"
	case ParamVec3:
		return "vec3"
	case ParamVec4:
		return "vec4"
	case ParamTexture1D:
		return "sampler1D"
	default:
		return "unknown"
	}
}

// ParamKey names one registered parameter.
type ParamKey struct {
	Type ParamType
	Key  string
}

// slot is a tagged union holding one parameter value.
// Float uses v[0]; vectors use the first N components of v.
type slot struct {
	key string
	typ ParamType
	i   int
	v   f32.Vec4
	tex *texture1D
}

// texture1D is a lookup table uploaded lazily: values are re-sent to the
// device only after InvalidateTexture1D.
type texture1D struct {
	id     device.TextureID
	values []float32
	dirty  bool
}

// Params is an effect's registry of externally tunable parameters.
//
// The registry owns the storage for every value. Keys are unique per type;
// the same key may be registered once for each type. Registration happens
// while an effect is constructed. Setting an unregistered key reports false
// and changes nothing.
type Params struct {
	dev   device.Device
	slots []slot
	index [numParamTypes]map[string]int
}

// NewParams returns an empty registry whose texture parameters live on dev.
func NewParams(dev device.Device) *Params {
	return &Params{dev: dev}
}

func (p *Params) lookup(typ ParamType, key string) *slot {
	i, ok := p.index[typ][key]
	if !ok {
		return nil
	}
	return &p.slots[i]
}

func (p *Params) register(typ ParamType, key string) *slot {
	if _, ok := p.index[typ][key]; ok {
		violation(ErrDuplicateParam, "%s %q", typ, key)
	}
	if p.index[typ] == nil {
		p.index[typ] = make(map[string]int)
	}
	p.index[typ][key] = len(p.slots)
	p.slots = append(p.slots, slot{key: key, typ: typ})
	return &p.slots[len(p.slots)-1]
}

// RegisterInt adds an int parameter with initial value v.
// Panics with ErrDuplicateParam if key is already an int parameter.
func (p *Params) RegisterInt(key string, v int) {
	p.register(ParamInt, key).i = v
}

// RegisterFloat adds a float parameter with initial value v.
func (p *Params) RegisterFloat(key string, v float32) {
	p.register(ParamFloat, key).v[0] = v
}

// RegisterVec2 adds a vec2 parameter with initial value v.
func (p *Params) RegisterVec2(key string, v f32.Vec2) {
	copy(p.register(ParamVec2, key).v[:], v[:])
}

// RegisterVec3 adds a vec3 parameter with initial value v.
func (p *Params) RegisterVec3(key string, v f32.Vec3) {
	copy(p.register(ParamVec3, key).v[:], v[:])
}

// RegisterVec4 adds a vec4 parameter with initial value v.
func (p *Params) RegisterVec4(key string, v f32.Vec4) {
	p.register(ParamVec4, key).v = v
}

// RegisterTexture1D adds a 1-D lookup texture backed by values. A device
// texture of len(values) texels is allocated and filled immediately; the
// parameter starts clean.
//
// The registry keeps values: callers write new contents into the same slice
// and call InvalidateTexture1D to have them uploaded on the next SetGLState.
func (p *Params) RegisterTexture1D(key string, values []float32) {
	s := p.register(ParamTexture1D, key)
	id := p.dev.CreateTexture1D(values)
	checkError(p.dev, "create 1-D texture "+key)
	s.tex = &texture1D{id: id, values: values}
}

// InvalidateTexture1D marks a texture parameter for re-upload.
// Panics with ErrUnknownTexture if key was never registered.
func (p *Params) InvalidateTexture1D(key string) {
	s := p.lookup(ParamTexture1D, key)
	if s == nil {
		violation(ErrUnknownTexture, "%q", key)
	}
	s.tex.dirty = true
}

// SetInt sets an int parameter. It reports false if key is not registered.
func (p *Params) SetInt(key string, v int) bool {
	s := p.lookup(ParamInt, key)
	if s == nil {
		return false
	}
	s.i = v
	return true
}

// SetFloat sets a float parameter. It reports false if key is not registered.
func (p *Params) SetFloat(key string, v float32) bool {
	s := p.lookup(ParamFloat, key)
	if s == nil {
		return false
	}
	s.v[0] = v
	return true
}

// SetVec2 sets a vec2 parameter. It reports false if key is not registered.
func (p *Params) SetVec2(key string, v f32.Vec2) bool {
	s := p.lookup(ParamVec2, key)
	if s == nil {
		return false
	}
	copy(s.v[:], v[:])
	return true
}

// SetVec3 sets a vec3 parameter. It reports false if key is not registered.
func (p *Params) SetVec3(key string, v f32.Vec3) bool {
	s := p.lookup(ParamVec3, key)
	if s == nil {
		return false
	}
	copy(s.v[:], v[:])
	return true
}

// SetVec4 sets a vec4 parameter. It reports false if key is not registered.
func (p *Params) SetVec4(key string, v f32.Vec4) bool {
	s := p.lookup(ParamVec4, key)
	if s == nil {
		return false
	}
	s.v = v
	return true
}

// Int returns an int parameter, or 0 if key is not registered.
func (p *Params) Int(key string) int {
	if s := p.lookup(ParamInt, key); s != nil {
		return s.i
	}
	return 0
}

// Float returns a float parameter, or 0 if key is not registered.
func (p *Params) Float(key string) float32 {
	if s := p.lookup(ParamFloat, key); s != nil {
		return s.v[0]
	}
	return 0
}

// Vec2 returns a vec2 parameter, or the zero vector if key is not registered.
func (p *Params) Vec2(key string) f32.Vec2 {
	if s := p.lookup(ParamVec2, key); s != nil {
		return f32.Vec2{s.v[0], s.v[1]}
	}
	return f32.Vec2{}
}

// Vec3 returns a vec3 parameter, or the zero vector if key is not registered.
func (p *Params) Vec3(key string) f32.Vec3 {
	if s := p.lookup(ParamVec3, key); s != nil {
		return f32.Vec3{s.v[0], s.v[1], s.v[2]}
	}
	return f32.Vec3{}
}

// Vec4 returns a vec4 parameter, or the zero vector if key is not registered.
func (p *Params) Vec4(key string) f32.Vec4 {
	if s := p.lookup(ParamVec4, key); s != nil {
		return s.v
	}
	return f32.Vec4{}
}

// TextureDirty reports whether a texture parameter awaits re-upload.
func (p *Params) TextureDirty(key string) bool {
	if s := p.lookup(ParamTexture1D, key); s != nil {
		return s.tex.dirty
	}
	return false
}

// TextureID returns the device handle of a texture parameter, or 0.
func (p *Params) TextureID(key string) device.TextureID {
	if s := p.lookup(ParamTexture1D, key); s != nil {
		return s.tex.id
	}
	return 0
}

// Len returns the number of registered parameters.
func (p *Params) Len() int {
	return len(p.slots)
}

// sorted returns the slots ordered by key, ties broken by type.
// Generated shader text depends on this order being stable.
func (p *Params) sorted() []*slot {
	out := make([]*slot, len(p.slots))
	for i := range p.slots {
		out[i] = &p.slots[i]
	}
	slices.SortFunc(out, func(a, b *slot) int {
		if c := strings.Compare(a.key, b.key); c != 0 {
			return c
		}
		return cmp.Compare(a.typ, b.typ)
	})
	return out
}

// Keys lists every registered parameter in uniform declaration order.
func (p *Params) Keys() []ParamKey {
	sorted := p.sorted()
	keys := make([]ParamKey, len(sorted))
	for i, s := range sorted {
		keys[i] = ParamKey{Type: s.typ, Key: s.key}
	}
	return keys
}

// OutputConvenienceUniforms declares one uniform per registered parameter,
// named through the PREFIX() placeholder.
func (p *Params) OutputConvenienceUniforms() string {
	var b strings.Builder
	for _, s := range p.sorted() {
		fmt.Fprintf(&b, "uniform %s PREFIX(%s);\n", s.typ, s.key)
	}
	return b.String()
}

// SetGLState pushes every parameter value into program as <prefix>_<key>.
//
// Texture parameters are bound to unit *sampler, re-uploaded first if
// dirty, and *sampler is incremented once per texture.
func (p *Params) SetGLState(dev device.Device, program device.ProgramID, prefix string, sampler *int) {
	for _, s := range p.sorted() {
		name := uniformName(prefix, s.key)
		switch s.typ {
		case ParamInt:
			dev.Uniform1i(program, name, int32(s.i))
		case ParamFloat:
			dev.Uniform1f(program, name, s.v[0])
		case ParamVec2:
			dev.Uniform2f(program, name, f32.Vec2{s.v[0], s.v[1]})
		case ParamVec3:
			dev.Uniform3f(program, name, f32.Vec3{s.v[0], s.v[1], s.v[2]})
		case ParamVec4:
			dev.Uniform4f(program, name, s.v)
		case ParamTexture1D:
			dev.BindTexture1D(*sampler, s.tex.id)
			if s.tex.dirty {
				dev.UpdateTexture1D(s.tex.id, s.tex.values)
				s.tex.dirty = false
			}
			dev.Uniform1i(program, name, int32(*sampler))
			*sampler++
		}
	}
	checkError(dev, "set uniforms for "+prefix)
}

// release frees every device texture owned by the registry.
func (p *Params) release(dev device.Device) {
	for i := range p.slots {
		if t := p.slots[i].tex; t != nil && t.id != 0 {
			dev.DeleteTexture(t.id)
			t.id = 0
		}
	}
}

func uniformName(prefix, key string) string {
	return prefix + "_" + key
}
