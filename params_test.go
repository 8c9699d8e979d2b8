package fxchain

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/fxchain/device"
	"github.com/gogpu/fxchain/internal/gltest"
)

func TestParamsRoundTrip(t *testing.T) {
	p := NewParams(gltest.New())
	p.RegisterInt("i", 1)
	p.RegisterFloat("f", 0.5)
	p.RegisterVec2("v2", f32.Vec2{1, 2})
	p.RegisterVec3("v3", f32.Vec3{1, 2, 3})
	p.RegisterVec4("v4", f32.Vec4{1, 2, 3, 4})

	if got := p.Int("i"); got != 1 {
		t.Errorf("initial Int = %d, want 1", got)
	}

	tests := []struct {
		name string
		set  func() bool
		get  func() any
		want any
	}{
		{"int", func() bool { return p.SetInt("i", -7) }, func() any { return p.Int("i") }, -7},
		{"float", func() bool { return p.SetFloat("f", 2.25) }, func() any { return p.Float("f") }, float32(2.25)},
		{"vec2", func() bool { return p.SetVec2("v2", f32.Vec2{3, 4}) }, func() any { return p.Vec2("v2") }, f32.Vec2{3, 4}},
		{"vec3", func() bool { return p.SetVec3("v3", f32.Vec3{5, 6, 7}) }, func() any { return p.Vec3("v3") }, f32.Vec3{5, 6, 7}},
		{"vec4", func() bool { return p.SetVec4("v4", f32.Vec4{8, 9, 10, 11}) }, func() any { return p.Vec4("v4") }, f32.Vec4{8, 9, 10, 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.set() {
				t.Fatal("set on a registered key returned false")
			}
			if got := tt.get(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParamsSetUnknownKey(t *testing.T) {
	p := NewParams(gltest.New())
	p.RegisterFloat("gain", 1)

	if p.SetFloat("missing", 3) {
		t.Error("SetFloat on unknown key returned true")
	}
	// Keys are per type: an int with the same name does not exist.
	if p.SetInt("gain", 3) {
		t.Error("SetInt on a float key returned true")
	}
	if p.SetVec3("gain", f32.Vec3{}) {
		t.Error("SetVec3 on a float key returned true")
	}
	if got := p.Float("gain"); got != 1 {
		t.Errorf("Float(gain) = %v after rejected sets, want 1", got)
	}
	if got := p.Vec2("missing"); got != (f32.Vec2{}) {
		t.Errorf("Vec2(missing) = %v, want zero", got)
	}
}

func TestParamsDuplicateRegistration(t *testing.T) {
	p := NewParams(gltest.New())
	p.RegisterInt("n", 0)

	expectPanic(t, ErrDuplicateParam, func() { p.RegisterInt("n", 1) })

	// The same key with another type is a distinct parameter.
	p.RegisterFloat("n", 2)
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestParamsOutputConvenienceUniforms(t *testing.T) {
	p := NewParams(gltest.New())
	p.RegisterVec3("zeta", f32.Vec3{})
	p.RegisterFloat("alpha", 0)
	p.RegisterTexture1D("lut", make([]float32, 4))
	p.RegisterInt("alpha", 0)
	p.RegisterVec4("mid", f32.Vec4{})

	want := "uniform int PREFIX(alpha);\n" +
		"uniform float PREFIX(alpha);\n" +
		"uniform sampler1D PREFIX(lut);\n" +
		"uniform vec4 PREFIX(mid);\n" +
		"uniform vec3 PREFIX(zeta);\n"
	if got := p.OutputConvenienceUniforms(); got != want {
		t.Errorf("OutputConvenienceUniforms() =\n%s\nwant\n%s", got, want)
	}

	keys := p.Keys()
	if len(keys) != 5 || keys[0] != (ParamKey{ParamInt, "alpha"}) || keys[4] != (ParamKey{ParamVec3, "zeta"}) {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestParamsSetGLState(t *testing.T) {
	dev := gltest.New()
	p := NewParams(dev)
	p.RegisterInt("count", 3)
	p.RegisterFloat("amount", 0.25)
	p.RegisterVec2("center", f32.Vec2{0.5, 0.5})
	p.RegisterTexture1D("a_lut", []float32{0, 1})
	p.RegisterTexture1D("b_lut", []float32{1, 0})

	sampler := 2
	p.SetGLState(dev, 1, "eff3", &sampler)

	if sampler != 4 {
		t.Errorf("sampler = %d, want 4", sampler)
	}
	want := map[string]any{
		"eff3_count":  int32(3),
		"eff3_amount": float32(0.25),
		"eff3_center": f32.Vec2{0.5, 0.5},
		"eff3_a_lut":  int32(2),
		"eff3_b_lut":  int32(3),
	}
	for name, v := range want {
		if got := dev.Uniforms[name]; got != v {
			t.Errorf("uniform %s = %v, want %v", name, got, v)
		}
	}
	if dev.Bindings[2] != p.TextureID("a_lut") || dev.Bindings[3] != p.TextureID("b_lut") {
		t.Errorf("bindings = %v", dev.Bindings)
	}
}

func TestParamsTextureDirtyFlag(t *testing.T) {
	dev := gltest.New()
	p := NewParams(dev)
	values := []float32{0, 0.5, 1}
	p.RegisterTexture1D("lut", values)
	id := p.TextureID("lut")

	if id == 0 {
		t.Fatal("texture was not created")
	}
	if p.TextureDirty("lut") {
		t.Error("texture dirty right after registration")
	}

	push := func() {
		sampler := 0
		p.SetGLState(dev, 1, "eff0", &sampler)
	}

	push()
	push()
	if n := dev.Uploads[id]; n != 0 {
		t.Fatalf("uploads = %d before invalidation, want 0", n)
	}

	values[1] = 0.25
	p.InvalidateTexture1D("lut")
	if !p.TextureDirty("lut") {
		t.Error("texture not dirty after invalidation")
	}
	push()
	push()
	if n := dev.Uploads[id]; n != 1 {
		t.Errorf("uploads = %d after one invalidation, want 1", n)
	}
	if got := dev.Textures[id][1]; got != 0.25 {
		t.Errorf("uploaded texel = %v, want 0.25", got)
	}
	if p.TextureDirty("lut") {
		t.Error("texture still dirty after upload")
	}
}

func TestParamsInvalidateUnknownTexture(t *testing.T) {
	p := NewParams(gltest.New())
	p.RegisterFloat("lut", 0)
	expectPanic(t, ErrUnknownTexture, func() { p.InvalidateTexture1D("lut") })
}

func TestParamsRelease(t *testing.T) {
	dev := gltest.New()
	p := NewParams(dev)
	p.RegisterTexture1D("lut", []float32{0})
	id := p.TextureID("lut")

	p.release(dev)
	p.release(dev)

	if len(dev.DeletedTextures) != 1 || dev.DeletedTextures[0] != id {
		t.Errorf("deleted = %v, want [%d]", dev.DeletedTextures, id)
	}
}

func TestParamsDeviceErrorIsFatal(t *testing.T) {
	dev := gltest.New()
	p := NewParams(dev)
	p.RegisterFloat("x", 1)
	dev.PendingErr = errors.New("GL_OUT_OF_MEMORY")

	expectPanic(t, ErrDevice, func() {
		sampler := 0
		p.SetGLState(dev, device.ProgramID(1), "eff0", &sampler)
	})
}

func TestParamTypeString(t *testing.T) {
	var names []string
	for typ := ParamInt; typ < numParamTypes; typ++ {
		names = append(names, typ.String())
	}
	if got := strings.Join(names, " "); got != "int float vec2 vec3 vec4 sampler1D" {
		t.Errorf("ParamType names = %q", got)
	}
	if got := numParamTypes.String(); got != "unknown" {
		t.Errorf("out of range ParamType = %q", got)
	}
}

func BenchmarkParamsSetGLState(b *testing.B) {
	dev := &device.Null{}
	p := NewParams(dev)
	for _, k := range []string{"a", "b", "c", "d", "e", "f"} {
		p.RegisterFloat(k, 1)
	}
	p.RegisterVec3("lift", f32.Vec3{})
	b.ReportAllocs()
	for b.Loop() {
		sampler := 0
		p.SetGLState(dev, 1, "eff0", &sampler)
	}
}
