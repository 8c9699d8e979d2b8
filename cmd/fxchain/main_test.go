package main

import (
	"bytes"
	"flag"
	"strings"
	"testing"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/fxchain"
	"github.com/gogpu/fxchain/backend"
)

func TestParseImageFormat(t *testing.T) {
	f, err := parseImageFormat("BGRA", "rec2020", "rec2020-12")
	if err != nil {
		t.Fatal(err)
	}
	want := fxchain.ImageFormat{
		PixelFormat: fxchain.FormatBGRA,
		Colorspace:  fxchain.ColorspaceRec2020,
		GammaCurve:  fxchain.GammaRec2020_12Bit,
	}
	if f != want {
		t.Errorf("parseImageFormat() = %+v, want %+v", f, want)
	}

	for _, bad := range [][3]string{
		{"yuv", "srgb", "srgb"},
		{"rgba", "adobe", "srgb"},
		{"rgba", "srgb", "pq"},
	} {
		if _, err := parseImageFormat(bad[0], bad[1], bad[2]); err == nil {
			t.Errorf("parseImageFormat(%q) succeeded", bad)
		}
	}
}

func TestParseEffectList(t *testing.T) {
	ids, err := parseEffectList("saturation, vignette,,mirror")
	if err != nil {
		t.Fatal(err)
	}
	want := []fxchain.EffectID{fxchain.EffectSaturation, fxchain.EffectVignette, fxchain.EffectMirror}
	if len(ids) != len(want) {
		t.Fatalf("parseEffectList() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %v, want %v", i, ids[i], want[i])
		}
	}
	if _, err := parseEffectList("blur"); err == nil {
		t.Error("unknown effect accepted")
	}
}

func TestEffectTitle(t *testing.T) {
	if got := effectTitle(fxchain.EffectLiftGammaGain); got != "Lift Gamma Gain" {
		t.Errorf("effectTitle() = %q", got)
	}
}

func TestParamFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var params paramFlags
	fs.Var(&params, "set", "")

	err := fs.Parse([]string{
		"-set", "saturation.saturation=0.5",
		"-set", "lift_gamma_gain.gain=1.2, 1, 0.9",
		"-set", "padding.width=1920",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(params) != 3 {
		t.Fatalf("parsed %d params, want 3", len(params))
	}
	if got := params[1].String(); got != "lift_gamma_gain.gain=1.2,1,0.9" {
		t.Errorf("String() = %q", got)
	}

	for _, bad := range []string{"saturation", "saturation.=1", "blur.radius=1", "vignette.center=a,b", "padding.border_color=1,2,3,4,5"} {
		var p paramFlags
		if err := p.Set(bad); err == nil {
			t.Errorf("Set(%q) succeeded", bad)
		}
	}
}

func TestBuildChain(t *testing.T) {
	b := backend.NewNullBackend()
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	var params paramFlags
	for _, s := range []string{"saturation.saturation=0.25", "padding.width=1920", "lift_gamma_gain.gain=2,2,2"} {
		if err := params.Set(s); err != nil {
			t.Fatal(err)
		}
	}

	in := fxchain.ImageFormat{Colorspace: fxchain.ColorspaceSRGB, GammaCurve: fxchain.GammaSRGB}
	ids := []fxchain.EffectID{fxchain.EffectSaturation, fxchain.EffectLiftGammaGain, fxchain.EffectPadding}

	chain, err := buildChain(b, 640, 480, in, in, ids, params, fxchain.WithOutputConversion())
	if err != nil {
		t.Fatal(err)
	}
	defer chain.Close()

	effects := chain.Effects()
	last := effects[len(effects)-1]
	if _, ok := last.(*fxchain.GammaCompressionEffect); !ok {
		t.Errorf("last effect = %T, want gamma compression back to sRGB", last)
	}
	if w, _ := chain.OutputSize(); w != 1920 {
		t.Errorf("output width = %d, want 1920", w)
	}
	for _, e := range effects {
		switch e := e.(type) {
		case *fxchain.SaturationEffect:
			if got := e.Params().Float("saturation"); got != 0.25 {
				t.Errorf("saturation = %v, want 0.25", got)
			}
		case *fxchain.LiftGammaGainEffect:
			if got := e.Params().Vec3("gain"); got != (f32.Vec3{2, 2, 2}) {
				t.Errorf("gain = %v", got)
			}
		}
	}
}

func TestBuildChainRejectsMissingEffect(t *testing.T) {
	b := backend.NewNullBackend()
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	var params paramFlags
	_ = params.Set("vignette.radius=0.5")
	_, err := buildChain(b, 8, 8, fxchain.ImageFormat{}, fxchain.ImageFormat{},
		[]fxchain.EffectID{fxchain.EffectMirror}, params)
	if err == nil || !strings.Contains(err.Error(), "not in chain") {
		t.Errorf("buildChain() error = %v, want effect not in chain", err)
	}
}

func TestBuildChainRejectsUnknownParam(t *testing.T) {
	b := backend.NewNullBackend()
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	var params paramFlags
	_ = params.Set("mirror.amount=1")
	_, err := buildChain(b, 8, 8, fxchain.ImageFormat{}, fxchain.ImageFormat{},
		[]fxchain.EffectID{fxchain.EffectMirror}, params)
	if err == nil {
		t.Error("unknown parameter accepted")
	}
}

func TestListEffects(t *testing.T) {
	var buf bytes.Buffer
	if err := listEffects(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"Lift Gamma Gain (lift_gamma_gain)",
		"compression_curve_tex",
		"inner_radius",
		"1280",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing lacks %q:\n%s", want, out)
		}
	}
}
