package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/math/f32"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/fxchain"
)

var (
	colorspaces = map[string]fxchain.Colorspace{
		"srgb":       fxchain.ColorspaceSRGB,
		"rec709":     fxchain.ColorspaceRec709,
		"rec601-525": fxchain.ColorspaceRec601_525,
		"rec601-625": fxchain.ColorspaceRec601_625,
		"rec2020":    fxchain.ColorspaceRec2020,
	}
	gammaCurves = map[string]fxchain.GammaCurve{
		"linear":     fxchain.GammaLinear,
		"srgb":       fxchain.GammaSRGB,
		"rec709":     fxchain.GammaRec709,
		"rec601":     fxchain.GammaRec601,
		"rec2020-10": fxchain.GammaRec2020_10Bit,
		"rec2020-12": fxchain.GammaRec2020_12Bit,
	}
	pixelFormats = map[string]fxchain.PixelFormat{
		"rgba":      fxchain.FormatRGBA,
		"bgra":      fxchain.FormatBGRA,
		"grayscale": fxchain.FormatGrayscale,
		"gray":      fxchain.FormatGrayscale,
	}
)

func parseColorspace(s string) (fxchain.Colorspace, error) {
	c, ok := colorspaces[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown colorspace %q", s)
	}
	return c, nil
}

func parseGammaCurve(s string) (fxchain.GammaCurve, error) {
	g, ok := gammaCurves[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown gamma curve %q", s)
	}
	return g, nil
}

func parseImageFormat(pixels, space, gamma string) (fxchain.ImageFormat, error) {
	var f fxchain.ImageFormat
	p, ok := pixelFormats[strings.ToLower(pixels)]
	if !ok {
		return f, fmt.Errorf("unknown pixel format %q", pixels)
	}
	c, err := parseColorspace(space)
	if err != nil {
		return f, err
	}
	g, err := parseGammaCurve(gamma)
	if err != nil {
		return f, err
	}
	return fxchain.ImageFormat{PixelFormat: p, Colorspace: c, GammaCurve: g}, nil
}

func parseEffectList(s string) ([]fxchain.EffectID, error) {
	var ids []fxchain.EffectID
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		id, ok := fxchain.ParseEffectID(name)
		if !ok {
			return nil, fmt.Errorf("unknown effect %q (see -list)", name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// effectTitle turns "lift_gamma_gain" into "Lift Gamma Gain".
func effectTitle(id fxchain.EffectID) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id.String(), "_", " "))
}

// param is one -set assignment.
type param struct {
	effect fxchain.EffectID
	key    string
	values []float32
}

func (p param) String() string {
	vals := make([]string, len(p.values))
	for i, v := range p.values {
		vals[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return fmt.Sprintf("%s.%s=%s", p.effect, p.key, strings.Join(vals, ","))
}

// apply sets the parameter on e, picking the type from the number of
// values. A single integral value falls back to an int parameter.
func (p param) apply(e fxchain.Effect) error {
	v := p.values
	var ok bool
	switch len(v) {
	case 1:
		ok = e.SetFloat(p.key, v[0])
		if !ok && v[0] == float32(math.Trunc(float64(v[0]))) {
			ok = e.SetInt(p.key, int(v[0]))
		}
	case 2:
		ok = e.SetVec2(p.key, f32.Vec2{v[0], v[1]})
	case 3:
		ok = e.SetVec3(p.key, f32.Vec3{v[0], v[1], v[2]})
	case 4:
		ok = e.SetVec4(p.key, f32.Vec4{v[0], v[1], v[2], v[3]})
	}
	if !ok {
		return fmt.Errorf("-set %s: %s has no %d-component parameter %q", p, e.EffectTypeID(), len(v), p.key)
	}
	return nil
}

// paramFlags collects repeated -set flags.
type paramFlags []param

func (f *paramFlags) String() string {
	parts := make([]string, len(*f))
	for i, p := range *f {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func (f *paramFlags) Set(s string) error {
	target, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("want effect.key=value, got %q", s)
	}
	name, key, ok := strings.Cut(target, ".")
	if !ok || key == "" {
		return fmt.Errorf("want effect.key=value, got %q", s)
	}
	id, ok := fxchain.ParseEffectID(name)
	if !ok {
		return fmt.Errorf("unknown effect %q", name)
	}

	fields := strings.Split(value, ",")
	if len(fields) > 4 {
		return fmt.Errorf("%q: at most 4 components", s)
	}
	p := param{effect: id, key: key}
	for _, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
		if err != nil {
			return fmt.Errorf("%q: %w", s, err)
		}
		p.values = append(p.values, float32(v))
	}
	*f = append(*f, p)
	return nil
}

// formatParam renders the current value of a parameter for -list.
func formatParam(p *fxchain.Params, k fxchain.ParamKey) string {
	switch k.Type {
	case fxchain.ParamInt:
		return strconv.Itoa(p.Int(k.Key))
	case fxchain.ParamFloat:
		return strconv.FormatFloat(float64(p.Float(k.Key)), 'g', -1, 32)
	case fxchain.ParamVec2:
		return fmt.Sprint(p.Vec2(k.Key))
	case fxchain.ParamVec3:
		return fmt.Sprint(p.Vec3(k.Key))
	case fxchain.ParamVec4:
		return fmt.Sprint(p.Vec4(k.Key))
	default:
		return "(lookup table)"
	}
}
