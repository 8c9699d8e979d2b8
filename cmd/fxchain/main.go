// Command fxchain assembles an effect chain from flags, prints the fused
// fragment shader and, on a GL-capable backend, renders an image through it.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strings"

	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/fxchain"
	"github.com/gogpu/fxchain/backend"
)

func init() {
	// GL contexts are bound to the OS thread that created them.
	runtime.LockOSThread()
}

func main() {
	var (
		list     = flag.Bool("list", false, "list effects and their parameters, then exit")
		effects  = flag.String("effects", "", "comma-separated effects, e.g. saturation,vignette")
		width    = flag.Int("width", 1280, "input width (ignored with -input)")
		height   = flag.Int("height", 720, "input height (ignored with -input)")
		inPixels = flag.String("in-format", "rgba", "input pixel format: rgba, bgra, grayscale")
		inSpace  = flag.String("in-space", "srgb", "input colorspace: srgb, rec709, rec601-525, rec601-625, rec2020")
		inGamma  = flag.String("in-gamma", "srgb", "input gamma curve: linear, srgb, rec709, rec601, rec2020-10, rec2020-12")
		outSpace = flag.String("out-space", "", "output colorspace (default: input colorspace)")
		outGamma = flag.String("out-gamma", "", "output gamma curve (default: input gamma curve)")
		convert  = flag.Bool("convert-output", true, "append conversions to the output format")
		dump     = flag.Bool("dump", false, "write the generated fragment shader to stdout")
		backName = flag.String("backend", backend.BackendNull, "device backend: "+strings.Join(backend.Available(), ", "))
		input    = flag.String("input", "", "image to process (requires a rendering backend)")
		output   = flag.String("output", "out.png", "output PNG when -input is given")
		verbose  = flag.Bool("v", false, "log chain assembly to stderr")
		params   paramFlags
	)
	flag.Var(&params, "set", "set a parameter, effect.key=v[,v...]; repeatable")
	flag.Parse()

	if *list {
		if err := listEffects(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *verbose {
		fxchain.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	in, err := parseImageFormat(*inPixels, *inSpace, *inGamma)
	if err != nil {
		log.Fatal(err)
	}
	out := in
	if *outSpace != "" {
		if out.Colorspace, err = parseColorspace(*outSpace); err != nil {
			log.Fatal(err)
		}
	}
	if *outGamma != "" {
		if out.GammaCurve, err = parseGammaCurve(*outGamma); err != nil {
			log.Fatal(err)
		}
	}
	ids, err := parseEffectList(*effects)
	if err != nil {
		log.Fatal(err)
	}

	var src image.Image
	if *input != "" {
		if src, err = loadImage(*input); err != nil {
			log.Fatalf("Failed to load: %v", err)
		}
		*width, *height = src.Bounds().Dx(), src.Bounds().Dy()
	}

	b, err := backend.Open(*backName)
	if err != nil {
		log.Fatalf("Backend %q: %v", *backName, err)
	}
	defer b.Close()

	var opts []fxchain.ChainOption
	if *convert {
		opts = append(opts, fxchain.WithOutputConversion())
	}
	if *dump {
		opts = append(opts, fxchain.WithShaderDump(os.Stdout))
	}

	chain, err := buildChain(b, *width, *height, in, out, ids, params, opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer chain.Close()

	if src == nil {
		w, h := chain.OutputSize()
		log.Printf("Chain of %d effects finalized on %s (%dx%d -> %dx%d)",
			len(chain.Effects()), b.Name(), *width, *height, w, h)
		return
	}

	r, ok := b.(backend.ImageRenderer)
	if !ok {
		log.Fatalf("Backend %q cannot render images", b.Name())
	}
	img, err := r.RenderImage(chain, src)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Result saved to %s (%dx%d)\n", *output, img.Bounds().Dx(), img.Bounds().Dy())
}

// buildChain assembles and finalizes a chain on the backend's device.
func buildChain(b backend.DeviceBackend, width, height int, in, out fxchain.ImageFormat,
	ids []fxchain.EffectID, params paramFlags, opts ...fxchain.ChainOption,
) (*fxchain.EffectChain, error) {
	chain := fxchain.NewEffectChain(b.Device(), width, height, opts...)
	chain.AddInput(in)

	added := make(map[fxchain.EffectID]fxchain.Effect)
	for _, id := range ids {
		e := chain.AddEffect(id)
		if _, ok := added[id]; !ok {
			added[id] = e
		}
	}
	for _, p := range params {
		e, ok := added[p.effect]
		if !ok {
			return nil, fmt.Errorf("-set %s: effect %s not in chain", p, p.effect)
		}
		if err := p.apply(e); err != nil {
			return nil, err
		}
	}
	chain.AddOutput(out)

	if err := chain.Finalize(); err != nil {
		return nil, err
	}
	return chain, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

// listEffects prints every effect with its parameters and defaults.
func listEffects(w io.Writer) error {
	b := backend.NewNullBackend()
	if err := b.Init(); err != nil {
		return fmt.Errorf("backend %q: %w", b.Name(), err)
	}
	defer b.Close()

	for _, id := range fxchain.EffectIDs() {
		chain := fxchain.NewEffectChain(b.Device(), 1, 1)
		chain.AddInput(fxchain.ImageFormat{})
		e := chain.AddEffect(id)

		fmt.Fprintf(w, "%s (%s)\n", effectTitle(id), id)
		for _, k := range e.Params().Keys() {
			fmt.Fprintf(w, "    %-10s %-22s %s\n", k.Type, k.Key, formatParam(e.Params(), k))
		}
		chain.Close()
	}
	return nil
}
