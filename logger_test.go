package fxchain

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/fxchain/device"
	"github.com/gogpu/fxchain/internal/gltest"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	// Default logger must be disabled at all levels.
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	SetLogger(custom)

	got := Logger()
	if got != custom {
		t.Error("Logger() did not return the custom logger set via SetLogger")
	}

	// Verify output is captured.
	got.Info("test message", "key", "value")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected log output to contain 'test message', got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	// First set a real logger.
	SetLogger(slog.Default())

	// Then set nil to restore silence.
	SetLogger(nil)

	l := Logger()
	if l != silent {
		t.Fatal("SetLogger(nil) should restore the silent logger")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestChainUsesPackageLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	chain := NewEffectChain(gltest.New(), 64, 64)
	chain.AddInput(ImageFormat{Colorspace: ColorspaceSRGB, GammaCurve: GammaSRGB})
	chain.AddEffect(EffectSaturation)

	if !strings.Contains(buf.String(), "inserted gamma expansion") {
		t.Errorf("expected gamma expansion to be logged, got: %s", buf.String())
	}
}

func TestWithLoggerOverridesPackageLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var global, local bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&global, &slog.HandlerOptions{Level: slog.LevelDebug})))
	l := slog.New(slog.NewTextHandler(&local, &slog.HandlerOptions{Level: slog.LevelDebug}))

	chain := NewEffectChain(gltest.New(), 64, 64, WithLogger(l))
	chain.AddInput(ImageFormat{Colorspace: ColorspaceSRGB, GammaCurve: GammaLinear})
	chain.AddEffect(EffectMirror)
	if err := chain.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	if global.Len() != 0 {
		t.Errorf("package logger received output: %s", global.String())
	}
	if !strings.Contains(local.String(), "program linked") {
		t.Errorf("chain logger missing link record, got: %s", local.String())
	}
}

func TestCompileFailureLogged(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	dev := gltest.New()
	dev.CompileErr[device.StageFragment] = errors.New("0:12: syntax error")

	chain := NewEffectChain(dev, 64, 64, WithLogger(l))
	chain.AddInput(ImageFormat{})
	if err := chain.Finalize(); err == nil {
		t.Fatal("Finalize() succeeded, want compile error")
	}
	if !strings.Contains(buf.String(), "level=ERROR") || !strings.Contains(buf.String(), "syntax error") {
		t.Errorf("compile failure not logged at error level: %s", buf.String())
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 100

	// Concurrent readers.
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := Logger()
			if l == nil {
				t.Error("Logger() returned nil during concurrent access")
			}
			// Exercise the logger; must not panic.
			l.Debug("concurrent read")
		}()
	}

	// Concurrent writers.
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}

	wg.Wait()
}

func BenchmarkLoggerLoad(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		l := Logger()
		_ = l
	}
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	// Benchmark the hot path: calling a log method on a disabled logger.
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
