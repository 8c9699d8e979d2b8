package fxchain

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/fxchain/device"
	"github.com/gogpu/fxchain/internal/gltest"
)

// expectPanic runs fn and fails unless it panics with an error matching
// target.
func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %T(%v) is not an error", r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("panic %v does not wrap %v", err, target)
		}
	}()
	fn()
}

func TestCompileErrorUnwrap(t *testing.T) {
	driver := errors.New("0:3: 'foo' : undeclared identifier")
	err := error(&CompileError{Stage: device.StageFragment, Source: "void main() {}", Err: driver})

	if !errors.Is(err, ErrShaderCompile) {
		t.Error("CompileError does not match ErrShaderCompile")
	}
	if !errors.Is(err, driver) {
		t.Error("CompileError does not match the driver error")
	}
	if errors.Is(err, ErrProgramLink) {
		t.Error("CompileError matches ErrProgramLink")
	}
	if !strings.Contains(err.Error(), "fragment") || !strings.Contains(err.Error(), "undeclared") {
		t.Errorf("Error() = %q, want stage and driver log", err.Error())
	}

	var ce *CompileError
	if !errors.As(err, &ce) || ce.Source != "void main() {}" {
		t.Error("errors.As did not recover the source")
	}
}

func TestLinkErrorUnwrap(t *testing.T) {
	driver := errors.New("varying tc not written")
	err := error(&LinkError{Err: driver})

	if !errors.Is(err, ErrProgramLink) || !errors.Is(err, driver) {
		t.Errorf("LinkError %v does not unwrap to sentinel and driver error", err)
	}
}

func TestViolationWrapsSentinel(t *testing.T) {
	expectPanic(t, ErrUnknownEffect, func() {
		violation(ErrUnknownEffect, "%d", 42)
	})
}

func TestCheckError(t *testing.T) {
	dev := gltest.New()
	checkError(dev, "no error pending")

	driver := errors.New("GL_INVALID_OPERATION")
	dev.PendingErr = driver

	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ErrDevice) || !errors.Is(err, driver) {
			t.Fatalf("checkError panic = %v, want ErrDevice wrapping the driver error", err)
		}
		if dev.PendingErr != nil {
			t.Error("Err() did not clear the pending error")
		}
	}()
	checkError(dev, "bind")
	t.Fatal("checkError did not panic")
}
