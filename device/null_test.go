// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import "testing"

func TestNullHandlesDistinct(t *testing.T) {
	var n Null

	tex := n.CreateTexture1D([]float32{0, 1})
	vs, err := n.CompileShader(StageVertex, "void main() {}")
	if err != nil {
		t.Fatalf("CompileShader() error = %v", err)
	}
	fs, err := n.CompileShader(StageFragment, "void main() {}")
	if err != nil {
		t.Fatalf("CompileShader() error = %v", err)
	}
	prog, err := n.LinkProgram(vs, fs)
	if err != nil {
		t.Fatalf("LinkProgram() error = %v", err)
	}

	seen := map[uint32]bool{}
	for _, h := range []uint32{uint32(tex), uint32(vs), uint32(fs), uint32(prog)} {
		if h == 0 {
			t.Error("Null returned zero handle")
		}
		if seen[h] {
			t.Errorf("Null returned duplicate handle %d", h)
		}
		seen[h] = true
	}

	if err := n.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestShaderStageString(t *testing.T) {
	tests := []struct {
		stage ShaderStage
		want  string
	}{
		{StageVertex, "vertex"},
		{StageFragment, "fragment"},
		{ShaderStage(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("ShaderStage(%d).String() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}
