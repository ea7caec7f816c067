package graph

import (
	"testing"

	"github.com/matzehuels/shadergraph/pkg/shader"
)

func TestNewNodeSlotArity(t *testing.T) {
	tests := []struct {
		kind    NodeKind
		in, out int
	}{
		{KindVertexInput, 0, 1},
		{KindVertexOutput, 1, 0},
		{KindPositionOutput, 1, 0},
		{KindFragmentInput, 0, 1},
		{KindFragmentOutput, 1, 0},
		{KindFloatConst, 0, 1},
		{KindColorConst, 0, 1},
		{KindSample, 1, 1},
		{KindMix, 3, 1},
		{KindUniform, 0, 1},
		{KindVec4Merge, 5, 1},
		{KindMultiply, 2, 1},
		{KindBuiltinUniform, 0, 1},
	}
	for _, tt := range tests {
		n := NewNode(tt.kind)
		if len(n.In) != tt.in || len(n.Out) != tt.out {
			t.Errorf("%s: slots = %d/%d, want %d/%d", tt.kind, len(n.In), len(n.Out), tt.in, tt.out)
		}
	}
}

func TestNewNodeInvalidKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewNode(NodeKind(99))
}

func TestNewNodeUniformDefault(t *testing.T) {
	n := NewNode(KindUniform)
	if n.UniformType != shader.TypeVec4 {
		t.Errorf("UniformType = %v, want vec4", n.UniformType)
	}
}

func TestOutputType(t *testing.T) {
	floatConst := NewNode(KindFloatConst)
	colorConst := NewNode(KindColorConst)
	vi := NewNode(KindVertexInput)
	vi.Input = shader.InputNormal
	bu := NewNode(KindBuiltinUniform)
	bu.Builtin = shader.BuiltinModelMatrix
	uni := NewNode(KindUniform)
	uni.UniformType = shader.TypeVec2

	tests := []struct {
		name string
		node *Node
		want shader.ValueType
	}{
		{"float const", floatConst, shader.TypeFloat},
		{"color const", colorConst, shader.TypeVec4},
		{"vertex input", vi, shader.TypeVec3},
		{"fragment input", NewNode(KindFragmentInput), shader.TypeVec4},
		{"sample", NewNode(KindSample), shader.TypeVec4},
		{"vec4 merge", NewNode(KindVec4Merge), shader.TypeVec4},
		{"builtin uniform", bu, shader.TypeMat4},
		{"uniform", uni, shader.TypeVec2},
		{"unconnected multiply", NewNode(KindMultiply), shader.TypeNone},
		{"unconnected mix", NewNode(KindMix), shader.TypeNone},
	}
	for _, tt := range tests {
		if got := tt.node.OutputType(0); got != tt.want {
			t.Errorf("%s: OutputType = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTypePropagation(t *testing.T) {
	// Multiply and mix take their type from the second input.
	m := NewNode(KindBuiltinUniform)
	m.Builtin = shader.BuiltinViewProjectionMatrix
	pos := NewNode(KindVertexInput)
	pos.Input = shader.InputPosition
	mul := NewNode(KindMultiply)
	Connect(m, 0, mul, 0)
	Connect(pos, 0, mul, 1)

	if got := mul.OutputType(0); got != shader.TypeVec4 {
		t.Errorf("multiply OutputType = %v, want vec4", got)
	}
	if got := mul.InputType(0); got != shader.TypeMat4 {
		t.Errorf("multiply InputType(0) = %v, want mat4", got)
	}

	mix := NewNode(KindMix)
	c := NewNode(KindColorConst)
	Connect(c, 0, mix, 1)
	if got := mix.OutputType(0); got != shader.TypeVec4 {
		t.Errorf("mix OutputType = %v, want vec4", got)
	}
}

func TestKindStageLegality(t *testing.T) {
	if KindVertexInput.LegalIn(StageFragment) {
		t.Error("vertex input legal in fragment stage")
	}
	if !KindFragmentOutput.LegalIn(StageFragment) {
		t.Error("fragment output illegal in fragment stage")
	}
	if KindFragmentOutput.LegalIn(StageVertex) {
		t.Error("fragment output legal in vertex stage")
	}
	for _, k := range Kinds(StageVertex) {
		if !k.LegalIn(StageVertex) {
			t.Errorf("Kinds(vertex) returned %s", k)
		}
	}
}
