package codegen

import (
	"testing"

	"github.com/matzehuels/shadergraph/pkg/graph"
	"github.com/matzehuels/shadergraph/pkg/shader"
)

func newNode(g *graph.Graph, id int, kind graph.NodeKind) *graph.Node {
	n := graph.NewNode(kind)
	n.ID = id
	g.Add(n)
	return n
}

func TestStagePlaceholderOnly(t *testing.T) {
	desc := &shader.Desc{}
	g := graph.New(graph.StageFragment)
	newNode(g, 1, graph.KindFragmentOutput)

	got := string((&Generator{Desc: desc}).Stage(g))
	want := "$input \n" +
		"#include \"common.sh\"\n" +
		"void main() {\n" +
		"\tgl_FragColor = vec4(1, 0, 1, 1);\n" +
		"}\n"
	if got != want {
		t.Errorf("source mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestStageColorConst(t *testing.T) {
	desc := &shader.Desc{}
	g := graph.New(graph.StageFragment)
	out := newNode(g, 1, graph.KindFragmentOutput)
	c := newNode(g, 3, graph.KindColorConst)
	c.Color = [4]float32{1, 0, 0.5, 1}
	graph.Connect(c, 0, out, 0)

	got := string((&Generator{Desc: desc}).Stage(g))
	want := "$input \n" +
		"#include \"common.sh\"\n" +
		"void main() {\n" +
		"\tconst vec4 v3 = vec4(1.0, 0.0, 0.5, 1.0);\n" +
		"\tgl_FragColor = v3;\n" +
		"}\n"
	if got != want {
		t.Errorf("source mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestStageVertexMatrixMultiply(t *testing.T) {
	desc := &shader.Desc{}
	desc.VertexInputs[shader.InputPosition] = true
	desc.VertexOutputs[0] = "v_common"

	g := graph.New(graph.StageVertex)
	pos := newNode(g, 2, graph.KindPositionOutput)
	vp := newNode(g, 3, graph.KindBuiltinUniform)
	vp.Builtin = shader.BuiltinViewProjectionMatrix
	in := newNode(g, 4, graph.KindVertexInput)
	in.Input = shader.InputPosition
	mul := newNode(g, 5, graph.KindMultiply)
	graph.Connect(vp, 0, mul, 0)
	graph.Connect(in, 0, mul, 1)
	graph.Connect(mul, 0, pos, 0)

	got := string((&Generator{Desc: desc}).Stage(g))
	want := "$input a_position\n" +
		"$output v_common\n" +
		"#include \"common.sh\"\n" +
		"void main() {\n" +
		"\tvec4 v5 = mul(u_viewProj, a_position);\n" +
		"\tgl_Position = v5;\n" +
		"}\n"
	if got != want {
		t.Errorf("source mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestStageSampleAndUniform(t *testing.T) {
	desc := &shader.Desc{}
	desc.Textures[0] = "u_texColor"
	desc.VertexOutputs[0] = "v_texcoord0"

	g := graph.New(graph.StageFragment)
	out := newNode(g, 1, graph.KindFragmentOutput)
	fi := newNode(g, 2, graph.KindFragmentInput)
	sample := newNode(g, 3, graph.KindSample)
	uni := newNode(g, 4, graph.KindUniform)
	uni.UniformName = "u_tint"
	mul := newNode(g, 5, graph.KindMultiply)
	graph.Connect(fi, 0, sample, 0)
	graph.Connect(sample, 0, mul, 0)
	graph.Connect(uni, 0, mul, 1)
	graph.Connect(mul, 0, out, 0)

	got := string((&Generator{Desc: desc}).Stage(g))
	want := "$input v_texcoord0\n" +
		"#include \"common.sh\"\n" +
		"SAMPLER2D(u_texColor, 0);\n" +
		"uniform vec4 u_tint;\n" +
		"void main() {\n" +
		"\tvec4 v3 = texture2D(u_texColor, v_texcoord0);\n" +
		"\tvec4 v5 = v3 * u_tint;\n" +
		"\tgl_FragColor = v5;\n" +
		"}\n"
	if got != want {
		t.Errorf("source mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestStageVec4Merge(t *testing.T) {
	desc := &shader.Desc{}
	g := graph.New(graph.StageFragment)
	out := newNode(g, 1, graph.KindFragmentOutput)
	f := newNode(g, 2, graph.KindFloatConst)
	f.Value = 2
	merge := newNode(g, 3, graph.KindVec4Merge)
	graph.Connect(f, 0, merge, 1) // x component
	graph.Connect(merge, 0, out, 0)

	got := string((&Generator{Desc: desc}).Stage(g))
	want := "$input \n" +
		"#include \"common.sh\"\n" +
		"void main() {\n" +
		"\tvec4 v3 = vec4(0.0, 0.0, 0.0, 0.0);\n" +
		"\tv3.x = 2.0;\n" +
		"\tgl_FragColor = v3;\n" +
		"}\n"
	if got != want {
		t.Errorf("source mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestStageMix(t *testing.T) {
	desc := &shader.Desc{}
	g := graph.New(graph.StageFragment)
	out := newNode(g, 1, graph.KindFragmentOutput)
	a := newNode(g, 2, graph.KindColorConst)
	b := newNode(g, 3, graph.KindColorConst)
	b.Color = [4]float32{1, 1, 1, 1}
	weight := newNode(g, 4, graph.KindFloatConst)
	weight.Value = 0.25
	mix := newNode(g, 5, graph.KindMix)
	graph.Connect(a, 0, mix, 0)
	graph.Connect(b, 0, mix, 1)
	graph.Connect(weight, 0, mix, 2)
	graph.Connect(mix, 0, out, 0)

	got := string((&Generator{Desc: desc}).Stage(g))
	want := "$input \n" +
		"#include \"common.sh\"\n" +
		"void main() {\n" +
		"\tconst vec4 v2 = vec4(0.0, 0.0, 0.0, 0.0);\n" +
		"\tconst vec4 v3 = vec4(1.0, 1.0, 1.0, 1.0);\n" +
		"\tvec4 v5 = mix(v2, v3, 0.25);\n" +
		"\tgl_FragColor = v5;\n" +
		"}\n"
	if got != want {
		t.Errorf("source mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestStageIncompleteOperands(t *testing.T) {
	desc := &shader.Desc{}
	g := graph.New(graph.StageFragment)
	out := newNode(g, 1, graph.KindFragmentOutput)
	mul := newNode(g, 3, graph.KindMultiply)
	graph.Connect(mul, 0, out, 0)

	got := string((&Generator{Desc: desc}).Stage(g))
	want := "$input \n" +
		"#include \"common.sh\"\n" +
		"void main() {\n" +
		"\tfloat v3 = 0.0;\n" +
		"\tgl_FragColor = v3;\n" +
		"}\n"
	if got != want {
		t.Errorf("source mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{0.5, "0.5"},
		{2, "2.0"},
		{-3.25, "-3.25"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProgramDesc(t *testing.T) {
	desc := &shader.Desc{}
	desc.Textures[0] = "u_texColor"
	desc.Textures[1] = "u_texNormal"

	got := string((&Generator{Desc: desc}).ProgramDesc())
	want := "passes = {\"MAIN\"}\n" +
		"vs_combinations = {\"\"}\n" +
		"fs_combinations = {\"\"}\n" +
		"texture_slots = {\n" +
		"{ name = \"u_texColor\", uniform = \"u_texColor\" }, " +
		"{ name = \"u_texNormal\", uniform = \"u_texNormal\" }}\n"
	if got != want {
		t.Errorf("descriptor mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestProgramDescNoTextures(t *testing.T) {
	got := string((&Generator{Desc: &shader.Desc{}}).ProgramDesc())
	want := "passes = {\"MAIN\"}\n" +
		"vs_combinations = {\"\"}\n" +
		"fs_combinations = {\"\"}\n" +
		"texture_slots = {\n}\n"
	if got != want {
		t.Errorf("descriptor mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
