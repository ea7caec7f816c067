// Package codegen turns stage graphs into bgfx-flavored GLSL source and the
// program descriptor that ties the stages together.
//
// Emission is demand driven: only nodes reachable from a terminal node
// contribute statements, walked depth first so every temporary is declared
// before use. Unconnected inputs produce placeholder literals (magenta for
// color-like sinks, typed zeros for operands), so the output is always
// syntactically valid source even for an incomplete graph.
package codegen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/shadergraph/pkg/graph"
	"github.com/matzehuels/shadergraph/pkg/shader"
)

// Generator produces shader source for one program described by Desc.
type Generator struct {
	Desc *shader.Desc
}

// Stage renders the complete source of one stage graph: the $input/$output
// header, the common include, sampler and uniform declarations, and the main
// body emitted from the graph's terminal nodes.
func (g *Generator) Stage(gr *graph.Graph) []byte {
	w := &stageWriter{desc: g.Desc, done: make(map[*graph.Node]bool)}

	w.header(gr.Stage())
	w.buf.WriteString("#include \"common.sh\"\n")

	for _, i := range g.Desc.ActiveTextures() {
		fmt.Fprintf(&w.buf, "SAMPLER2D(%s, %d);\n", g.Desc.TextureName(i), i)
	}
	for _, n := range gr.Nodes() {
		w.beforeMain(n)
	}

	w.buf.WriteString("void main() {\n")
	for _, n := range gr.Nodes() {
		if n.Kind.Terminal() {
			w.emit(n)
		}
	}
	w.buf.WriteString("}\n")

	return w.buf.Bytes()
}

// stageWriter carries per-stage emission state. done memoizes emitted nodes
// so a value feeding several consumers is declared exactly once.
type stageWriter struct {
	buf  bytes.Buffer
	desc *shader.Desc
	done map[*graph.Node]bool
}

func (w *stageWriter) header(stage graph.Stage) {
	if stage == graph.StageVertex {
		w.buf.WriteString("$input ")
		for i, in := range w.desc.ActiveVertexInputs() {
			if i > 0 {
				w.buf.WriteString(", ")
			}
			w.buf.WriteString(in.SystemName())
		}
		w.buf.WriteString("\n")
	}

	// The vertex stage declares the varyings as $output, the fragment stage
	// consumes the same list as $input.
	if stage == graph.StageVertex {
		w.buf.WriteString("$output ")
	} else {
		w.buf.WriteString("$input ")
	}
	w.buf.WriteString(strings.Join(w.desc.ActiveVertexOutputs(), ", "))
	w.buf.WriteString("\n")
}

// beforeMain emits declarations a node needs above main. Only user uniforms
// declare anything; builtins come from the engine's common include.
func (w *stageWriter) beforeMain(n *graph.Node) {
	if n.Kind != graph.KindUniform || n.UniformName == "" {
		return
	}
	fmt.Fprintf(&w.buf, "uniform %s %s;\n", n.UniformType.GLSLName(), n.UniformName)
}

// emit writes the statement(s) computing n, after recursively emitting the
// producers it references.
func (w *stageWriter) emit(n *graph.Node) {
	if w.done[n] {
		return
	}
	w.done[n] = true

	switch n.Kind {
	case graph.KindColorConst:
		fmt.Fprintf(&w.buf, "\tconst vec4 v%d = vec4(%s, %s, %s, %s);\n", n.ID,
			formatFloat(n.Color[0]), formatFloat(n.Color[1]),
			formatFloat(n.Color[2]), formatFloat(n.Color[3]))

	case graph.KindSample:
		if n.In[0] == nil {
			fmt.Fprintf(&w.buf, "\tvec4 v%d = vec4(1, 0, 1, 0);\n", n.ID)
			return
		}
		w.emit(n.In[0])
		fmt.Fprintf(&w.buf, "\tvec4 v%d = texture2D(%s, %s);\n", n.ID,
			w.desc.TextureName(n.Texture), w.ref(n.In[0]))

	case graph.KindMultiply:
		if n.In[0] == nil || n.In[1] == nil {
			typ := n.OutputType(0)
			fmt.Fprintf(&w.buf, "\t%s v%d = %s;\n", typ.GLSLName(), n.ID, zeroLiteral(typ))
			return
		}
		w.emit(n.In[0])
		w.emit(n.In[1])
		typ := n.InputType(1).GLSLName()
		if n.InputType(0).IsMatrix() {
			fmt.Fprintf(&w.buf, "\t%s v%d = mul(%s, %s);\n", typ, n.ID,
				w.ref(n.In[0]), w.ref(n.In[1]))
		} else {
			fmt.Fprintf(&w.buf, "\t%s v%d = %s * %s;\n", typ, n.ID,
				w.ref(n.In[0]), w.ref(n.In[1]))
		}

	case graph.KindMix:
		if n.In[0] == nil || n.In[1] == nil || n.In[2] == nil {
			typ := n.OutputType(0)
			fmt.Fprintf(&w.buf, "\t%s v%d = %s;\n", typ.GLSLName(), n.ID, zeroLiteral(typ))
			return
		}
		w.emit(n.In[0])
		w.emit(n.In[1])
		w.emit(n.In[2])
		fmt.Fprintf(&w.buf, "\t%s v%d = mix(%s, %s, %s);\n",
			n.OutputType(0).GLSLName(), n.ID,
			w.ref(n.In[0]), w.ref(n.In[1]), w.ref(n.In[2]))

	case graph.KindVec4Merge:
		fmt.Fprintf(&w.buf, "\tvec4 v%d = vec4(0.0, 0.0, 0.0, 0.0);\n", n.ID)
		components := [...]string{"xyz", "x", "y", "z", "w"}
		for pin, comp := range components {
			src := n.In[pin]
			if src == nil {
				continue
			}
			w.emit(src)
			fmt.Fprintf(&w.buf, "\tv%d.%s = %s;\n", n.ID, comp, w.ref(src))
		}

	case graph.KindVertexOutput:
		name := w.desc.VertexOutputName(n.OutputIndex)
		if n.In[0] == nil {
			fmt.Fprintf(&w.buf, "\t%s = vec4(1.0, 0.0, 1.0, 0.0);\n", name)
			return
		}
		w.emit(n.In[0])
		fmt.Fprintf(&w.buf, "\t%s = %s;\n", name, w.ref(n.In[0]))

	case graph.KindPositionOutput:
		if n.In[0] == nil {
			w.buf.WriteString("\tgl_Position = vec4(1, 0, 1, 1);\n")
			return
		}
		w.emit(n.In[0])
		fmt.Fprintf(&w.buf, "\tgl_Position = %s;\n", w.ref(n.In[0]))

	case graph.KindFragmentOutput:
		if n.In[0] == nil {
			w.buf.WriteString("\tgl_FragColor = vec4(1, 0, 1, 1);\n")
			return
		}
		w.emit(n.In[0])
		fmt.Fprintf(&w.buf, "\tgl_FragColor = %s;\n", w.ref(n.In[0]))

	case graph.KindVertexInput, graph.KindFragmentInput, graph.KindFloatConst,
		graph.KindUniform, graph.KindBuiltinUniform:
		// Pure references; they emit nothing and resolve in ref.
	}
}

// ref returns the expression other statements use to read n's output.
func (w *stageWriter) ref(n *graph.Node) string {
	switch n.Kind {
	case graph.KindFloatConst:
		return formatFloat(n.Value)
	case graph.KindVertexInput:
		return n.Input.SystemName()
	case graph.KindFragmentInput:
		return w.desc.VertexOutputName(n.OutputIndex)
	case graph.KindUniform:
		return n.UniformName
	case graph.KindBuiltinUniform:
		return n.Builtin.Name()
	}
	return "v" + strconv.Itoa(n.ID)
}

// formatFloat renders f compactly but always with a decimal point, so the
// literal parses as floating point in the shading language.
func formatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// zeroLiteral returns the zero value literal for t.
func zeroLiteral(t shader.ValueType) string {
	switch t {
	case shader.TypeVec2:
		return "vec2(0.0, 0.0)"
	case shader.TypeVec3:
		return "vec3(0.0, 0.0, 0.0)"
	case shader.TypeVec4:
		return "vec4(0.0, 0.0, 0.0, 0.0)"
	case shader.TypeMat3:
		return "mat3(0.0)"
	case shader.TypeMat4:
		return "mat4(0.0)"
	}
	return "0.0"
}
