// Package dot renders stage graphs as Graphviz diagrams, one cluster per
// stage, for inspecting a document without a node canvas.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/shadergraph/pkg/graph"
	"github.com/matzehuels/shadergraph/pkg/shader"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed includes payload values and pin types in node labels. When
	// false, only the kind and id are shown.
	Detailed bool
}

// ToDOT converts the two stage graphs to Graphviz DOT. Each stage becomes a
// cluster; edges run from producer to consumer and are labeled with the
// consumer pin index.
func ToDOT(vertex, fragment *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph shader {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	writeStage(&buf, vertex, opts)
	buf.WriteString("\n")
	writeStage(&buf, fragment, opts)

	buf.WriteString("}\n")
	return buf.String()
}

func writeStage(buf *bytes.Buffer, g *graph.Graph, opts Options) {
	fmt.Fprintf(buf, "  subgraph cluster_%s {\n", g.Stage())
	fmt.Fprintf(buf, "    label=%q;\n", g.Stage().String()+" stage")

	for _, n := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", nodeLabel(n, opts.Detailed))}
		if n.Kind.Terminal() {
			attrs = append(attrs, "fillcolor=lightgrey")
		}
		fmt.Fprintf(buf, "    %q [%s];\n", nodeID(g, n), strings.Join(attrs, ", "))
	}
	for _, n := range g.Nodes() {
		for pin, src := range n.In {
			if src == nil {
				continue
			}
			fmt.Fprintf(buf, "    %q -> %q [label=\"%d\"];\n",
				nodeID(g, src), nodeID(g, n), pin)
		}
	}
	buf.WriteString("  }\n")
}

// nodeID namespaces ids by stage so the two clusters cannot collide.
func nodeID(g *graph.Graph, n *graph.Node) string {
	return fmt.Sprintf("%s_%d", g.Stage(), n.ID)
}

func nodeLabel(n *graph.Node, detailed bool) string {
	base := fmt.Sprintf("%s #%d", n.Kind, n.ID)
	if !detailed {
		return base
	}

	var parts []string
	switch n.Kind {
	case graph.KindFloatConst:
		parts = append(parts, fmt.Sprintf("value: %g", n.Value))
	case graph.KindColorConst:
		parts = append(parts, fmt.Sprintf("color: %g %g %g %g",
			n.Color[0], n.Color[1], n.Color[2], n.Color[3]))
	case graph.KindSample:
		parts = append(parts, fmt.Sprintf("texture: %d", n.Texture))
	case graph.KindVertexInput:
		parts = append(parts, "attr: "+n.Input.SystemName())
	case graph.KindFragmentInput, graph.KindVertexOutput:
		parts = append(parts, fmt.Sprintf("varying: %d", n.OutputIndex))
	case graph.KindUniform:
		parts = append(parts, fmt.Sprintf("uniform: %s %s", n.UniformType, n.UniformName))
	case graph.KindBuiltinUniform:
		parts = append(parts, "builtin: "+n.Builtin.Name())
	}
	if len(n.Out) > 0 {
		if t := n.OutputType(0); t != shader.TypeNone {
			parts = append(parts, "type: "+t.String())
		}
	}
	if len(parts) == 0 {
		return base
	}
	return base + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
