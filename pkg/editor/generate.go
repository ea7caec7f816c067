package editor

import (
	"fmt"
	"os"

	"github.com/matzehuels/shadergraph/pkg/codegen"
	"github.com/matzehuels/shadergraph/pkg/graph"
)

// VertexSource renders the vertex stage shader source.
func (e *Editor) VertexSource() []byte {
	gen := codegen.Generator{Desc: &e.Desc}
	return gen.Stage(e.graphs[graph.StageVertex])
}

// FragmentSource renders the fragment stage shader source.
func (e *Editor) FragmentSource() []byte {
	gen := codegen.Generator{Desc: &e.Desc}
	return gen.Stage(e.graphs[graph.StageFragment])
}

// ProgramDesc renders the program descriptor.
func (e *Editor) ProgramDesc() []byte {
	gen := codegen.Generator{Desc: &e.Desc}
	return gen.ProgramDesc()
}

// GenerateAll writes the three build products next to each other: the
// vertex and fragment stage sources and the program descriptor, derived
// from the base path without extension.
func (e *Editor) GenerateAll(base string) error {
	outputs := []struct {
		path string
		data []byte
	}{
		{base + "_vs.sc", e.VertexSource()},
		{base + "_fs.sc", e.FragmentSource()},
		{base + ".shd", e.ProgramDesc()},
	}
	for _, out := range outputs {
		if err := os.WriteFile(out.path, out.data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out.path, err)
		}
		e.logger.Info("generated", "path", out.path, "bytes", len(out.data))
	}
	return nil
}
