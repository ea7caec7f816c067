package codegen

import (
	"bytes"
	"fmt"
)

// ProgramDesc renders the program descriptor listing passes, stage
// combinations, and the texture slot table. Each texture slot reuses its
// name as the sampler uniform.
func (g *Generator) ProgramDesc() []byte {
	var buf bytes.Buffer

	buf.WriteString("passes = {\"MAIN\"}\n")
	buf.WriteString("vs_combinations = {\"\"}\n")
	buf.WriteString("fs_combinations = {\"\"}\n")
	buf.WriteString("texture_slots = {\n")

	first := true
	for _, i := range g.Desc.ActiveTextures() {
		if !first {
			buf.WriteString(", ")
		}
		first = false
		name := g.Desc.TextureName(i)
		fmt.Fprintf(&buf, "{ name = \"%s\", uniform = \"%s\" }", name, name)
	}
	buf.WriteString("}\n")

	return buf.Bytes()
}
