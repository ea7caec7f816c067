package shader

// Fixed slot-table sizes. Save files and the generated program descriptor
// always carry the full tables; empty names mark unused slots.
const (
	// MaxTextures is the number of texture sampler slots per program.
	MaxTextures = 16
	// MaxVertexOutputs is the number of varying slots passed from the
	// vertex stage to the fragment stage.
	MaxVertexOutputs = 8
)

// Desc describes one shader program: which texture slots and varyings are
// named, and which standard vertex attributes are declared. Both stage graphs
// and the header emission step read it during code generation.
//
// The zero value is a valid empty descriptor.
type Desc struct {
	Textures      [MaxTextures]string
	VertexOutputs [MaxVertexOutputs]string
	VertexInputs  [VertexInputCount]bool
}

// TextureName returns the name of texture slot i, or "" for an unused slot.
func (d *Desc) TextureName(i int) string { return d.Textures[i] }

// VertexOutputName returns the name of varying slot i, or "" for an unused slot.
func (d *Desc) VertexOutputName(i int) string { return d.VertexOutputs[i] }

// ActiveTextures returns the indices of named texture slots in slot order.
func (d *Desc) ActiveTextures() []int {
	var out []int
	for i, name := range d.Textures {
		if name != "" {
			out = append(out, i)
		}
	}
	return out
}

// ActiveVertexOutputs returns the names of used varying slots in slot order.
func (d *Desc) ActiveVertexOutputs() []string {
	var out []string
	for _, name := range d.VertexOutputs {
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// ActiveVertexInputs returns the declared vertex attributes in table order.
func (d *Desc) ActiveVertexInputs() []VertexInput {
	var out []VertexInput
	for i := range d.VertexInputs {
		if d.VertexInputs[i] {
			out = append(out, VertexInput(i))
		}
	}
	return out
}

// Reset clears all slot tables and attribute flags.
func (d *Desc) Reset() {
	*d = Desc{}
}
