// Package config loads project files describing a shader program's
// interface: texture slots, varyings, and the vertex attributes it consumes.
// A project file seeds the program descriptor of a fresh document.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/shadergraph/pkg/shader"
)

var (
	// ErrTooMany reports more entries than the descriptor has slots for.
	ErrTooMany = errors.New("too many entries")
	// ErrUnknownInput reports a vertex input name not in the attribute
	// table.
	ErrUnknownInput = errors.New("unknown vertex input")
)

// Project is a shader project file.
type Project struct {
	// Name identifies the project; informational only.
	Name string `toml:"name"`
	// Textures lists sampler uniform names in slot order.
	Textures []string `toml:"textures"`
	// VertexOutputs lists varying names in slot order.
	VertexOutputs []string `toml:"vertex_outputs"`
	// VertexInputs lists consumed vertex attributes by system or GUI name,
	// e.g. "a_position" or "Position".
	VertexInputs []string `toml:"vertex_inputs"`
}

// Load reads a project file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}
	return Parse(string(data))
}

// Parse reads a project from TOML source.
func Parse(data string) (*Project, error) {
	var p Project
	if _, err := toml.Decode(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}
	return &p, nil
}

// Apply writes the project's interface into desc, replacing its previous
// contents.
func (p *Project) Apply(desc *shader.Desc) error {
	if len(p.Textures) > shader.MaxTextures {
		return fmt.Errorf("%d textures: %w (max %d)", len(p.Textures), ErrTooMany, shader.MaxTextures)
	}
	if len(p.VertexOutputs) > shader.MaxVertexOutputs {
		return fmt.Errorf("%d vertex outputs: %w (max %d)", len(p.VertexOutputs), ErrTooMany, shader.MaxVertexOutputs)
	}

	desc.Reset()
	copy(desc.Textures[:], p.Textures)
	copy(desc.VertexOutputs[:], p.VertexOutputs)
	for _, name := range p.VertexInputs {
		in, ok := shader.VertexInputByName(name)
		if !ok {
			return fmt.Errorf("%q: %w", name, ErrUnknownInput)
		}
		desc.VertexInputs[in] = true
	}
	return nil
}
