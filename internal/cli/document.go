package cli

import (
	"fmt"
	"os"

	"github.com/matzehuels/shadergraph/pkg/editor"
)

// loadDocument reads a .sed file into a fresh editor session.
func loadDocument(c *CLI, path string) (*editor.Editor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	ed := editor.New(c.Logger)
	if err := ed.LoadBytes(data); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return ed, nil
}
