package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shadergraph/pkg/graph"
)

// inspectCommand creates the inspect command for examining a document.
func (c *CLI) inspectCommand() *cobra.Command {
	var nodes bool

	cmd := &cobra.Command{
		Use:   "inspect [graph.sed]",
		Short: "Show the contents of a graph document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0], nodes)
		},
	}

	cmd.Flags().BoolVar(&nodes, "nodes", false, "list every node with its links")
	return cmd
}

func (c *CLI) runInspect(input string, listNodes bool) error {
	ed, err := loadDocument(c, input)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(input))

	if textures := ed.Desc.ActiveTextures(); len(textures) > 0 {
		names := make([]string, len(textures))
		for i, slot := range textures {
			names[i] = ed.Desc.TextureName(slot)
		}
		printKeyValue("textures", strings.Join(names, ", "))
	}
	if outputs := ed.Desc.ActiveVertexOutputs(); len(outputs) > 0 {
		printKeyValue("vertex outputs", strings.Join(outputs, ", "))
	}
	if inputs := ed.Desc.ActiveVertexInputs(); len(inputs) > 0 {
		names := make([]string, len(inputs))
		for i, in := range inputs {
			names[i] = in.SystemName()
		}
		printKeyValue("vertex inputs", strings.Join(names, ", "))
	}

	for s := 0; s < graph.StageCount; s++ {
		stage := graph.Stage(s)
		g := ed.Graph(stage)
		printInfo("%s stage", stage)
		printStats(g.Len(), countLinks(g), false)
		if listNodes {
			for _, n := range g.Nodes() {
				printDetail("#%d %s at (%g, %g)", n.ID, n.Kind, n.Pos.X, n.Pos.Y)
				for pin, src := range n.In {
					if src != nil {
						printDetail("    pin %d <- #%d (%s)", pin, src.ID, src.Kind)
					}
				}
			}
		}
	}
	return nil
}

// countLinks counts installed links once each, from the consumer side.
func countLinks(g *graph.Graph) int {
	count := 0
	for _, n := range g.Nodes() {
		for _, src := range n.In {
			if src != nil {
				count++
			}
		}
	}
	return count
}
