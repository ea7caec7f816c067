package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shadergraph/pkg/dot"
	"github.com/matzehuels/shadergraph/pkg/graph"
)

// dotCommand creates the dot command rendering a document as a diagram.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "dot [graph.sed]",
		Short: "Render a graph document as a Graphviz diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDot(args[0], output, format, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input path with new extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, dot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include payload values and pin types in labels")
	return cmd
}

func (c *CLI) runDot(input, output, format string, detailed bool) error {
	ed, err := loadDocument(c, input)
	if err != nil {
		return err
	}

	src := dot.ToDOT(ed.Graph(graph.StageVertex), ed.Graph(graph.StageFragment),
		dot.Options{Detailed: detailed})

	var data []byte
	switch format {
	case "dot":
		data = []byte(src)
	case "svg":
		data, err = dot.RenderSVG(src)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want svg or dot)", format)
	}

	if output == "" {
		output = strings.TrimSuffix(input, ".sed") + "." + format
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	printSuccess("rendered %s", output)
	return nil
}
