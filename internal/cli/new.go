package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shadergraph/pkg/config"
	"github.com/matzehuels/shadergraph/pkg/editor"
)

// newCommand creates the new command for starting a graph document.
func (c *CLI) newCommand() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "new [output.sed]",
		Short: "Create a fresh graph document",
		Long: `Create a fresh graph document.

The document starts with the two mandatory sink nodes: a fragment color
output and a vertex position output. Pass --project to seed the texture
slots, varyings, and vertex inputs from a TOML project file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNew(args[0], projectPath)
		},
	}

	cmd.Flags().StringVarP(&projectPath, "project", "p", "", "TOML project file seeding the program descriptor")
	return cmd
}

func (c *CLI) runNew(output, projectPath string) error {
	ed := editor.New(c.Logger)

	if projectPath != "" {
		project, err := config.Load(projectPath)
		if err != nil {
			return err
		}
		if err := project.Apply(&ed.Desc); err != nil {
			return fmt.Errorf("applying project %s: %w", projectPath, err)
		}
		printInfo("seeded descriptor from %s", projectPath)
	}

	if err := os.WriteFile(output, ed.SaveBytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	printSuccess("created %s", output)
	printNextStep("compile it", appName+" generate "+output)
	return nil
}
