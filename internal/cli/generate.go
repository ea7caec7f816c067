package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shadergraph/pkg/cache"
	"github.com/matzehuels/shadergraph/pkg/graph"
)

// artifactTTL bounds how long generated artifacts stay cached. Keys are
// content addressed, so this only limits disk growth.
const artifactTTL = 30 * 24 * time.Hour

// generateCommand creates the generate command compiling a document to
// shader source.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "generate [graph.sed]",
		Short: "Compile a graph document to shader source",
		Long: `Compile a graph document to shader source.

Three files are written next to the output base path: the vertex stage
source (_vs.sc), the fragment stage source (_fs.sc), and the program
descriptor (.shd). Results are cached by document content, so regenerating
an unchanged document is free.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: input path without extension)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, input, output string, noCache bool) error {
	ctx = withLogger(ctx, c.Logger)
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	docHash := cache.Hash(data)

	ed, err := loadDocument(c, input)
	if err != nil {
		return err
	}

	if output == "" {
		output = strings.TrimSuffix(input, ".sed")
	}

	store := newCache(noCache)
	defer store.Close()

	artifacts := []struct {
		kind   string
		path   string
		render func() []byte
	}{
		{"vs", output + "_vs.sc", ed.VertexSource},
		{"fs", output + "_fs.sc", ed.FragmentSource},
		{"shd", output + ".shd", ed.ProgramDesc},
	}

	cachedCount := 0
	for _, a := range artifacts {
		key := cache.ArtifactKey(docHash, a.kind)
		src, hit, err := store.Get(ctx, key)
		if err != nil {
			logger.Warn("cache read failed", "kind", a.kind, "err", err)
			hit = false
		}
		if !hit {
			src = a.render()
			if err := store.Set(ctx, key, src, artifactTTL); err != nil {
				logger.Warn("cache write failed", "kind", a.kind, "err", err)
			}
		} else {
			cachedCount++
		}
		if err := os.WriteFile(a.path, src, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", a.path, err)
		}
		printFile(a.path)
	}

	vertex := ed.Graph(graph.StageVertex)
	fragment := ed.Graph(graph.StageFragment)
	printStats(vertex.Len()+fragment.Len(), countLinks(vertex)+countLinks(fragment),
		cachedCount == len(artifacts))
	prog.done(fmt.Sprintf("Generated %d artifacts", len(artifacts)))
	return nil
}
