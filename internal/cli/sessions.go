package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shadergraph/pkg/session"
)

// sessionsCommand groups the snapshot subcommands.
func (c *CLI) sessionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage saved graph snapshots",
		Long: `Manage saved graph snapshots.

Snapshots stash the full graph document under a name without touching the
project's shader files. They live in the user config directory.`,
	}

	cmd.AddCommand(c.sessionsSaveCommand())
	cmd.AddCommand(c.sessionsListCommand())
	cmd.AddCommand(c.sessionsRestoreCommand())
	cmd.AddCommand(c.sessionsDeleteCommand())
	return cmd
}

func (c *CLI) sessionsSaveCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save [graph.sed]",
		Short: "Save a document as a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSessionsSave(cmd.Context(), args[0], name)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "snapshot name (default: input path)")
	return cmd
}

func (c *CLI) runSessionsSave(ctx context.Context, input, name string) error {
	// Loading validates the document before it is stashed.
	if _, err := loadDocument(c, input); err != nil {
		return err
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	if name == "" {
		name = input
	}

	store, err := session.NewFileStore("")
	if err != nil {
		return err
	}
	defer store.Close()

	snap := session.New(name, data)
	if err := store.Put(ctx, snap); err != nil {
		return err
	}
	printSuccess("saved snapshot %q", name)
	printDetail("id: %s", snap.ID)
	return nil
}

func (c *CLI) sessionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSessionsList(cmd.Context())
		},
	}
}

func (c *CLI) runSessionsList(ctx context.Context) error {
	store, err := session.NewFileStore("")
	if err != nil {
		return err
	}
	defer store.Close()

	snaps, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		printInfo("no snapshots")
		return nil
	}
	for _, snap := range snaps {
		printKeyValue(snap.SavedAt.Format("2006-01-02 15:04"), snap.Name)
		printDetail("id: %s", snap.ID)
	}
	return nil
}

func (c *CLI) sessionsRestoreCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "restore [id]",
		Short: "Write a snapshot back to a document file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSessionsRestore(cmd.Context(), args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: restored.sed)")
	return cmd
}

func (c *CLI) runSessionsRestore(ctx context.Context, idStr, output string) error {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return fmt.Errorf("parsing snapshot id: %w", err)
	}

	store, err := session.NewFileStore("")
	if err != nil {
		return err
	}
	defer store.Close()

	snap, err := store.Get(ctx, id)
	if err != nil {
		return err
	}
	if output == "" {
		output = "restored.sed"
	}
	if err := os.WriteFile(output, snap.Data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	printSuccess("restored %q", snap.Name)
	printFile(output)
	return nil
}

func (c *CLI) sessionsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parsing snapshot id: %w", err)
			}
			store, err := session.NewFileStore("")
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Delete(cmd.Context(), id); err != nil {
				return err
			}
			printWarning("deleted snapshot %s", id)
			return nil
		},
	}
}
