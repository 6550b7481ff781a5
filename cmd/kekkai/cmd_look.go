package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yum0e/kekkai/internal/jj"
	"github.com/yum0e/kekkai/internal/workspace"
)

func newLookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "look <name>",
		Short: "Create a new revision from an agent workspace's tip",
		Args:  cobra.ExactArgs(1),
		RunE:  runLook,
	}
	return cmd
}

func runLook(cmd *cobra.Command, args []string) error {
	name := args[0]
	client := jj.NewClient()

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	// look deliberately does not follow the marker indirection: pulling
	// an agent's tip into another agent workspace is never wanted.
	root, err := client.Root(cwd)
	if errors.Is(err, jj.ErrNotRepo) {
		return fmt.Errorf("not in a jj repository")
	}
	if err != nil {
		return err
	}
	if err := workspace.EnsureRoot(root); err != nil {
		return fmt.Errorf("look %w", err)
	}

	entry, suggestions, err := workspace.Lookup(client, root, name)
	if errors.Is(err, workspace.ErrAgentNotFound) {
		if len(suggestions) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Did you mean: %s\n", strings.Join(suggestions, ", "))
		}
		return fmt.Errorf("agent workspace %q not found", name)
	}
	if err != nil {
		return err
	}

	if err := client.New(root, fmt.Sprintf("%q@", entry.ID)); err != nil {
		return fmt.Errorf("creating new revision: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created new revision from %q\n", name)
	return nil
}
