package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yum0e/kekkai/internal/jj"
	"github.com/yum0e/kekkai/internal/ui"
	"github.com/yum0e/kekkai/internal/workspace"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agent workspaces",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	client := jj.NewClient()

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	root, err := workspace.ResolveRoot(client, cwd)
	if errors.Is(err, jj.ErrNotRepo) {
		return fmt.Errorf("not in a jj repository")
	}
	if err != nil {
		return err
	}

	entries, err := workspace.List(client, root)
	if err != nil {
		return fmt.Errorf("listing workspaces: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No workspaces")
		return nil
	}

	tbl := ui.NewTable(out, "NAME", "AGENT", "CHANGE", "COMMIT", "SUMMARY")
	for _, e := range entries {
		tbl.Row(e.Name, e.Agent, e.Workspace.ChangeID, e.Workspace.CommitID, e.Workspace.Summary)
	}
	return tbl.Flush()
}
