package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "kekkai <name>",
		Short:   "Launch AI agents in isolated jj workspaces",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runAgent,
		// Runtime failures are not usage errors; keep them to one line.
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("agent", "a", "", "Agent to use (default: codex)")
	cmd.PersistentFlags().String("config", "", "Path to the agent registry config")

	cmd.AddCommand(
		newListCmd(),
		newLookCmd(),
	)

	return cmd
}
