package main

import (
	"errors"
	"fmt"
	"os"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/yum0e/kekkai/internal/agent"
	"github.com/yum0e/kekkai/internal/jj"
	"github.com/yum0e/kekkai/internal/ui"
	"github.com/yum0e/kekkai/internal/workspace"
)

// runAgent drives the full workspace lifecycle: resolve the root,
// provision the isolated workspace, run the agent inside it, then
// remove or keep the workspace based on the prompt.
func runAgent(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Help()
		return fmt.Errorf("workspace name is required")
	}
	name := args[0]

	agentFlag, _ := cmd.Flags().GetString("agent")
	configPath, _ := cmd.Flags().GetString("config")

	registry, err := agent.LoadRegistry(configPath)
	if err != nil {
		return err
	}
	kind := agentFlag
	if kind == "" {
		kind = registry.Default()
	}
	ag, err := registry.Lookup(kind)
	if err != nil {
		return err
	}

	client := jj.NewClient()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

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

	sess, err := workspace.Create(client, errOut, root, name, ag.Name)
	if errors.Is(err, jj.ErrWorkspaceExists) {
		return fmt.Errorf("workspace %q already exists; use 'kekkai list' to see existing workspaces", name)
	}
	if err != nil {
		return fmt.Errorf("creating workspace: %w", err)
	}

	code, runErr := agent.Run(ag, sess.Path, sess.ShimDir())
	if runErr != nil {
		// The workspace is fully built; report the launch failure and
		// fall through to the prompt so it is not leaked.
		ui.Errorf(errOut, "Error: %v", runErr)
	} else if code != 0 {
		fmt.Fprintf(errOut, "\n%s exited with code %d\n", capitalize(ag.Name), code)
	}

	if workspace.HasUncommittedChanges(client, sess.Path) {
		ui.Warnf(errOut, "\nWarning: this workspace has uncommitted changes!")
	}

	if promptKeep(cmd.InOrStdin(), out) {
		fmt.Fprintf(out, "Workspace kept at: %s\n", sess.Path)
		return nil
	}

	sess.Cleanup(client, errOut)
	fmt.Fprintf(out, "Workspace %q removed\n", name)
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
