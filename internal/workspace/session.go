package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yum0e/kekkai/internal/jj"
)

const (
	// sentinelDir mimics a git metadata directory inside the agent
	// workspace. Agents that probe for one stay scoped to the workspace
	// instead of initializing their own repository.
	sentinelDir = ".git"

	// shimBin is the directory prepended to the agent's PATH. It holds
	// the git shim and nothing else.
	shimBin = ".jj/.kekkai-bin"

	// probeFile is created and removed in the parent of root to verify
	// the sibling workspace can be written before jj mutates any state.
	probeFile = ".kekkai-write-test"
)

// shimScript makes any git invocation inside an agent workspace fail
// fast with a pointer at jj.
const shimScript = `#!/bin/sh
echo "git disabled for agents; use jj" >&2
exit 1
`

// Session is one provisioned agent workspace.
type Session struct {
	Root  string // true root workspace
	Name  string // user-chosen agent workspace name
	Agent string // agent kind recorded in the marker
	Path  string // sibling directory holding the workspace
	ID    string // jj workspace name
}

// ShimDir returns the directory the agent's PATH is prepended with.
func (s *Session) ShimDir() string {
	return filepath.Join(s.Path, shimBin)
}

// Create provisions an isolated agent workspace next to root: it
// verifies the parent directory is writable, registers the jj workspace
// at the sibling path, then installs the sentinel directory, the agent
// marker, and the git shim. A failure after registration tears the
// partial workspace down (reporting cleanup trouble on warn) before
// returning, so no half-built workspace survives.
func Create(client *jj.Client, warn io.Writer, root, name, agent string) (*Session, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := checkParentWritable(root); err != nil {
		return nil, err
	}

	s := &Session{
		Root:  root,
		Name:  name,
		Agent: agent,
		Path:  SiblingPath(root, name),
		ID:    ID(root, name),
	}

	// jj rejects duplicate workspace names, which is the only guard
	// against two invocations racing on the same name. Nothing was
	// created by this run yet, so there is nothing to roll back.
	if err := client.Add(root, s.Path, ""); err != nil {
		return nil, err
	}

	// Refresh stale working copies automatically, and run one status so
	// a watchman integration registers the new workspace. Both are
	// optimizations; failures are ignored.
	_ = client.ConfigSet(s.Path, "snapshot.auto-update-stale", "true")
	_, _ = client.Status(s.Path)

	if err := s.install(); err != nil {
		s.Cleanup(client, warn)
		return nil, err
	}
	return s, nil
}

// install writes the isolation artifacts into the workspace.
func (s *Session) install() error {
	if err := os.MkdirAll(filepath.Join(s.Path, sentinelDir), 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", sentinelDir, err)
	}
	if err := WriteMarker(s.Path, s.Root, s.Name, s.Agent); err != nil {
		return err
	}
	shim := s.ShimDir()
	if err := os.MkdirAll(shim, 0755); err != nil {
		return fmt.Errorf("creating shim directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(shim, "git"), []byte(shimScript), 0755); err != nil {
		return fmt.Errorf("writing git shim: %w", err)
	}
	return nil
}

// Cleanup removes whatever parts of the workspace exist. Every step is
// best effort: a failure is reported on warn and does not stop the
// remaining steps, so calling Cleanup twice, or on a partially built
// workspace, is safe.
func (s *Session) Cleanup(client *jj.Client, warn io.Writer) {
	// The sentinel goes first so jj sees an ordinary workspace while
	// forgetting it.
	if gitDir := filepath.Join(s.Path, sentinelDir); exists(gitDir) {
		if err := os.RemoveAll(gitDir); err != nil {
			fmt.Fprintf(warn, "Warning: failed to remove %s directory: %v\n", sentinelDir, err)
		}
	}
	if marker := filepath.Join(s.Path, markerFile); exists(marker) {
		if err := os.Remove(marker); err != nil {
			fmt.Fprintf(warn, "Warning: failed to remove agent marker: %v\n", err)
		}
	}
	if err := client.Forget(s.Root, s.ID); err != nil {
		fmt.Fprintf(warn, "Warning: failed to forget workspace: %v\n", err)
	}
	if err := os.RemoveAll(s.Path); err != nil {
		fmt.Fprintf(warn, "Warning: failed to remove workspace directory: %v\n", err)
	}
}

// HasUncommittedChanges reports whether the workspace's working copy has
// changes jj would snapshot. Errors read as "no changes": by the time
// this runs the agent has already finished, and a broken status call
// must not block the cleanup prompt.
func HasUncommittedChanges(client *jj.Client, path string) bool {
	out, err := client.Status(path)
	if err != nil {
		return false
	}
	return strings.Contains(out, "Working copy changes:")
}

// checkParentWritable verifies a sibling directory can be created next
// to root by writing and removing a probe file. It runs before any
// destructive action so a read-only parent leaves no partial state.
func checkParentWritable(root string) error {
	parent := filepath.Dir(root)
	probe := filepath.Join(parent, probeFile)
	if err := os.WriteFile(probe, []byte("test"), 0644); err != nil {
		return fmt.Errorf("parent directory %s is not writable: %w", parent, err)
	}
	if err := os.Remove(probe); err != nil {
		return fmt.Errorf("parent directory %s is not writable: %w", parent, err)
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
