package workspace

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/yum0e/kekkai/internal/jj"
)

// ErrNotRoot is returned when an operation that requires the root
// workspace runs inside an agent workspace.
var ErrNotRoot = errors.New("must be run from the root workspace")

// ResolveRoot returns the true root workspace for dir. Inside an agent
// workspace the marker points back to the root; the indirection is
// followed at most one level since agent workspaces always record the
// one true root, never each other.
func ResolveRoot(client *jj.Client, dir string) (string, error) {
	root, err := client.Root(dir)
	if err != nil {
		return "", err
	}
	if m := ReadMarker(root); m != nil && m.RootWorkspace != "" {
		return m.RootWorkspace, nil
	}
	return root, nil
}

// EnsureRoot fails with ErrNotRoot when root is itself an agent
// workspace.
func EnsureRoot(root string) error {
	if _, err := os.Stat(filepath.Join(root, markerFile)); err == nil {
		return ErrNotRoot
	}
	return nil
}
