package workspace

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yum0e/kekkai/internal/jj"
)

// defaultWorkspace is jj's canonical workspace name; it is never an
// agent workspace.
const defaultWorkspace = "default"

// ErrAgentNotFound is returned by Lookup when no agent workspace has the
// requested name.
var ErrAgentNotFound = errors.New("agent workspace not found")

// Entry is one agent workspace as registered with jj plus its marker
// metadata.
type Entry struct {
	Name      string // agent workspace name, without the repo prefix
	Agent     string // agent kind recorded in the marker
	ID        string // jj workspace name
	Path      string // sibling directory on disk
	Workspace jj.Workspace
}

// List enumerates the agent workspaces of root. The default workspace is
// skipped, as is any registered name that does not carry the repo
// prefix or whose sibling directory lacks a parseable marker; the marker
// check rejects foreign directories that merely match the naming
// convention.
func List(client *jj.Client, root string) ([]Entry, error) {
	workspaces, err := client.List(root)
	if err != nil {
		return nil, err
	}

	prefix := filepath.Base(root) + "-"
	var entries []Entry
	for _, ws := range workspaces {
		if ws.Name == defaultWorkspace || !strings.HasPrefix(ws.Name, prefix) {
			continue
		}
		path := filepath.Join(filepath.Dir(root), ws.Name)
		m := ReadMarker(path)
		if m == nil {
			continue
		}
		entries = append(entries, Entry{
			Name:      strings.TrimPrefix(ws.Name, prefix),
			Agent:     m.Agent,
			ID:        ws.Name,
			Path:      path,
			Workspace: ws,
		})
	}
	return entries, nil
}

// Lookup finds the agent workspace with the given name under root. On a
// miss it returns ErrAgentNotFound along with up to three advisory name
// suggestions drawn from the known agent workspaces.
func Lookup(client *jj.Client, root, name string) (Entry, []string, error) {
	entries, err := List(client, root)
	if err != nil {
		return Entry{}, nil, fmt.Errorf("listing workspaces: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Name == name {
			return e, nil, nil
		}
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return Entry{}, Suggest(name, names), ErrAgentNotFound
}
