package jj

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// Client executes jj CLI commands.
type Client struct {
	// Path is the jj binary to invoke. Defaults to "jj" resolved on PATH.
	Path string
}

// NewClient returns a client using the jj binary on PATH.
func NewClient() *Client {
	return &Client{Path: "jj"}
}

// Run executes a jj command in dir and returns its stdout. An empty dir
// runs in the process working directory. Non-zero exit is converted to a
// typed error via the stderr classifier.
func (c *Client) Run(dir string, args ...string) (string, error) {
	cmd := exec.Command(c.Path, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// jj missing from PATH or not executable; nothing to classify.
			return "", fmt.Errorf("running %s: %w", c.Path, err)
		}
		subcmd := ""
		if len(args) > 0 {
			subcmd = args[0]
		}
		return "", classify(subcmd, strings.TrimSpace(stderr.String()), exitErr.ExitCode())
	}
	return stdout.String(), nil
}

// Root returns the root directory of the workspace containing dir.
func (c *Client) Root(dir string) (string, error) {
	out, err := c.Run(dir, "workspace", "root")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Add registers a new workspace at path. A non-empty revision pins the
// workspace's working copy to that revision.
func (c *Client) Add(dir, path, revision string) error {
	args := []string{"workspace", "add", path}
	if revision != "" {
		args = append(args, "-r", revision)
	}
	_, err := c.Run(dir, args...)
	return err
}

// Forget unregisters a workspace by name. The directory on disk is left
// in place.
func (c *Client) Forget(dir, name string) error {
	_, err := c.Run(dir, "workspace", "forget", name)
	return err
}

// Workspace is one entry of `jj workspace list`.
type Workspace struct {
	Name     string
	ChangeID string
	CommitID string
	Summary  string
}

// Parses lines like: default: wpxqlmox f3c3a79d (no description set)
var workspaceLineRe = regexp.MustCompile(`^(\S+): (\S+) (\S+) (.*)$`)

// List returns all workspaces registered in the repository containing dir.
// Lines that do not match the expected format are skipped.
func (c *Client) List(dir string) ([]Workspace, error) {
	out, err := c.Run(dir, "workspace", "list")
	if err != nil {
		return nil, err
	}
	var workspaces []Workspace
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		m := workspaceLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		workspaces = append(workspaces, Workspace{
			Name:     m[1],
			ChangeID: m[2],
			CommitID: m[3],
			Summary:  m[4],
		})
	}
	return workspaces, nil
}

// Status returns the `jj status` output for dir.
func (c *Client) Status(dir string) (string, error) {
	return c.Run(dir, "status")
}

// New creates a new revision on top of the given revision.
func (c *Client) New(dir, revision string) error {
	_, err := c.Run(dir, "new", revision)
	return err
}

// ConfigSet sets a repo-scoped jj config value in dir.
func (c *Client) ConfigSet(dir, key, value string) error {
	_, err := c.Run(dir, "config", "set", "--repo", key, value)
	return err
}
