package jj

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotRepo indicates the directory is not inside a jj repository.
	ErrNotRepo = errors.New("not a jj repository")
	// ErrWorkspaceExists indicates a workspace with that name is already registered.
	ErrWorkspaceExists = errors.New("workspace already exists")
	// ErrWorkspaceNotFound indicates no workspace with that name is registered.
	ErrWorkspaceNotFound = errors.New("no such workspace")
)

// CommandError is the failure of a jj invocation that did not match any
// known stderr pattern. It carries enough context to show the user what
// jj actually said.
type CommandError struct {
	Cmd      string
	Stderr   string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("jj %s: %s", e.Cmd, e.Stderr)
}

// errorPatterns maps fragments of jj's stderr output to sentinel errors.
// The order matters: a line containing "No such workspace" must classify
// as ErrWorkspaceNotFound, never fall through to a CommandError. The
// fragments are coupled to jj's message wording and will need updating
// if that wording changes; the tests pin the literal strings.
var errorPatterns = []struct {
	fragment string
	err      error
}{
	{"There is no jj repo in", ErrNotRepo},
	{"already exists", ErrWorkspaceExists},
	{"No such workspace", ErrWorkspaceNotFound},
}

// classify converts a failed jj invocation into a typed error. Unmatched
// stderr yields a *CommandError.
func classify(subcmd, stderr string, exitCode int) error {
	for _, p := range errorPatterns {
		if strings.Contains(stderr, p.fragment) {
			return p.err
		}
	}
	return &CommandError{Cmd: subcmd, Stderr: stderr, ExitCode: exitCode}
}
