package agent

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Run launches the agent in dir with shimDir first on PATH and the
// controlling terminal passed through; the agent's interactive session
// is not mediated. It blocks until the agent exits and returns the exit
// code. A non-zero exit is the agent's business, not an error here; err
// is non-nil only when the process could not be started at all.
func Run(a Agent, dir, shimDir string) (int, error) {
	cmd := exec.Command(a.Executable)
	cmd.Dir = dir
	cmd.Env = prependPath(os.Environ(), shimDir)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 0, fmt.Errorf("running %s: %w", a.Executable, err)
	}
	return 0, nil
}

// prependPath returns env with dir prepended to PATH. The rest of the
// environment is passed through untouched.
func prependPath(env []string, dir string) []string {
	out := make([]string, len(env))
	copy(out, env)
	for i, kv := range out {
		if strings.HasPrefix(kv, "PATH=") {
			out[i] = "PATH=" + dir + string(os.PathListSeparator) + strings.TrimPrefix(kv, "PATH=")
			return out
		}
	}
	return append(out, "PATH="+dir)
}
