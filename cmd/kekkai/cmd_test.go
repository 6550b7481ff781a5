package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yum0e/kekkai/internal/testutil"
	"github.com/yum0e/kekkai/internal/workspace"
)

// repoFixture builds a root directory named "repo" and puts a stub jj
// on PATH that reports it as the workspace root, registers workspaces
// from listLines, and behaves like the real jj for the lifecycle
// subcommands. It returns the root and the stub's call log path.
func repoFixture(t *testing.T, listLines string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	root := filepath.Join(dir, "repo")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatal(err)
	}

	listFile := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(listFile, []byte(listLines), 0644); err != nil {
		t.Fatal(err)
	}

	log := filepath.Join(t.TempDir(), "calls.log")
	stub := testutil.StubJJ(t, fmt.Sprintf(`echo "$@" >> %q
case "$1" in
workspace)
  case "$2" in
  root) echo %q ;;
  add)
    if [ -d "$3" ]; then
      echo "Error: workspace already exists" >&2
      exit 1
    fi
    mkdir -p "$3/.jj"
    ;;
  forget) : ;;
  list) cat %q ;;
  esac
  ;;
new) : ;;
config) : ;;
status) echo "The working copy is clean" ;;
esac
`, log, root, listFile))
	t.Setenv("PATH", filepath.Dir(stub)+string(os.PathListSeparator)+os.Getenv("PATH"))

	return root, log
}

// execute runs the root command with args and captures stdout/stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionFlag(t *testing.T) {
	out, _, err := execute(t, "", "--version")
	if err != nil {
		t.Fatalf("--version error: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("version output = %q, want it to contain %q", out, version)
	}
}

func TestNoArgs(t *testing.T) {
	_, _, err := execute(t, "")
	if err == nil {
		t.Fatal("expected error when no workspace name is given")
	}
}

func TestUnknownAgent(t *testing.T) {
	_, _, err := execute(t, "", "alpha", "--agent", "ghost")
	if err == nil || !strings.Contains(err.Error(), "unknown agent") {
		t.Errorf("error = %v, want unknown agent", err)
	}
}

func TestList_noWorkspaces(t *testing.T) {
	repoFixture(t, "default: wpxqlmox f3c3a79d (no description set)\n")

	out, _, err := execute(t, "", "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if !strings.Contains(out, "No workspaces") {
		t.Errorf("list output = %q, want %q", out, "No workspaces")
	}
}

func TestList_withAgentWorkspace(t *testing.T) {
	root, _ := repoFixture(t,
		"default: wpxqlmox f3c3a79d (no description set)\nrepo-alpha: kkmpptxz 51c2f91a tweak the parser\n")
	ws := filepath.Join(filepath.Dir(root), "repo-alpha")
	if err := os.MkdirAll(ws, 0755); err != nil {
		t.Fatal(err)
	}
	if err := workspace.WriteMarker(ws, root, "alpha", "codex"); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	for _, want := range []string{"alpha", "codex", "kkmpptxz", "tweak the parser"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output %q missing %q", out, want)
		}
	}
}

func TestLook_requiresRootWorkspace(t *testing.T) {
	root, _ := repoFixture(t, "")
	// Make the reported root itself an agent workspace.
	if err := workspace.WriteMarker(root, "/tmp/elsewhere", "alpha", "codex"); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "", "look", "alpha")
	if err == nil || !strings.Contains(err.Error(), "root workspace") {
		t.Errorf("error = %v, want a root-workspace error", err)
	}
}

func TestLook_notFoundSuggests(t *testing.T) {
	root, _ := repoFixture(t,
		"repo-feature-preview: kkmpptxz 51c2f91a (no description set)\n")
	ws := filepath.Join(filepath.Dir(root), "repo-feature-preview")
	if err := os.MkdirAll(ws, 0755); err != nil {
		t.Fatal(err)
	}
	if err := workspace.WriteMarker(ws, root, "feature-preview", "codex"); err != nil {
		t.Fatal(err)
	}

	_, errOut, err := execute(t, "", "look", "feature-prevew")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("error = %v, want not found", err)
	}
	if !strings.Contains(errOut, "Did you mean: feature-preview") {
		t.Errorf("stderr = %q, want a suggestion", errOut)
	}
}

func TestLook_createsRevision(t *testing.T) {
	root, log := repoFixture(t,
		"repo-alpha: kkmpptxz 51c2f91a (no description set)\n")
	ws := filepath.Join(filepath.Dir(root), "repo-alpha")
	if err := os.MkdirAll(ws, 0755); err != nil {
		t.Fatal(err)
	}
	if err := workspace.WriteMarker(ws, root, "alpha", "codex"); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "", "look", "alpha")
	if err != nil {
		t.Fatalf("look error: %v", err)
	}
	if !strings.Contains(out, `Created new revision from "alpha"`) {
		t.Errorf("look output = %q", out)
	}

	calls := strings.Join(testutil.CallLog(t, log), "\n")
	if !strings.Contains(calls, `new "repo-alpha"@`) {
		t.Errorf("jj new not invoked with the workspace tip:\n%s", calls)
	}
}

// agentConfig writes a config that maps codex to a no-op executable so
// lifecycle tests never launch a real agent.
func agentConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "agents:\n  codex:\n    executable: \"true\"\n"
	if err := os.WriteFile(path, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunAgent_cleanupByDefault(t *testing.T) {
	root, log := repoFixture(t, "")

	out, _, err := execute(t, "\n", "alpha", "--config", agentConfig(t))
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	if !strings.Contains(out, `Workspace "alpha" removed`) {
		t.Errorf("output = %q, want removal notice", out)
	}
	if _, statErr := os.Stat(filepath.Join(filepath.Dir(root), "repo-alpha")); !os.IsNotExist(statErr) {
		t.Error("workspace directory survived cleanup")
	}
	calls := strings.Join(testutil.CallLog(t, log), "\n")
	if !strings.Contains(calls, "workspace forget repo-alpha") {
		t.Errorf("jj workspace forget not invoked:\n%s", calls)
	}
}

func TestRunAgent_keepOnYes(t *testing.T) {
	root, _ := repoFixture(t, "")

	out, _, err := execute(t, "y\n", "alpha", "--config", agentConfig(t))
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	ws := filepath.Join(filepath.Dir(root), "repo-alpha")
	if !strings.Contains(out, "Workspace kept at: "+ws) {
		t.Errorf("output = %q, want keep notice", out)
	}
	if m := workspace.ReadMarker(ws); m == nil || m.Name != "alpha" {
		t.Errorf("kept workspace marker = %+v", m)
	}
}

func TestRunAgent_duplicateName(t *testing.T) {
	repoFixture(t, "")

	if _, _, err := execute(t, "y\n", "alpha", "--config", agentConfig(t)); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	_, _, err := execute(t, "\n", "alpha", "--config", agentConfig(t))
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %v, want already-exists", err)
	}
	if err != nil && !strings.Contains(err.Error(), "kekkai list") {
		t.Errorf("error = %v, want a pointer at 'kekkai list'", err)
	}
}
