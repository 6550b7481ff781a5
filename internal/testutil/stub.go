// Package testutil provides stub jj binaries for tests, so no test
// needs a real jj installation.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// StubJJ writes an executable shell script named jj into a fresh temp
// directory and returns the script's path. The body decides behavior
// per subcommand; it runs with the invoking command's working directory.
func StubJJ(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "jj")
	script := "#!/bin/sh\n" + body
	if err := os.WriteFile(path, []byte(script), 0755); err != nil { //nolint:gosec // test executable
		t.Fatal(err)
	}
	return path
}

// CallLog returns the lines recorded in the given log file, one stub
// invocation per line. A missing file reads as no calls.
func CallLog(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	out := strings.TrimSpace(string(data))
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
