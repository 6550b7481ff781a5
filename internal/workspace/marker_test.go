package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMarkerRoundTrip(t *testing.T) {
	ws := t.TempDir()

	if err := WriteMarker(ws, "/tmp/repo", "foo", "codex"); err != nil {
		t.Fatalf("WriteMarker() error: %v", err)
	}

	m := ReadMarker(ws)
	if m == nil {
		t.Fatal("ReadMarker() = nil after WriteMarker")
	}
	if m.RootWorkspace != "/tmp/repo" {
		t.Errorf("RootWorkspace = %q, want %q", m.RootWorkspace, "/tmp/repo")
	}
	if m.Name != "foo" {
		t.Errorf("Name = %q, want %q", m.Name, "foo")
	}
	if m.Agent != "codex" {
		t.Errorf("Agent = %q, want %q", m.Agent, "codex")
	}
	if m.CreatedAt == "" {
		t.Error("CreatedAt is empty")
	}
	if _, err := time.Parse(time.RFC3339, m.CreatedAt); err != nil {
		t.Errorf("CreatedAt %q is not RFC 3339: %v", m.CreatedAt, err)
	}
}

func TestReadMarker_absent(t *testing.T) {
	if m := ReadMarker(t.TempDir()); m != nil {
		t.Errorf("ReadMarker() = %+v for a directory without a marker, want nil", m)
	}
}

func TestReadMarker_corrupt(t *testing.T) {
	ws := t.TempDir()
	path := filepath.Join(ws, markerFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	// A corrupt marker reads as "not an agent workspace".
	if m := ReadMarker(ws); m != nil {
		t.Errorf("ReadMarker() = %+v for a corrupt marker, want nil", m)
	}
}

func TestReadMarker_legacyWithoutAgent(t *testing.T) {
	ws := t.TempDir()
	path := filepath.Join(ws, markerFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	legacy := `{"root_workspace": "/tmp/repo", "name": "old", "created_at": "2024-01-01T00:00:00Z"}`
	if err := os.WriteFile(path, []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}

	m := ReadMarker(ws)
	if m == nil {
		t.Fatal("ReadMarker() = nil for a legacy marker")
	}
	if m.Agent != "claude" {
		t.Errorf("Agent = %q for a legacy marker, want %q", m.Agent, "claude")
	}
}
