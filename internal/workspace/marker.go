package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// markerFile is the path of the agent marker relative to a workspace
// root. It lives under .jj so jj never snapshots it.
const markerFile = ".jj/kekkai-agent"

// legacyAgent is assumed when a marker predates the agent field.
const legacyAgent = "claude"

// Marker identifies a directory as a kekkai-managed agent workspace and
// records which root workspace spawned it. A directory is an agent
// workspace exactly when this file exists and parses.
type Marker struct {
	RootWorkspace string `json:"root_workspace"`
	Name          string `json:"name"`
	CreatedAt     string `json:"created_at"`
	Agent         string `json:"agent"`
}

// WriteMarker writes the agent marker into the workspace at wsPath,
// creating parent directories as needed.
func WriteMarker(wsPath, rootPath, name, agent string) error {
	m := Marker{
		RootWorkspace: rootPath,
		Name:          name,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		Agent:         agent,
	}
	data, err := json.MarshalIndent(&m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding agent marker: %w", err)
	}
	path := filepath.Join(wsPath, markerFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating marker directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing agent marker: %w", err)
	}
	return nil
}

// ReadMarker returns the marker for the workspace at wsPath, or nil when
// the file is absent or does not parse. A corrupt marker means "not an
// agent workspace" rather than a hard failure, so one bad file cannot
// break listing of all the other workspaces.
func ReadMarker(wsPath string) *Marker {
	data, err := os.ReadFile(filepath.Join(wsPath, markerFile))
	if err != nil {
		return nil
	}
	var m Marker
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	if m.Agent == "" {
		m.Agent = legacyAgent
	}
	return &m
}
