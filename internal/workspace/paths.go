package workspace

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SiblingPath returns the directory for an agent workspace: a sibling of
// root named "<basename(root)>-<name>".
func SiblingPath(root, name string) string {
	return filepath.Join(filepath.Dir(root), ID(root, name))
}

// ID returns the jj workspace name for an agent workspace. It is the
// same string as the directory name SiblingPath produces.
func ID(root, name string) string {
	return filepath.Base(root) + "-" + name
}

// ValidateName rejects names that would escape the sibling naming
// scheme. Distinct valid names always derive distinct paths because the
// name is appended verbatim and cannot contain a separator.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("workspace name is required")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid workspace name %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("workspace name must not contain path separators")
	}
	return nil
}
