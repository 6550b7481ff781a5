// Package workspace manages the lifecycle of isolated agent workspaces:
// deriving their sibling paths and jj workspace names, reading and
// writing the agent marker that distinguishes them from unrelated
// directories, provisioning the isolation artifacts, and tearing a
// workspace down again.
package workspace
