// Package jj provides a wrapper around the Jujutsu (jj) CLI commands used
// by kekkai. It executes jj subcommands in a given directory, captures
// their output, and classifies failures into typed errors based on jj's
// stderr text.
package jj
