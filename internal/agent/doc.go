// Package agent defines the registry of launchable coding agents and
// runs an agent process inside a prepared workspace with the git shim
// on its PATH.
package agent
