package agent

import (
	"fmt"
	"sort"
	"strings"
)

// Agent is one launchable coding agent.
type Agent struct {
	Name       string
	Executable string
}

// DefaultName is the agent used when neither the --agent flag nor the
// config file selects one.
const DefaultName = "codex"

// builtins returns the agents kekkai knows without any configuration.
func builtins() map[string]Agent {
	return map[string]Agent{
		"codex":  {Name: "codex", Executable: "codex"},
		"claude": {Name: "claude", Executable: "claude"},
	}
}

// Registry resolves agent kinds to executables: the builtins overlaid
// with entries from the user config.
type Registry struct {
	agents      map[string]Agent
	defaultName string
}

// Lookup returns the agent registered under name.
func (r *Registry) Lookup(name string) (Agent, error) {
	a, ok := r.agents[name]
	if !ok {
		return Agent{}, fmt.Errorf("unknown agent %q (known: %s)", name, strings.Join(r.Names(), ", "))
	}
	return a, nil
}

// Default returns the name of the agent to use when none is selected.
func (r *Registry) Default() string {
	return r.defaultName
}

// Names returns the registered agent names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
