package agent

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional agent registry file. Entries extend or
// override the builtin agents.
type Config struct {
	DefaultAgent string                 `yaml:"default_agent,omitempty"`
	Agents       map[string]AgentConfig `yaml:"agents,omitempty"`
}

// AgentConfig configures a single agent entry.
type AgentConfig struct {
	Executable string `yaml:"executable"`
}

// DefaultConfigPath returns the per-user config location
// (<UserConfigDir>/kekkai/config.yaml).
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "kekkai", "config.yaml"), nil
}

// LoadRegistry builds the agent registry from the config file at path.
// An empty path means the default location; a missing file (at either)
// yields the builtin registry.
func LoadRegistry(path string) (*Registry, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			// No resolvable config dir; run on builtins alone.
			return newRegistry(nil)
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return newRegistry(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return newRegistry(cfg)
}

// parseConfig parses and validates config file content.
func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	for name, a := range cfg.Agents {
		if name == "" {
			return nil, fmt.Errorf("agents: empty agent name")
		}
		if a.Executable == "" {
			return nil, fmt.Errorf("agents.%s: executable is required", name)
		}
	}
	return &cfg, nil
}

func newRegistry(cfg *Config) (*Registry, error) {
	r := &Registry{agents: builtins(), defaultName: DefaultName}
	if cfg == nil {
		return r, nil
	}
	for name, a := range cfg.Agents {
		r.agents[name] = Agent{Name: name, Executable: a.Executable}
	}
	if cfg.DefaultAgent != "" {
		if _, ok := r.agents[cfg.DefaultAgent]; !ok {
			return nil, fmt.Errorf("default_agent %q is not a known agent", cfg.DefaultAgent)
		}
		r.defaultName = cfg.DefaultAgent
	}
	return r, nil
}
