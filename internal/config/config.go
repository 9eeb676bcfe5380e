package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/containeroo/resolver"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads the workflow configuration from the given path. Secret
// values may use env:/file: indirection (e.g. "file:/run/secrets/token")
// and are resolved before being returned.
func LoadConfig(path string) (WorkflowConfig, error) {
	cfg := WorkflowConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Username, err = resolver.ResolveVariable(cfg.Username); err != nil {
		return cfg, fmt.Errorf("resolve username: %w", err)
	}
	if cfg.APIToken, err = resolver.ResolveVariable(cfg.APIToken); err != nil {
		return cfg, fmt.Errorf("resolve apiToken: %w", err)
	}

	return cfg, nil
}

// ProjectList joins the configured restriction list into the comma-separated
// form the JQL compiler consumes.
func (c WorkflowConfig) ProjectList() string {
	return strings.Join(c.Projects, ",")
}
