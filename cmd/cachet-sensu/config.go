package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigPath is where Sensu installs drop handler configuration.
const defaultConfigPath = "/etc/sensu/conf.d/cachet.yml"

// handlerConfig is the file configuration of the handler. YAML is a JSON
// superset, so legacy JSON config files parse as-is.
type handlerConfig struct {
	// Endpoint is the Cachet API base URL, e.g.
	// "http://status.domain.tld/api/v1".
	Endpoint string `yaml:"endpoint"`
	// APIToken authenticates incident and component writes.
	APIToken string `yaml:"api_token"`
	// Uchiwa is the monitoring dashboard base URL used to build check
	// links in incident messages.
	Uchiwa string `yaml:"uchiwa"`
}

// loadConfig reads and validates the handler configuration. Every key is
// required; a missing file or key is fatal for the handler.
func loadConfig(path string) (*handlerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration file %s: %w", path, err)
	}

	var cfg handlerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse configuration file %s: %w", path, err)
	}

	for _, key := range []struct {
		name  string
		value string
	}{
		{"endpoint", cfg.Endpoint},
		{"api_token", cfg.APIToken},
		{"uchiwa", cfg.Uchiwa},
	} {
		if key.value == "" {
			return nil, fmt.Errorf("unable to find required configuration key: %s", key.name)
		}
	}

	return &cfg, nil
}
