package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// serverConfig configures the serve command. Flags given explicitly on
// the command line override file values.
type serverConfig struct {
	Addr           string   `yaml:"addr"`
	DBPath         string   `yaml:"db_path"`
	LexiconDir     string   `yaml:"lexicon_dir"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	Strategy       string   `yaml:"strategy"`
}

func defaultServerConfig() serverConfig {
	return serverConfig{
		Addr:           ":8080",
		AllowedOrigins: []string{"*"},
		Strategy:       "linear",
	}
}

// loadServerConfig reads a YAML config file over the defaults.
func loadServerConfig(path string) (serverConfig, error) {
	cfg := defaultServerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
