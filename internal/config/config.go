// Package config handles reading and writing ~/.agentboard/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for config.yaml. Environment variables
// (AGENTBOARD_*) override file values, which override defaults.
type Config struct {
	ServerURL          string `yaml:"server_url" envconfig:"SERVER_URL"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds" envconfig:"HTTP_TIMEOUT_SECONDS"`
	Debug              bool   `yaml:"debug" envconfig:"DEBUG"`
}

const configFile = "config.yaml"

// Default returns the built-in configuration. The server URL matches the
// backend's development address.
func Default() Config {
	return Config{
		ServerURL:          "http://localhost:5000",
		HTTPTimeoutSeconds: 30,
	}
}

// DefaultDir returns ~/.agentboard.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".agentboard"), nil
}

// Read reads config.yaml from dir. A missing file is an error; use Load
// for the layered lookup that tolerates absence.
func Read(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Write writes cfg to dir/config.yaml, creating dir if needed.
func Write(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, configFile), data, 0o600)
}

// Load layers defaults, then config.yaml from dir when present, then
// AGENTBOARD_* environment variables.
func Load(dir string) (*Config, error) {
	cfg := Default()

	fileCfg, err := Read(dir)
	switch {
	case err == nil:
		if fileCfg.ServerURL != "" {
			cfg.ServerURL = fileCfg.ServerURL
		}
		if fileCfg.HTTPTimeoutSeconds > 0 {
			cfg.HTTPTimeoutSeconds = fileCfg.HTTPTimeoutSeconds
		}
		if fileCfg.Debug {
			cfg.Debug = true
		}
	case errors.Is(err, os.ErrNotExist):
		// No config file; defaults apply.
	default:
		return nil, err
	}

	if err := envconfig.Process("agentboard", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
