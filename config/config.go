// Package config loads the YAML configuration file. A missing file means
// defaults; a malformed file is an error the caller reports and exits on.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the persisted settings. CLI flags override these.
type Config struct {
	Location Location `yaml:"location"`
	Units    string   `yaml:"units"` // "metric" or "imperial"
	Leaves   bool     `yaml:"leaves"`
	Sound    bool     `yaml:"sound"`
}

// Location is the point weather is fetched for.
type Location struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Default returns the built-in configuration: Berlin, metric, everything
// optional off.
func Default() Config {
	return Config{
		Location: Location{Latitude: 52.52, Longitude: 13.41},
		Units:    "metric",
	}
}

// Path returns the config file location under the user config dir.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "wetterm", "config.yaml"), nil
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Units != "metric" && cfg.Units != "imperial" {
		return Default(), fmt.Errorf("config %s: units must be metric or imperial, got %q", path, cfg.Units)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
