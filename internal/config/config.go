package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the optional on-disk application settings. Everything
// has a working default; the file may be absent entirely.
type Config struct {
	DataDir     string `yaml:"data_dir"`
	LogFile     string `yaml:"log_file"`
	Development bool   `yaml:"development"`
	DebounceMS  int    `yaml:"debounce_ms"`
}

// Load reads ~/.config/projex/config.yaml (or $XDG_CONFIG_HOME),
// falling back to defaults when the file does not exist
func Load() (Config, error) {
	cfg := Config{DebounceMS: 300}

	path, err := configPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DebounceMS <= 0 {
		cfg.DebounceMS = 300
	}
	return cfg, nil
}

// Debounce returns the quiet window for coalescing rapid search input
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

func configPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "projex", "config.yaml"), nil
}
