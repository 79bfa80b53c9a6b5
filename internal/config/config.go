// Package config loads the runner configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config controls where inputs come from and how the runner behaves.
type Config struct {
	// Year of the event the solutions belong to.
	Year int `yaml:"year"`
	// SessionFile holds the adventofcode.com session cookie.
	SessionFile string `yaml:"session_file"`
	// CacheDir is where downloaded inputs are kept.
	CacheDir string `yaml:"cache_dir"`
	// BaseURL of the puzzle site.
	BaseURL string `yaml:"base_url"`
	// Workers bounds parallel solvers; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// DefaultPath returns $HOME/.config/aoc/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "aoc.yaml"
	}
	return filepath.Join(home, ".config", "aoc", "config.yaml")
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Year:        2023,
		SessionFile: filepath.Join(home, "keys", "aoc.session"),
		CacheDir:    "inputs",
		BaseURL:     "https://adventofcode.com",
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment variables override both.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("AOC_SESSION_FILE"); v != "" {
		c.SessionFile = v
	}
	if v := os.Getenv("AOC_CACHE_DIR"); v != "" {
		c.CacheDir = v
	}
	if v := os.Getenv("AOC_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	for name, dst := range map[string]*int{"AOC_YEAR": &c.Year, "AOC_WORKERS": &c.Workers} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", name, v, err)
		}
		*dst = n
	}
	return nil
}

// Validate checks the configuration for impossible values.
func (c *Config) Validate() error {
	if c.Year < 2015 {
		return fmt.Errorf("invalid year %d", c.Year)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers %d", c.Workers)
	}
	if c.CacheDir == "" {
		return errors.New("cache_dir must be set")
	}
	return nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
