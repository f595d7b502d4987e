// Package config handles TOML-based configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"appledev/internal/httputil"
)

// Config holds all application configuration.
type Config struct {
	BaseURL      string `toml:"base_url"`
	DataSource   string `toml:"data_source"`
	UserAgent    string `toml:"user_agent"`
	Timeout      int    `toml:"timeout"` // seconds
	SubsLanguage string `toml:"subs_language"`
	Debug        bool   `toml:"debug"`
}

// maxTimeout bounds the per-request timeout in seconds.
const maxTimeout = 300

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		BaseURL:      "https://developer.apple.com",
		DataSource:   "https://developer.apple.com/wwdc/services/data/",
		UserAgent:    httputil.DefaultUserAgent,
		Timeout:      30,
		SubsLanguage: "",
		Debug:        false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "appledev"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "appledev"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if err := httputil.ValidateURL(c.BaseURL); err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if err := httputil.ValidateURL(c.DataSource); err != nil {
		return fmt.Errorf("data_source: %w", err)
	}

	if c.Timeout <= 0 || c.Timeout > maxTimeout {
		return fmt.Errorf("timeout %d out of range (1-%d seconds)", c.Timeout, maxTimeout)
	}

	if strings.ContainsAny(c.UserAgent, "\r\n") {
		return fmt.Errorf("user_agent must be a single line")
	}

	return nil
}

// RequestTimeout returns the per-request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
