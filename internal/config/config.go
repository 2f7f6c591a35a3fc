// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for nexus-tui.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete nexus-tui configuration.
type Config struct {
	Version string `toml:"version"`

	// Backend connection configuration
	Backend BackendConfig `toml:"backend"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// BackendConfig contains NexusAI backend connection configuration.
type BackendConfig struct {
	// URL is the base URL of the NexusAI backend
	URL string `toml:"url"`
	// TimeoutSecs is the per-request timeout in seconds.
	// Valid range is 5-300; values outside are clamped.
	TimeoutSecs int `toml:"timeout_secs"`
	// MaxRequestsPerMin throttles outbound chat calls (0 disables)
	MaxRequestsPerMin int `toml:"max_requests_per_min"`
}

// UIConfig contains terminal UI configuration.
type UIConfig struct {
	// Markdown enables glamour-rendered assistant messages in the TUI
	Markdown bool `toml:"markdown"`
	// Plain forces the line-mode REPL even on a TTY
	Plain bool `toml:"plain"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Version: "1",
		Backend: BackendConfig{
			URL:               "http://127.0.0.1:8000",
			TimeoutSecs:       60,
			MaxRequestsPerMin: 30,
		},
		UI: UIConfig{
			Markdown: true,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the nexus-tui configuration directory (~/.nexus).
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".nexus"), nil
}

// ConfigPath returns the path of the TOML configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir creates the configuration directory if missing.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration: defaults, then the config file if present,
// then environment overrides, then validation with clamping.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		path = ""
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path. A missing or
// empty path yields defaults (plus environment overrides); a present but
// unparsable file is an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to decode config file: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies NEXUS_* environment variables over the config.
func (c *Config) ApplyEnvOverrides() {
	// NEXUS_BACKEND_URL
	if backendURL := os.Getenv("NEXUS_BACKEND_URL"); backendURL != "" {
		c.Backend.URL = backendURL
	}

	// NEXUS_TIMEOUT_SECS
	if timeout := os.Getenv("NEXUS_TIMEOUT_SECS"); timeout != "" {
		if secs, err := strconv.Atoi(timeout); err == nil {
			c.Backend.TimeoutSecs = secs
		}
	}

	// NEXUS_PLAIN
	if plain := os.Getenv("NEXUS_PLAIN"); plain != "" {
		c.UI.Plain = plain == "1" || strings.ToLower(plain) == "true"
	}

	// NEXUS_MARKDOWN
	if markdown := os.Getenv("NEXUS_MARKDOWN"); markdown != "" {
		c.UI.Markdown = markdown == "1" || strings.ToLower(markdown) == "true"
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration and clamps out-of-range values.
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		c.Backend.URL = Default().Backend.URL
	}

	parsed, err := url.Parse(c.Backend.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("backend.url %q is not a valid URL", c.Backend.URL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("backend.url scheme %q must be http or https", parsed.Scheme)
	}

	// Clamp timeout to a sane window
	if c.Backend.TimeoutSecs < 5 {
		c.Backend.TimeoutSecs = 5
	}
	if c.Backend.TimeoutSecs > 300 {
		c.Backend.TimeoutSecs = 300
	}

	if c.Backend.MaxRequestsPerMin < 0 {
		c.Backend.MaxRequestsPerMin = 0
	}

	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the default TOML path.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// =============================================================================
// GLOBAL CONFIG
// =============================================================================

var (
	globalConfig     *Config
	globalConfigMu   sync.RWMutex
	globalConfigOnce sync.Once
)

// Global returns the process-wide configuration, loading it on first use.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
