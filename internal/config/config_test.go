// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// DEFAULT TESTS
// =============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Backend.URL != "http://127.0.0.1:8000" {
		t.Errorf("Backend.URL = %q", cfg.Backend.URL)
	}
	if cfg.Backend.TimeoutSecs != 60 {
		t.Errorf("Backend.TimeoutSecs = %d, want 60", cfg.Backend.TimeoutSecs)
	}
	if !cfg.UI.Markdown {
		t.Error("UI.Markdown should default to true")
	}
	if cfg.UI.Plain {
		t.Error("UI.Plain should default to false")
	}
}

// =============================================================================
// LOAD TESTS
// =============================================================================

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
version = "1"

[backend]
url = "http://10.0.0.5:9000"
timeout_secs = 120

[ui]
markdown = false
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}

	if cfg.Backend.URL != "http://10.0.0.5:9000" {
		t.Errorf("Backend.URL = %q", cfg.Backend.URL)
	}
	if cfg.Backend.TimeoutSecs != 120 {
		t.Errorf("Backend.TimeoutSecs = %d, want 120", cfg.Backend.TimeoutSecs)
	}
	if cfg.UI.Markdown {
		t.Error("UI.Markdown should be false from file")
	}
	// Unset fields keep defaults
	if cfg.Backend.MaxRequestsPerMin != 30 {
		t.Errorf("MaxRequestsPerMin = %d, want default 30", cfg.Backend.MaxRequestsPerMin)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.Backend.URL != Default().Backend.URL {
		t.Errorf("Backend.URL = %q, want default", cfg.Backend.URL)
	}
}

func TestLoadFromPath_BadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("LoadFromPath() should fail on unparsable TOML")
	}
}

// =============================================================================
// ENV OVERRIDE TESTS
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("NEXUS_BACKEND_URL", "http://env.example:8000")
	t.Setenv("NEXUS_TIMEOUT_SECS", "90")
	t.Setenv("NEXUS_PLAIN", "true")
	t.Setenv("NEXUS_MARKDOWN", "0")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Backend.URL != "http://env.example:8000" {
		t.Errorf("Backend.URL = %q", cfg.Backend.URL)
	}
	if cfg.Backend.TimeoutSecs != 90 {
		t.Errorf("TimeoutSecs = %d, want 90", cfg.Backend.TimeoutSecs)
	}
	if !cfg.UI.Plain {
		t.Error("UI.Plain should be true from env")
	}
	if cfg.UI.Markdown {
		t.Error("UI.Markdown should be false from env")
	}
}

func TestApplyEnvOverrides_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("NEXUS_TIMEOUT_SECS", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Backend.TimeoutSecs != 60 {
		t.Errorf("TimeoutSecs = %d, want default kept", cfg.Backend.TimeoutSecs)
	}
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty url falls back", func(c *Config) { c.Backend.URL = "" }, false},
		{"garbage url", func(c *Config) { c.Backend.URL = "://nope" }, true},
		{"relative url", func(c *Config) { c.Backend.URL = "nope" }, true},
		{"ftp scheme rejected", func(c *Config) { c.Backend.URL = "ftp://host" }, true},
		{"https accepted", func(c *Config) { c.Backend.URL = "https://host" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidate_ClampsTimeout(t *testing.T) {
	cfg := Default()
	cfg.Backend.TimeoutSecs = 1
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Backend.TimeoutSecs != 5 {
		t.Errorf("TimeoutSecs = %d, want clamped to 5", cfg.Backend.TimeoutSecs)
	}

	cfg.Backend.TimeoutSecs = 9999
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Backend.TimeoutSecs != 300 {
		t.Errorf("TimeoutSecs = %d, want clamped to 300", cfg.Backend.TimeoutSecs)
	}
}

func TestValidate_NegativeRateClamped(t *testing.T) {
	cfg := Default()
	cfg.Backend.MaxRequestsPerMin = -3
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Backend.MaxRequestsPerMin != 0 {
		t.Errorf("MaxRequestsPerMin = %d, want 0", cfg.Backend.MaxRequestsPerMin)
	}
}

// =============================================================================
// GLOBAL CONFIG TESTS
// =============================================================================

func TestSetGlobal(t *testing.T) {
	defer ResetGlobalForTesting()

	cfg := Default()
	cfg.Backend.URL = "http://global.test:8000"
	SetGlobal(cfg)

	if Global().Backend.URL != "http://global.test:8000" {
		t.Errorf("Global().Backend.URL = %q", Global().Backend.URL)
	}
}
