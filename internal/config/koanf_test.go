// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// unsetConfigEnv removes every variable the loader reads and restores them
// when the test ends.
func unsetConfigEnv(t *testing.T) {
	t.Helper()
	names := []string{ConfigPathEnvVar}
	for key := range envMappings {
		names = append(names, strings.ToUpper(key))
	}
	for _, name := range names {
		if v, ok := os.LookupEnv(name); ok {
			os.Unsetenv(name)
			name, v := name, v
			t.Cleanup(func() { os.Setenv(name, v) })
		}
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	return path
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8050 {
		t.Errorf("Server.Port = %d, want 8050", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Dataset.Path != "data/trends.csv" {
		t.Errorf("Dataset.Path = %q, want data/trends.csv", cfg.Dataset.Path)
	}
	if cfg.Dataset.DelimiterRune() != ',' {
		t.Errorf("Dataset.DelimiterRune() = %q, want ','", cfg.Dataset.DelimiterRune())
	}
	if cfg.Analytics.DefaultFreq != "day" {
		t.Errorf("Analytics.DefaultFreq = %q, want day", cfg.Analytics.DefaultFreq)
	}
	if cfg.Analytics.MAWindow != 3 {
		t.Errorf("Analytics.MAWindow = %d, want 3", cfg.Analytics.MAWindow)
	}
	if cfg.Analytics.SpikeThreshold != 2.5 {
		t.Errorf("Analytics.SpikeThreshold = %v, want 2.5", cfg.Analytics.SpikeThreshold)
	}
	if cfg.Analytics.TrendingPeriods != 7 {
		t.Errorf("Analytics.TrendingPeriods = %d, want 7", cfg.Analytics.TrendingPeriods)
	}
	if cfg.Analytics.TopK != 5 {
		t.Errorf("Analytics.TopK = %d, want 5", cfg.Analytics.TopK)
	}
	if cfg.Analytics.PreviewRows != 50 {
		t.Errorf("Analytics.PreviewRows = %d, want 50", cfg.Analytics.PreviewRows)
	}
	if cfg.Cache.TTL != 5*time.Minute || !cfg.Cache.Enabled || cfg.Cache.MaxEntries != 1000 {
		t.Errorf("Cache = %+v, want enabled with 5m TTL and 1000 entries", cfg.Cache)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable name mapping
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"DATASET_PATH", "dataset.path"},
		{"DATASET_RELOAD_INTERVAL", "dataset.reload_interval"},
		{"ANALYTICS_SPIKE_THRESHOLD", "analytics.spike_threshold"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"CACHE_TTL", "cache.ttl"},
		{"CACHE_MAX_ENTRIES", "cache.max_entries"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := envTransformFunc(tt.input); result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	unsetConfigEnv(t)

	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})

	t.Run("no config file exists", func(t *testing.T) {
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		if err := os.WriteFile("config.yaml", []byte("server: {}"), 0o600); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove("config.yaml")

		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := writeConfig(t, "server: {}")
		t.Setenv(ConfigPathEnvVar, customPath)

		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")

		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	unsetConfigEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATASET_PATH", "/srv/trends.csv")
	t.Setenv("DATASET_RELOAD_INTERVAL", "2m")
	t.Setenv("ANALYTICS_SPIKE_THRESHOLD", "3.5")
	t.Setenv("ANALYTICS_DEFAULT_FREQ", "week")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DISABLE_RATE_LIMIT", "true")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Dataset.Path != "/srv/trends.csv" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
	if cfg.Dataset.ReloadInterval != 2*time.Minute {
		t.Errorf("Dataset.ReloadInterval = %v, want 2m", cfg.Dataset.ReloadInterval)
	}
	if cfg.Analytics.SpikeThreshold != 3.5 {
		t.Errorf("Analytics.SpikeThreshold = %v, want 3.5", cfg.Analytics.SpikeThreshold)
	}
	if cfg.Analytics.DefaultFreq != "week" {
		t.Errorf("Analytics.DefaultFreq = %q, want week", cfg.Analytics.DefaultFreq)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("Security.RateLimitDisabled should be true")
	}

	// Defaults still apply for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Analytics.TopK != 5 {
		t.Errorf("Analytics.TopK = %d, want 5 (default)", cfg.Analytics.TopK)
	}
}

// TestLoadWithKoanfConfigFile tests loading configuration from a YAML file
func TestLoadWithKoanfConfigFile(t *testing.T) {
	unsetConfigEnv(t)
	configPath := writeConfig(t, `
server:
  port: 8888
  host: "127.0.0.1"

dataset:
  path: "/data/mentions.tsv"
  delimiter: "\t"

analytics:
  ma_window: 7
  top_k: 10

security:
  cors_origins:
    - "https://dash.example"

logging:
  level: "warn"
`)
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Dataset.DelimiterRune() != '\t' {
		t.Errorf("Dataset.DelimiterRune() = %q, want tab", cfg.Dataset.DelimiterRune())
	}
	if cfg.Analytics.MAWindow != 7 || cfg.Analytics.TopK != 10 {
		t.Errorf("Analytics = %+v", cfg.Analytics)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://dash.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}

	// Defaults still apply for unset values
	if cfg.Analytics.SpikeThreshold != 2.5 {
		t.Errorf("Analytics.SpikeThreshold = %v, want 2.5 (default)", cfg.Analytics.SpikeThreshold)
	}
}

// TestLoadWithKoanfEnvOverridesFile tests that env vars override config file
func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	unsetConfigEnv(t)
	configPath := writeConfig(t, `
server:
  port: 8888
logging:
  level: "warn"
`)
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadWithKoanfFile(configPath)
	if err != nil {
		t.Fatalf("LoadWithKoanfFile() error = %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env override)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env override)", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfFileMissing(t *testing.T) {
	unsetConfigEnv(t)
	if _, err := LoadWithKoanfFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config file")
	}
}

// TestLoadWithKoanfValidation tests that validation errors surface from loading
func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		errMsg  string
	}{
		{"port out of range", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"bad freq", map[string]string{"ANALYTICS_DEFAULT_FREQ": "fortnight"}, "ANALYTICS_DEFAULT_FREQ"},
		{"zero ma window", map[string]string{"ANALYTICS_MA_WINDOW": "0"}, "ANALYTICS_MA_WINDOW"},
		{"negative threshold", map[string]string{"ANALYTICS_SPIKE_THRESHOLD": "-1"}, "ANALYTICS_SPIKE_THRESHOLD"},
		{"zero top k", map[string]string{"ANALYTICS_TOP_K": "0"}, "ANALYTICS_TOP_K"},
		{"multi-char delimiter", map[string]string{"DATASET_DELIMITER": ";;"}, "DATASET_DELIMITER"},
		{"rate limit too high", map[string]string{"RATE_LIMIT_REQUESTS": "1000000"}, "RATE_LIMIT_REQUESTS"},
		{"cache ttl zero", map[string]string{"CACHE_TTL": "0s"}, "CACHE_TTL"},
		{"cache max entries zero", map[string]string{"CACHE_MAX_ENTRIES": "0"}, "CACHE_MAX_ENTRIES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetConfigEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q should mention %s", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestRateLimitBoundsIgnoredWhenDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled rate limit should skip bounds: %v", err)
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8050}
	if s.Addr() != "127.0.0.1:8050" {
		t.Errorf("Addr() = %q", s.Addr())
	}
}
