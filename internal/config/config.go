// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration. It is built once at startup
// by LoadWithKoanf and passed explicitly to each component.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Example:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	svc := pipeline.New(pipeline.OptionsFromConfig(cfg), nil)
//
// Config is immutable after loading and safe for concurrent reads.
type Config struct {
	Logging   LoggingConfig   `koanf:"logging"`
	Server    ServerConfig    `koanf:"server"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Security  SecurityConfig  `koanf:"security"`
	Cache     CacheConfig     `koanf:"cache"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatasetConfig locates and parses the mentions file.
type DatasetConfig struct {
	Path string `koanf:"path"`

	// Delimiter is a single character. Default: ","
	Delimiter string `koanf:"delimiter"`

	// ReloadInterval is how often the watcher checks the file for changes.
	// Zero disables polling; the file is still re-checked on each request.
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// DelimiterRune returns the delimiter as a rune, or 0 for the CSV default.
func (d DatasetConfig) DelimiterRune() rune {
	for _, r := range d.Delimiter {
		return r
	}
	return 0
}

// AnalyticsConfig holds the windows, thresholds and limits used by the
// statistics engine.
type AnalyticsConfig struct {
	DefaultFreq     string  `koanf:"default_freq"`
	MAWindow        int     `koanf:"ma_window"`
	SpikeThreshold  float64 `koanf:"spike_threshold"`
	TrendingPeriods int     `koanf:"trending_periods"`
	TopK            int     `koanf:"top_k"`
	PreviewRows     int     `koanf:"preview_rows"`
}

// SecurityConfig holds CORS and rate limit settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// CacheConfig controls the response cache.
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	TTL        time.Duration `koanf:"ttl"`
	MaxEntries int           `koanf:"max_entries"`
}
