// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package config

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tomtom215/mediapulse/internal/aggregate"
)

// Validate checks that every setting is present and within range
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateAnalytics(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateDataset validates the dataset location and format
func (c *Config) validateDataset() error {
	if strings.TrimSpace(c.Dataset.Path) == "" {
		return fmt.Errorf("DATASET_PATH is required")
	}
	if utf8.RuneCountInString(c.Dataset.Delimiter) > 1 {
		return fmt.Errorf("DATASET_DELIMITER must be a single character, got %q", c.Dataset.Delimiter)
	}
	switch c.Dataset.DelimiterRune() {
	case '"', '\n', '\r':
		return fmt.Errorf("DATASET_DELIMITER cannot be a quote or newline")
	}
	if c.Dataset.ReloadInterval < 0 {
		return fmt.Errorf("DATASET_RELOAD_INTERVAL cannot be negative")
	}
	return nil
}

// validateAnalytics validates windows, thresholds and limits
func (c *Config) validateAnalytics() error {
	if _, err := aggregate.ParseFreq(c.Analytics.DefaultFreq); err != nil {
		return fmt.Errorf("ANALYTICS_DEFAULT_FREQ is invalid: %w", err)
	}
	if c.Analytics.MAWindow < 1 {
		return fmt.Errorf("ANALYTICS_MA_WINDOW must be at least 1")
	}
	if c.Analytics.SpikeThreshold <= 0 {
		return fmt.Errorf("ANALYTICS_SPIKE_THRESHOLD must be positive")
	}
	if c.Analytics.TrendingPeriods < 1 {
		return fmt.Errorf("ANALYTICS_TRENDING_PERIODS must be at least 1")
	}
	if c.Analytics.TopK < 1 {
		return fmt.Errorf("ANALYTICS_TOP_K must be at least 1")
	}
	if c.Analytics.PreviewRows < 1 {
		return fmt.Errorf("ANALYTICS_PREVIEW_ROWS must be at least 1")
	}
	return nil
}

// validateSecurity validates CORS and rate limiting
func (c *Config) validateSecurity() error {
	for _, origin := range c.Security.CORSOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("CORS_ORIGINS cannot contain empty entries")
		}
	}
	return c.validateRateLimits()
}

// Rate limit bounds
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting bounds (skipped when disabled)
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateCache validates the response cache settings
func (c *Config) validateCache() error {
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when the cache is enabled")
	}
	if c.Cache.Enabled && c.Cache.MaxEntries < 1 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be at least 1 when the cache is enabled")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
