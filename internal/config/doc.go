// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

/*
Package config provides centralized configuration management for MediaPulse.

Configuration is loaded with Koanf v2 in three layers, later layers winning:
built-in defaults, an optional YAML file, then environment variables.

# Config File

The file is taken from CONFIG_PATH when set and present, otherwise from the
first existing entry of DefaultConfigPaths:

	server:
	  port: 8050
	dataset:
	  path: /data/trends.csv
	  reload_interval: 1m
	analytics:
	  default_freq: week
	  spike_threshold: 3

# Environment Variables

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller file and line (default: false)

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8050)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown limit (default: 10s)

Dataset:
  - DATASET_PATH: CSV file (default: data/trends.csv)
  - DATASET_DELIMITER: Field separator (default: ,)
  - DATASET_RELOAD_INTERVAL: Change polling interval, 0 disables (default: 30s)

Analytics:
  - ANALYTICS_DEFAULT_FREQ: day, week, month or a duration (default: day)
  - ANALYTICS_MA_WINDOW: Moving average width (default: 3)
  - ANALYTICS_SPIKE_THRESHOLD: |z| above which a row is a spike (default: 2.5)
  - ANALYTICS_TRENDING_PERIODS: Recent periods for trending (default: 7)
  - ANALYTICS_TOP_K: Ranked result size (default: 5)
  - ANALYTICS_PREVIEW_ROWS: Aggregate preview size (default: 50)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)

Cache:
  - CACHE_ENABLED: Cache computed responses (default: true)
  - CACHE_TTL: Entry lifetime (default: 5m)
  - CACHE_MAX_ENTRIES: Entries kept before the soonest-expiring is evicted (default: 1000)

# Validation

LoadWithKoanf validates the merged result and returns an error naming the
offending environment variable when a value is out of range.
*/
package config
