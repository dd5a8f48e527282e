// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

/*
Package main is the entry point for the MediaPulse API server.

MediaPulse reads a CSV of social media mentions, cleans it, and answers
trend questions over HTTP: per-keyword statistics, spikes, trending
keywords, region summaries and engagement distributions.

# Application Architecture

The server runs under Suture v4 process supervision:

	RootSupervisor ("mediapulse")
	├── DataSupervisor ("data-layer")
	│   └── Dataset watcher (reload on file change, cache cleanup)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Startup order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog with JSON or console output
 3. Cache: in-memory result cache (optional)
 4. Pipeline: dataset store, cleaner and analysis service
 5. HTTP Server: chi router with CORS, rate limiting and Prometheus metrics
 6. Supervisor Tree: data and API layers

# Configuration

Configuration is layered, highest priority last:

  - Built-in defaults
  - config.yaml (CONFIG_PATH, ./config.yaml or /etc/mediapulse/config.yaml)
  - Environment variables such as DATASET_PATH, HTTP_PORT, LOG_LEVEL

The dataset file does not need to exist at startup. The API answers 503
DATASET_NOT_FOUND until it appears, and the readiness probe fails.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for server.shutdown_timeout before the process exits.

# Example

	DATASET_PATH=./data/social_trends.csv HTTP_PORT=8080 ./mediapulse-server
	curl -s -X POST localhost:8080/api/v1/analyze -d '{"keywords":["ai"],"freq":"week"}'
*/
package main
