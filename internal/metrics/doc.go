// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

/*
Package metrics provides Prometheus metrics collection for the server.

Metrics are registered with the default registry through promauto and exposed
at /metrics in Prometheus text format:

	curl http://localhost:8050/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint (chi route pattern), status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Pipeline Metrics:
  - pipeline_stage_duration_seconds: Stage duration (histogram)
    Labels: stage (load, clean, filter, aggregate, stats, spikes, export)
  - spikes_detected_total: Spike rows flagged (counter)

Dataset Metrics:
  - dataset_rows: Rows in the current snapshot (gauge)
    Labels: state (loaded, kept, dropped_datetime, dropped_keyword)
  - dataset_reloads_total: Reload attempts (counter)
    Labels: result (success, error)
  - dataset_last_reload_timestamp: Unix time of the last successful reload (gauge)

Cache Metrics:
  - cache_hits_total, cache_misses_total: Response cache lookups (counters)
*/
package metrics
