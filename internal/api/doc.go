// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

/*
Package api serves the MediaPulse HTTP JSON API.

The router is built on go-chi/chi with chi's RealIP, Recoverer and Compress
middleware, go-chi/cors for cross-origin requests and go-chi/httprate for
per-IP rate limiting. Request IDs, access logs and Prometheus metrics come
from the internal middleware package.

# Endpoints

	POST /api/v1/analyze                 analyze (alias POST /analyze_multi)
	GET  /api/v1/regions/{region}/summary region summary (alias GET /region_summary/{region})
	GET  /api/v1/trending                top trending keywords
	GET  /api/v1/engagement              engagement distribution
	GET  /api/v1/options                 filter widget values
	POST /api/v1/export                  aggregate as text/csv
	GET  /api/v1/dataset                 dataset snapshot metadata
	GET  /api/v1/health[/live|/ready]    health checks
	GET  /metrics                        Prometheus exposition

# Responses

Every JSON endpoint answers with models.APIResponse:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "query_time_ms": 3, "cached": true, "request_id": "..."}
	}

Errors carry a machine-readable code:

	DATASET_NOT_FOUND   503  dataset file missing
	INVALID_COLUMN      400  unknown grouping column
	VALIDATION_ERROR    400  request failed validation
	BAD_REQUEST         400  malformed JSON or query parameter
	NO_DATA             404  no rows match the filters
	NOT_FOUND           404  region has no rows, or unknown route
	METHOD_NOT_ALLOWED  405  wrong method for a known route
	TOO_MANY_REQUESTS   429  rate limit exceeded
	SERVICE_UNAVAILABLE 503  dataset not ready, or request canceled
	INTERNAL_ERROR      500  anything else
*/
package api
