// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package models

import (
	"time"
)

// APIResponse is the standard wrapper used by every JSON endpoint.
//
// Status is "success" or "error". Error is populated only on failure.
//
//	{
//	  "status": "success",
//	  "data": {...},
//	  "metadata": {"timestamp": "2026-01-28T12:00:00Z", "query_time_ms": 4}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and cache information for a response.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is the machine-readable error body.
//
// Codes in use: BAD_REQUEST, VALIDATION_ERROR, INVALID_COLUMN, NO_DATA,
// NOT_FOUND, DATASET_NOT_FOUND, METHOD_NOT_ALLOWED, TOO_MANY_REQUESTS,
// SERVICE_UNAVAILABLE, INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status          string     `json:"status"`
	Version         string     `json:"version"`
	DatasetPath     string     `json:"dataset_path"`
	DatasetLoaded   bool       `json:"dataset_loaded"`
	DatasetLoadedAt *time.Time `json:"dataset_loaded_at,omitempty"`
	Uptime          float64    `json:"uptime"`
}
