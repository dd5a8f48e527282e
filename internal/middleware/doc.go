// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

/*
Package middleware provides the HTTP middleware shared by every API route.

  - RequestID: X-Request-ID propagation into the logging context
  - AccessLog: one structured log line per request
  - PrometheusMetrics: request count, latency and in-flight gauges labelled
    by chi route pattern

The functions use the http.HandlerFunc shape; the api package adapts them to
chi's func(http.Handler) http.Handler:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
*/
package middleware
