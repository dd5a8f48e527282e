// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/mediapulse/internal/logging"
)

// AccessLog logs one line per completed request through the context logger,
// so the line carries the request and correlation IDs. Server errors log at
// warn level, everything else at debug.
func AccessLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next(ww, r)

		logger := logging.Ctx(r.Context())
		var event *zerolog.Event
		if ww.statusCode >= http.StatusInternalServerError {
			event = logger.Warn()
		} else {
			event = logger.Debug()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Int("status", ww.statusCode).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	}
}
