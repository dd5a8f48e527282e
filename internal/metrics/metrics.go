// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/mediapulse/internal/models"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Pipeline Metrics
	PipelineStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pipeline_stage_duration_seconds",
			Help:    "Duration of pipeline stages in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"}, // "load", "clean", "filter", "aggregate", "stats", "spikes"
	)

	SpikesDetected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "spikes_detected_total",
			Help: "Total number of spike rows flagged across analyze requests",
		},
	)

	// Dataset Metrics
	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Rows in the current dataset snapshot by cleaning outcome",
		},
		[]string{"state"}, // "loaded", "kept", "dropped_datetime", "dropped_keyword"
	)

	DatasetReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_reloads_total",
			Help: "Total number of dataset reload attempts",
		},
		[]string{"result"}, // "success", "error"
	)

	DatasetLastReload = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_last_reload_timestamp",
			Help: "Unix timestamp of the last successful dataset reload",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of response cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of response cache misses",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// ObserveStage records how long a pipeline stage took.
func ObserveStage(stage string, start time.Time) {
	PipelineStageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// RecordSpikes adds n flagged rows.
func RecordSpikes(n int) {
	SpikesDetected.Add(float64(n))
}

// RecordCacheLookup counts a response cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// RecordDatasetReload records a reload attempt. On success the row gauges
// are set from the cleaning report.
func RecordDatasetReload(report models.CleanReport, err error) {
	if err != nil {
		DatasetReloads.WithLabelValues("error").Inc()
		return
	}
	DatasetReloads.WithLabelValues("success").Inc()
	DatasetLastReload.Set(float64(time.Now().Unix()))
	DatasetRows.WithLabelValues("loaded").Set(float64(report.InputRows))
	DatasetRows.WithLabelValues("kept").Set(float64(report.KeptRows))
	DatasetRows.WithLabelValues("dropped_datetime").Set(float64(report.DroppedDatetime))
	DatasetRows.WithLabelValues("dropped_keyword").Set(float64(report.DroppedKeyword))
}
