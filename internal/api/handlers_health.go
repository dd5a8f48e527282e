// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/mediapulse/internal/middleware"
	"github.com/tomtom215/mediapulse/internal/models"
)

// Health reports overall status. It always answers 200; Status is
// "degraded" while the dataset cannot be loaded.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Status:      "healthy",
		Version:     h.version,
		DatasetPath: h.datasetPath,
		Uptime:      time.Since(h.startTime).Seconds(),
	}

	info, err := h.svc.DatasetInfo(r.Context())
	if err != nil {
		health.Status = "degraded"
	} else {
		loadedAt := info.LoadedAt
		health.DatasetLoaded = true
		health.DatasetLoadedAt = &loadedAt
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			RequestID: middleware.GetRequestID(r.Context()),
		},
	})
}

// HealthLive is the Kubernetes liveness probe. The process answering is
// enough.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady is the Kubernetes readiness probe. Ready means the dataset
// loads.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ready(r.Context()); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, CodeUnavailable, "Dataset not loaded", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   map[string]interface{}{"ready": true},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			RequestID: middleware.GetRequestID(r.Context()),
		},
	})
}
