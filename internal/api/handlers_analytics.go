// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package api

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/mediapulse/internal/logging"
	"github.com/tomtom215/mediapulse/internal/models"
	"github.com/tomtom215/mediapulse/internal/pipeline"
)

// Analyze handles POST /api/v1/analyze.
//
// The JSON body is a models.AnalyzeRequest. An empty body analyzes the whole
// dataset with default options.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.AnalyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeBadRequest, "Invalid JSON body", err)
		return
	}

	resp, meta, err := h.svc.Analyze(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, resp, start, meta)
}

// RegionSummary handles GET /api/v1/regions/{region}/summary.
func (h *Handler) RegionSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	region := chi.URLParam(r, "region")
	if region == "" {
		respondError(w, r, http.StatusBadRequest, CodeBadRequest, "region is required", nil)
		return
	}

	resp, meta, err := h.svc.RegionSummary(r.Context(), region)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, resp, start, meta)
}

// Trending handles GET /api/v1/trending.
//
// Query parameters: freq, engagement_weighted, periods, top_k and the
// comma-separated filters keywords, platforms, content_types, regions plus
// start and end.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := models.TrendingRequest{
		FilterParams: filterParamsFromQuery(r),
		Freq:         r.URL.Query().Get("freq"),
	}
	var err error
	if req.EngagementWeighted, err = queryBool(r, "engagement_weighted"); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
		return
	}
	if req.Periods, err = queryInt(r, "periods"); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
		return
	}
	if req.TopK, err = queryInt(r, "top_k"); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
		return
	}

	resp, meta, err := h.svc.Trending(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, resp, start, meta)
}

// Engagement handles GET /api/v1/engagement?by=platform.
func (h *Handler) Engagement(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := models.EngagementRequest{
		FilterParams: filterParamsFromQuery(r),
		By:           r.URL.Query().Get("by"),
	}

	resp, meta, err := h.svc.Engagement(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, resp, start, meta)
}

// FilterOptions handles GET /api/v1/options.
func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	resp, meta, err := h.svc.FilterOptions(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, resp, start, meta)
}

// Export handles POST /api/v1/export. The body matches Analyze; the
// response is the full aggregate as a CSV attachment.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, CodeBadRequest, "Invalid JSON body", err)
		return
	}

	// Buffered so failures can still produce a JSON error.
	var buf bytes.Buffer
	if err := h.svc.ExportCSV(r.Context(), req, &buf); err != nil {
		respondServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+pipeline.ExportFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write CSV export")
	}
}

// DatasetInfo handles GET /api/v1/dataset.
func (h *Handler) DatasetInfo(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	info, err := h.svc.DatasetInfo(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, r, info, start, pipeline.Meta{Version: info.Version})
}
