// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package models

import "time"

// FilterParams are the row filters shared by every analysis request.
// Lists match case-insensitively; Start and End are inclusive bounds in any
// format the dataset cleaner accepts.
type FilterParams struct {
	Keywords     []string `json:"keywords,omitempty"`
	Platforms    []string `json:"platforms,omitempty"`
	ContentTypes []string `json:"content_types,omitempty"`
	Regions      []string `json:"regions,omitempty"`
	Start        string   `json:"start,omitempty" validate:"omitempty,datetime_any"`
	End          string   `json:"end,omitempty" validate:"omitempty,datetime_any"`
}

// AnalyzeRequest carries the filter and aggregation options of an analysis.
// Freq and MAWindow fall back to configured defaults when zero.
type AnalyzeRequest struct {
	FilterParams
	Freq               string `json:"freq,omitempty" validate:"omitempty,freq"`
	EngagementWeighted bool   `json:"engagement_weighted"`
	MAWindow           int    `json:"ma_window,omitempty" validate:"omitempty,min=1,max=365"`
}

// TrendingRequest selects the top keywords over the most recent periods.
// Zero Periods and TopK fall back to configured defaults.
type TrendingRequest struct {
	FilterParams
	Freq               string `json:"freq,omitempty" validate:"omitempty,freq"`
	EngagementWeighted bool   `json:"engagement_weighted"`
	Periods            int    `json:"periods,omitempty" validate:"omitempty,min=1,max=1000"`
	TopK               int    `json:"top_k,omitempty" validate:"omitempty,min=1,max=100"`
}

// EngagementRequest groups engagement by one categorical column.
// An empty By means platform.
type EngagementRequest struct {
	FilterParams
	By string `json:"by,omitempty"`
}

// FilterEcho repeats the list filters of a request in the response.
type FilterEcho struct {
	Keywords     []string `json:"keywords"`
	Platforms    []string `json:"platforms"`
	ContentTypes []string `json:"content_types"`
	Regions      []string `json:"regions"`
}

// AnalyzeResponse is the result of a full analysis pass.
type AnalyzeResponse struct {
	Filters    FilterEcho         `json:"filters"`
	AggPreview []AggregatedRecord `json:"agg_preview"`
	Stats      map[string]Summary `json:"stats"`
	Spikes     []SpikeRecord      `json:"spikes"`
	TotalRows  int                `json:"total_rows"`
	Keywords   []string           `json:"keywords"`
	Freq       string             `json:"freq"`
	Weighted   bool               `json:"engagement_weighted"`
}

// RegionSummary lists the top content types of one region.
type RegionSummary struct {
	Region          string              `json:"region"`
	TopContentTypes []ContentEngagement `json:"top_content_types"`
}

// FilterOptions lists the distinct lowercased values available for filtering.
type FilterOptions struct {
	Keywords     []string   `json:"keywords"`
	Platforms    []string   `json:"platforms"`
	ContentTypes []string   `json:"content_types"`
	Regions      []string   `json:"regions"`
	MinDatetime  *time.Time `json:"min_datetime,omitempty"`
	MaxDatetime  *time.Time `json:"max_datetime,omitempty"`
}

// DatasetInfo describes the currently loaded dataset snapshot.
type DatasetInfo struct {
	Path     string            `json:"path"`
	Version  string            `json:"version"`
	LoadedAt time.Time         `json:"loaded_at"`
	Report   CleanReport       `json:"report"`
	Columns  []string          `json:"columns"`
	Mapping  map[string]string `json:"mapping"`
}
