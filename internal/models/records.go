// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package models

import (
	"time"
)

// Unknown fills categorical fields that are absent or null in the source.
const Unknown = "unknown"

// Record is one cleaned mention row.
// Datetime and Keyword are always set; the remaining fields carry defaults
// when the source lacks them.
type Record struct {
	Datetime    time.Time `json:"datetime"`
	Keyword     string    `json:"keyword"`
	Count       int       `json:"count"`
	Platform    string    `json:"platform"`
	ContentType string    `json:"content_type"`
	Region      string    `json:"region"`
	Engagement  float64   `json:"engagement"`
}

// AggregatedRecord is one summed row per (keyword, period, grouping columns).
// Count holds the summed metric whichever metric was requested. The optional
// grouping fields stay empty when the aggregation did not group by them.
type AggregatedRecord struct {
	Keyword     string    `json:"keyword"`
	Datetime    time.Time `json:"datetime"`
	Platform    string    `json:"platform,omitempty"`
	ContentType string    `json:"content_type,omitempty"`
	Region      string    `json:"region,omitempty"`
	Count       float64   `json:"count"`
}

// Trend is the direction of a series from its first to its last point.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// Summary holds the per-keyword series statistics.
type Summary struct {
	Peak          int       `json:"peak"`
	Avg           float64   `json:"avg"`
	Trend         Trend     `json:"trend"`
	PercentChange float64   `json:"percent_change"`
	MovingAverage []float64 `json:"moving_average"`
}

// SpikeRecord is an aggregated row flagged as an outlier within its keyword.
type SpikeRecord struct {
	AggregatedRecord
	ZScore float64 `json:"z_score"`
}

// KeywordTotal is a keyword with its summed metric over a window.
type KeywordTotal struct {
	Keyword string  `json:"keyword"`
	Count   float64 `json:"count"`
}

// EngagementStats describes the engagement distribution of one group.
// Std is the sample standard deviation and is nil for single-row groups.
type EngagementStats struct {
	Group  string   `json:"group"`
	Count  int      `json:"count"`
	Mean   float64  `json:"mean"`
	Median float64  `json:"median"`
	Std    *float64 `json:"std"`
	Max    float64  `json:"max"`
}

// ContentEngagement is total engagement for one content type.
type ContentEngagement struct {
	ContentType string  `json:"content_type"`
	Engagement  float64 `json:"engagement"`
}

// CleanReport counts what the cleaner kept and dropped.
type CleanReport struct {
	InputRows       int `json:"input_rows"`
	KeptRows        int `json:"kept_rows"`
	DroppedDatetime int `json:"dropped_datetime"`
	DroppedKeyword  int `json:"dropped_keyword"`
}
