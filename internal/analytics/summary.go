// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/mediapulse/internal/models"
)

// DefaultMAWindow is the moving-average width used when none is given.
const DefaultMAWindow = 3

// Peak returns the maximum Count truncated to int, or 0 for an empty series.
func Peak(series []models.AggregatedRecord) int {
	if len(series) == 0 {
		return 0
	}
	peak := series[0].Count
	for _, r := range series[1:] {
		if r.Count > peak {
			peak = r.Count
		}
	}
	return int(peak)
}

// Average returns the mean Count, or 0 for an empty series.
func Average(series []models.AggregatedRecord) float64 {
	if len(series) == 0 {
		return 0
	}
	var sum float64
	for _, r := range series {
		sum += r.Count
	}
	return sum / float64(len(series))
}

// TrendOf compares the first and last points of a time-ordered series.
func TrendOf(series []models.AggregatedRecord) models.Trend {
	if len(series) < 2 {
		return models.TrendFlat
	}
	first, last := series[0].Count, series[len(series)-1].Count
	switch {
	case last > first:
		return models.TrendUp
	case last < first:
		return models.TrendDown
	default:
		return models.TrendFlat
	}
}

// PercentChange is (last-first)/max(first,1)*100, or 0 with fewer than two points.
func PercentChange(series []models.AggregatedRecord) float64 {
	if len(series) < 2 {
		return 0
	}
	first, last := series[0].Count, series[len(series)-1].Count
	return (last - first) / math.Max(first, 1) * 100
}

// MovingAverage is a trailing mean over up to w points. Leading positions
// average whatever is available, so the output always has len(series) values.
func MovingAverage(series []models.AggregatedRecord, w int) []float64 {
	if w <= 0 {
		w = DefaultMAWindow
	}
	out := make([]float64, len(series))
	for i := range series {
		start := i - w + 1
		if start < 0 {
			start = 0
		}
		var sum float64
		for _, r := range series[start : i+1] {
			sum += r.Count
		}
		out[i] = sum / float64(i+1-start)
	}
	return out
}

// ComputeAll builds the full summary for one keyword series. Avg and
// percent change are rounded to two decimals.
func ComputeAll(series []models.AggregatedRecord, w int) models.Summary {
	return models.Summary{
		Peak:          Peak(series),
		Avg:           round2(Average(series)),
		Trend:         TrendOf(series),
		PercentChange: round2(PercentChange(series)),
		MovingAverage: MovingAverage(series, w),
	}
}

// SeriesFor returns the rows of agg whose keyword matches case-insensitively,
// ordered by datetime.
func SeriesFor(agg []models.AggregatedRecord, keyword string) []models.AggregatedRecord {
	out := make([]models.AggregatedRecord, 0)
	for _, r := range agg {
		if strings.EqualFold(r.Keyword, keyword) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Datetime.Before(out[j].Datetime)
	})
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
