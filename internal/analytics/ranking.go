// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package analytics

import (
	"sort"
	"strings"

	"github.com/tomtom215/mediapulse/internal/aggregate"
	"github.com/tomtom215/mediapulse/internal/models"
)

const (
	// DefaultTrendingPeriods is how many recent periods TopTrending considers.
	DefaultTrendingPeriods = 7
	// DefaultTopK bounds ranked results.
	DefaultTopK = 5
)

// TopTrending sums Count per keyword over the most recent lastN distinct
// periods in agg and returns the topK keywords by descending sum.
func TopTrending(agg []models.AggregatedRecord, lastN, topK int) []models.KeywordTotal {
	if lastN <= 0 {
		lastN = DefaultTrendingPeriods
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	periods := aggregate.Periods(agg)
	if len(periods) > lastN {
		periods = periods[len(periods)-lastN:]
	}

	sums := make(map[string]float64)
	if len(periods) > 0 {
		cutoff := periods[0]
		for _, r := range agg {
			if !r.Datetime.Before(cutoff) {
				sums[r.Keyword] += r.Count
			}
		}
	}

	out := make([]models.KeywordTotal, 0, len(sums))
	for kw, c := range sums {
		out = append(out, models.KeywordTotal{Keyword: kw, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Keyword < out[j].Keyword
	})
	if len(out) > topK {
		out = out[:topK]
	}
	return out
}

// RegionTopContent sums engagement per content type for records in region
// (case-insensitive) and returns the topK by descending total. An unknown
// region yields an empty slice.
func RegionTopContent(records []models.Record, region string, topK int) []models.ContentEngagement {
	if topK <= 0 {
		topK = DefaultTopK
	}

	sums := make(map[string]float64)
	for i := range records {
		if strings.EqualFold(records[i].Region, region) {
			sums[records[i].ContentType] += records[i].Engagement
		}
	}

	out := make([]models.ContentEngagement, 0, len(sums))
	for ct, e := range sums {
		out = append(out, models.ContentEngagement{ContentType: ct, Engagement: e})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Engagement != out[j].Engagement {
			return out[i].Engagement > out[j].Engagement
		}
		return out[i].ContentType < out[j].ContentType
	})
	if len(out) > topK {
		out = out[:topK]
	}
	return out
}
