// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package analytics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/mediapulse/internal/models"
)

// DefaultSpikeThreshold is the |z| above which a row is flagged.
const DefaultSpikeThreshold = 2.5

// DetectSpikes flags rows whose z-score within their keyword group exceeds
// threshold in absolute value. The z-score uses the population standard
// deviation, with 1.0 substituted when it is zero. The result is sorted by
// keyword then datetime and is empty, never nil, when nothing is flagged.
func DetectSpikes(agg []models.AggregatedRecord, threshold float64) []models.SpikeRecord {
	groups := make(map[string][]int)
	var keywords []string
	for i, r := range agg {
		if _, ok := groups[r.Keyword]; !ok {
			keywords = append(keywords, r.Keyword)
		}
		groups[r.Keyword] = append(groups[r.Keyword], i)
	}

	out := make([]models.SpikeRecord, 0)
	values := make([]float64, 0, len(agg))
	for _, kw := range keywords {
		idx := groups[kw]
		values = values[:0]
		for _, i := range idx {
			values = append(values, agg[i].Count)
		}

		mean, std := stat.PopMeanStdDev(values, nil)
		if std == 0 || math.IsNaN(std) {
			std = 1.0
		}

		for n, i := range idx {
			z := (values[n] - mean) / std
			if math.Abs(z) > threshold {
				out = append(out, models.SpikeRecord{AggregatedRecord: agg[i], ZScore: z})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Keyword != out[j].Keyword {
			return out[i].Keyword < out[j].Keyword
		}
		return out[i].Datetime.Before(out[j].Datetime)
	})
	return out
}
