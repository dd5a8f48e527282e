// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package aggregate

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/tomtom215/mediapulse/internal/models"
)

// ErrUnknownDimension is returned when a group-by dimension is not one of
// platform, content_type or region.
var ErrUnknownDimension = errors.New("unknown dimension")

// Dimension is an extra grouping column.
type Dimension string

const (
	DimPlatform    Dimension = "platform"
	DimContentType Dimension = "content_type"
	DimRegion      Dimension = "region"
)

// AllDimensions is the grouping used by the analyze operation.
var AllDimensions = []Dimension{DimPlatform, DimContentType, DimRegion}

// ParseDimension validates a dimension name.
func ParseDimension(s string) (Dimension, error) {
	switch d := Dimension(s); d {
	case DimPlatform, DimContentType, DimRegion:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDimension, s)
}

func (d Dimension) value(r *models.Record) string {
	switch d {
	case DimPlatform:
		return r.Platform
	case DimContentType:
		return r.ContentType
	default:
		return r.Region
	}
}

func (d Dimension) set(a *models.AggregatedRecord, v string) {
	switch d {
	case DimPlatform:
		a.Platform = v
	case DimContentType:
		a.ContentType = v
	case DimRegion:
		a.Region = v
	}
}

// Metric selects the summed field.
type Metric int

const (
	MetricCount Metric = iota
	MetricEngagement
)

// MetricFor returns MetricEngagement when weighting is requested.
func MetricFor(engagementWeighted bool) Metric {
	if engagementWeighted {
		return MetricEngagement
	}
	return MetricCount
}

func (m Metric) value(r *models.Record) float64 {
	if m == MetricEngagement {
		return r.Engagement
	}
	return float64(r.Count)
}

// String names the source field.
func (m Metric) String() string {
	if m == MetricEngagement {
		return "engagement"
	}
	return "count"
}

// Options controls Aggregate.
type Options struct {
	Freq    Freq
	GroupBy []Dimension
	Metric  Metric
}

type groupKey struct {
	keyword string
	period  periodKey
	dims    [3]string
}

// Aggregate sums the chosen metric per (keyword, period, GroupBy...) and
// returns the rows sorted by that tuple. The sum is always reported in Count.
func Aggregate(records []models.Record, opts Options) ([]models.AggregatedRecord, error) {
	if len(opts.GroupBy) > len(groupKey{}.dims) {
		return nil, fmt.Errorf("%w: at most %d group-by dimensions", ErrUnknownDimension, len(groupKey{}.dims))
	}
	for _, d := range opts.GroupBy {
		if _, err := ParseDimension(string(d)); err != nil {
			return nil, err
		}
	}

	index := make(map[groupKey]int)
	out := make([]models.AggregatedRecord, 0)

	for i := range records {
		r := &records[i]
		period := opts.Freq.Floor(r.Datetime)
		key := groupKey{keyword: r.Keyword, period: keyOf(period)}
		for j, d := range opts.GroupBy {
			key.dims[j] = d.value(r)
		}

		pos, ok := index[key]
		if !ok {
			agg := models.AggregatedRecord{Keyword: r.Keyword, Datetime: period}
			for j, d := range opts.GroupBy {
				d.set(&agg, key.dims[j])
			}
			out = append(out, agg)
			pos = len(out) - 1
			index[key] = pos
		}
		out[pos].Count += opts.Metric.value(r)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := &out[i], &out[j]
		if a.Keyword != b.Keyword {
			return a.Keyword < b.Keyword
		}
		if !a.Datetime.Equal(b.Datetime) {
			return a.Datetime.Before(b.Datetime)
		}
		for _, d := range opts.GroupBy {
			if va, vb := dimOf(a, d), dimOf(b, d); va != vb {
				return va < vb
			}
		}
		return false
	})
	return out, nil
}

func dimOf(a *models.AggregatedRecord, d Dimension) string {
	switch d {
	case DimPlatform:
		return a.Platform
	case DimContentType:
		return a.ContentType
	default:
		return a.Region
	}
}

// Periods returns the distinct period starts present in agg, ascending.
func Periods(agg []models.AggregatedRecord) []time.Time {
	seen := make(map[periodKey]struct{}, len(agg))
	var out []time.Time
	for i := range agg {
		k := keyOf(agg[i].Datetime)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, agg[i].Datetime)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
