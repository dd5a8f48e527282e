// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package analytics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/go-gota/gota/series"

	"github.com/tomtom215/mediapulse/internal/models"
)

// ErrInvalidColumn is returned when a grouping dimension does not exist.
var ErrInvalidColumn = errors.New("invalid column")

// DistributionDimensions lists the accepted values for EngagementDistribution's by.
var DistributionDimensions = []string{"platform", "content_type", "region", "keyword"}

func dimensionGetter(by string) (func(*models.Record) string, error) {
	switch by {
	case "platform":
		return func(r *models.Record) string { return r.Platform }, nil
	case "content_type":
		return func(r *models.Record) string { return r.ContentType }, nil
	case "region":
		return func(r *models.Record) string { return r.Region }, nil
	case "keyword":
		return func(r *models.Record) string { return r.Keyword }, nil
	}
	return nil, fmt.Errorf("%w: %q not a column", ErrInvalidColumn, by)
}

// EngagementDistribution reports count, mean, median, sample std and max of
// engagement for each distinct value of by, sorted by group name.
func EngagementDistribution(records []models.Record, by string) ([]models.EngagementStats, error) {
	get, err := dimensionGetter(by)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]float64)
	for i := range records {
		g := get(&records[i])
		groups[g] = append(groups[g], records[i].Engagement)
	}

	names := make([]string, 0, len(groups))
	for g := range groups {
		names = append(names, g)
	}
	sort.Strings(names)

	out := make([]models.EngagementStats, 0, len(names))
	for _, g := range names {
		s := series.Floats(groups[g])
		st := models.EngagementStats{
			Group:  g,
			Count:  s.Len(),
			Mean:   s.Mean(),
			Median: s.Median(),
			Max:    s.Max(),
		}
		if s.Len() > 1 {
			if sd := s.StdDev(); !math.IsNaN(sd) {
				st.Std = &sd
			}
		}
		out = append(out, st)
	}
	return out, nil
}
