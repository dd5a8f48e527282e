// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/mediapulse/internal/aggregate"
	"github.com/tomtom215/mediapulse/internal/analytics"
	"github.com/tomtom215/mediapulse/internal/metrics"
	"github.com/tomtom215/mediapulse/internal/models"
)

// RegionSummary ranks content types in region by total engagement.
func (s *Service) RegionSummary(ctx context.Context, region string) (*models.RegionSummary, Meta, error) {
	snap, err := s.snapshotFor(ctx, nil)
	if err != nil {
		return nil, Meta{}, err
	}
	return cached(s, snap, "RegionSummary", strings.ToLower(region), func() (*models.RegionSummary, error) {
		top := analytics.RegionTopContent(snap.Data.Records, region, s.opts.TopK)
		if len(top) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoDataForRegion, region)
		}
		return &models.RegionSummary{Region: region, TopContentTypes: top}, nil
	})
}

// Trending returns the keywords with the largest totals over the most
// recent periods of the filtered data.
func (s *Service) Trending(ctx context.Context, req models.TrendingRequest) ([]models.KeywordTotal, Meta, error) {
	snap, err := s.snapshotFor(ctx, &req)
	if err != nil {
		return nil, Meta{}, err
	}
	return cached(s, snap, "Trending", req, func() ([]models.KeywordTotal, error) {
		freq, err := s.freq(req.Freq)
		if err != nil {
			return nil, err
		}
		records, err := filtered(ctx, snap, req.FilterParams)
		if err != nil {
			return nil, err
		}

		agg, err := aggregate.Aggregate(records, aggregate.Options{
			Freq:   freq,
			Metric: aggregate.MetricFor(req.EngagementWeighted),
		})
		if err != nil {
			return nil, err
		}

		periods := req.Periods
		if periods <= 0 {
			periods = s.opts.TrendingPeriods
		}
		topK := req.TopK
		if topK <= 0 {
			topK = s.opts.TopK
		}
		return analytics.TopTrending(agg, periods, topK), nil
	})
}

// Engagement describes the engagement distribution of the filtered data
// grouped by req.By.
func (s *Service) Engagement(ctx context.Context, req models.EngagementRequest) ([]models.EngagementStats, Meta, error) {
	if req.By == "" {
		req.By = string(aggregate.DimPlatform)
	}
	if !validDistributionColumn(req.By) {
		return nil, Meta{}, fmt.Errorf("%w: %q", analytics.ErrInvalidColumn, req.By)
	}

	snap, err := s.snapshotFor(ctx, &req)
	if err != nil {
		return nil, Meta{}, err
	}
	return cached(s, snap, "Engagement", req, func() ([]models.EngagementStats, error) {
		records, err := filtered(ctx, snap, req.FilterParams)
		if err != nil {
			return nil, err
		}
		defer metrics.ObserveStage("distribution", time.Now())
		return analytics.EngagementDistribution(records, req.By)
	})
}

func validDistributionColumn(by string) bool {
	for _, c := range analytics.DistributionDimensions {
		if c == by {
			return true
		}
	}
	return false
}

// FilterOptions lists the distinct lowercased values of each categorical
// column and the dataset's datetime range.
func (s *Service) FilterOptions(ctx context.Context) (*models.FilterOptions, Meta, error) {
	snap, err := s.snapshotFor(ctx, nil)
	if err != nil {
		return nil, Meta{}, err
	}
	return cached(s, snap, "FilterOptions", nil, func() (*models.FilterOptions, error) {
		return filterOptions(snap.Data.Records), nil
	})
}

func filterOptions(records []models.Record) *models.FilterOptions {
	keywords := newValueSet()
	platforms := newValueSet()
	contentTypes := newValueSet()
	regions := newValueSet()

	out := &models.FilterOptions{}
	for i := range records {
		r := &records[i]
		keywords.add(r.Keyword)
		platforms.add(r.Platform)
		contentTypes.add(r.ContentType)
		regions.add(r.Region)

		if out.MinDatetime == nil || r.Datetime.Before(*out.MinDatetime) {
			t := r.Datetime
			out.MinDatetime = &t
		}
		if out.MaxDatetime == nil || r.Datetime.After(*out.MaxDatetime) {
			t := r.Datetime
			out.MaxDatetime = &t
		}
	}

	out.Keywords = keywords.sorted()
	out.Platforms = platforms.sorted()
	out.ContentTypes = contentTypes.sorted()
	out.Regions = regions.sorted()
	return out
}

// valueSet collects distinct lowercased strings.
type valueSet map[string]struct{}

func newValueSet() valueSet {
	return make(valueSet)
}

func (v valueSet) add(s string) {
	v[strings.ToLower(s)] = struct{}{}
}

func (v valueSet) sorted() []string {
	out := make([]string, 0, len(v))
	for s := range v {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
