// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package pipeline

import (
	"context"
	"sort"
	"time"

	"github.com/tomtom215/mediapulse/internal/aggregate"
	"github.com/tomtom215/mediapulse/internal/analytics"
	"github.com/tomtom215/mediapulse/internal/dataset"
	"github.com/tomtom215/mediapulse/internal/logging"
	"github.com/tomtom215/mediapulse/internal/metrics"
	"github.com/tomtom215/mediapulse/internal/models"
)

// Analyze filters the dataset, aggregates it by keyword, period and every
// categorical dimension, and summarizes each keyword's series.
func (s *Service) Analyze(ctx context.Context, req models.AnalyzeRequest) (*models.AnalyzeResponse, Meta, error) {
	snap, err := s.snapshotFor(ctx, &req)
	if err != nil {
		return nil, Meta{}, err
	}
	return cached(s, snap, "Analyze", req, func() (*models.AnalyzeResponse, error) {
		return s.analyze(ctx, snap, req)
	})
}

func (s *Service) analyze(ctx context.Context, snap *dataset.Snapshot[*Prepared], req models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	records, agg, freq, err := s.aggregateFor(ctx, snap, req)
	if err != nil {
		return nil, err
	}

	window := req.MAWindow
	if window <= 0 {
		window = s.opts.MAWindow
	}

	start := time.Now()
	keywords := distinctKeywords(records)
	stats := make(map[string]models.Summary, len(keywords))
	for _, kw := range keywords {
		stats[kw] = analytics.ComputeAll(analytics.SeriesFor(agg, kw), window)
	}
	metrics.ObserveStage("summarize", start)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	spikes := analytics.DetectSpikes(agg, s.opts.SpikeThreshold)
	metrics.ObserveStage("spikes", start)
	metrics.RecordSpikes(len(spikes))

	preview := agg
	if len(preview) > s.opts.PreviewRows {
		preview = preview[:s.opts.PreviewRows]
	}

	logging.Ctx(ctx).Debug().
		Int("rows", len(records)).
		Int("aggregated", len(agg)).
		Int("keywords", len(keywords)).
		Int("spikes", len(spikes)).
		Str("freq", freq.String()).
		Msg("Analysis complete")

	return &models.AnalyzeResponse{
		Filters:    echoFilters(req.FilterParams),
		AggPreview: preview,
		Stats:      stats,
		Spikes:     spikes,
		TotalRows:  len(records),
		Keywords:   keywords,
		Freq:       freq.String(),
		Weighted:   req.EngagementWeighted,
	}, nil
}

// aggregateFor runs filter and aggregate for an analyze-shaped request.
func (s *Service) aggregateFor(ctx context.Context, snap *dataset.Snapshot[*Prepared], req models.AnalyzeRequest) ([]models.Record, []models.AggregatedRecord, aggregate.Freq, error) {
	freq, err := s.freq(req.Freq)
	if err != nil {
		return nil, nil, freq, err
	}

	records, err := filtered(ctx, snap, req.FilterParams)
	if err != nil {
		return nil, nil, freq, err
	}

	start := time.Now()
	agg, err := aggregate.Aggregate(records, aggregate.Options{
		Freq:    freq,
		GroupBy: aggregate.AllDimensions,
		Metric:  aggregate.MetricFor(req.EngagementWeighted),
	})
	metrics.ObserveStage("aggregate", start)
	if err != nil {
		return nil, nil, freq, err
	}
	return records, agg, freq, ctx.Err()
}

func (s *Service) freq(name string) (aggregate.Freq, error) {
	if name == "" {
		return s.opts.DefaultFreq, nil
	}
	return aggregate.ParseFreq(name)
}

// distinctKeywords returns the keyword values present in records, sorted.
func distinctKeywords(records []models.Record) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for i := range records {
		kw := records[i].Keyword
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

func echoFilters(p models.FilterParams) models.FilterEcho {
	return models.FilterEcho{
		Keywords:     nonNil(p.Keywords),
		Platforms:    nonNil(p.Platforms),
		ContentTypes: nonNil(p.ContentTypes),
		Regions:      nonNil(p.Regions),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
