// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package pipeline

import (
	"github.com/tomtom215/mediapulse/internal/aggregate"
	"github.com/tomtom215/mediapulse/internal/analytics"
	"github.com/tomtom215/mediapulse/internal/config"
)

// Options configures a Service. Zero values fall back to the analytics
// package defaults; the zero DefaultFreq is daily.
type Options struct {
	DatasetPath string
	Delimiter   rune

	DefaultFreq     aggregate.Freq
	MAWindow        int
	SpikeThreshold  float64
	TrendingPeriods int
	TopK            int
	PreviewRows     int
}

// OptionsFromConfig maps the validated application config onto Options.
func OptionsFromConfig(cfg *config.Config) Options {
	freq, err := aggregate.ParseFreq(cfg.Analytics.DefaultFreq)
	if err != nil {
		freq = aggregate.Day
	}
	return Options{
		DatasetPath:     cfg.Dataset.Path,
		Delimiter:       cfg.Dataset.DelimiterRune(),
		DefaultFreq:     freq,
		MAWindow:        cfg.Analytics.MAWindow,
		SpikeThreshold:  cfg.Analytics.SpikeThreshold,
		TrendingPeriods: cfg.Analytics.TrendingPeriods,
		TopK:            cfg.Analytics.TopK,
		PreviewRows:     cfg.Analytics.PreviewRows,
	}
}

const defaultPreviewRows = 50

func (o Options) withDefaults() Options {
	if o.MAWindow <= 0 {
		o.MAWindow = analytics.DefaultMAWindow
	}
	if o.SpikeThreshold <= 0 {
		o.SpikeThreshold = analytics.DefaultSpikeThreshold
	}
	if o.TrendingPeriods <= 0 {
		o.TrendingPeriods = analytics.DefaultTrendingPeriods
	}
	if o.TopK <= 0 {
		o.TopK = analytics.DefaultTopK
	}
	if o.PreviewRows <= 0 {
		o.PreviewRows = defaultPreviewRows
	}
	return o
}
