// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

// Package analytics computes statistics over aggregated keyword series.
//
// Series functions (Peak, Average, TrendOf, PercentChange, MovingAverage,
// ComputeAll) expect a single keyword ordered by datetime; use SeriesFor to
// build one. TopTrending and DetectSpikes work on a full aggregate.
// EngagementDistribution and RegionTopContent work on cleaned records.
//
// All functions are pure and never modify their inputs.
package analytics
