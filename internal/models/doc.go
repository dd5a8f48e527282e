// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

/*
Package models defines the data structures shared across MediaPulse.

Key Components:

  - Record: a cleaned mention row (datetime, keyword, count, categoricals, engagement)
  - AggregatedRecord: a per-period, per-group sum with the metric always exposed as count
  - Summary, SpikeRecord, KeywordTotal, EngagementStats, ContentEngagement: statistics outputs
  - AnalyzeRequest / AnalyzeResponse: the analysis request and its result
  - APIResponse: the standard JSON envelope

All values are derived and transient; nothing here is persisted.
*/
package models
