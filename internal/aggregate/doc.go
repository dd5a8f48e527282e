// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

// Package aggregate buckets records into periods and sums a metric per
// keyword and optional grouping dimensions.
//
// Periods are computed in UTC: day floors to midnight, week to Monday,
// month to the first of the month, and a fixed duration to an
// epoch-aligned boundary.
package aggregate
