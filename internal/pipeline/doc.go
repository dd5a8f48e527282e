// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

// Package pipeline runs the analyzer end to end for one request:
// load, resolve, clean, filter, aggregate and summarize.
//
// The cleaned dataset is prepared once per file version and shared
// read-only by every request. Each request then runs its own filter and
// aggregation pass over that snapshot, so requests never contend on
// anything but the snapshot lock.
//
// When a cache is configured, results are cached under a key derived from
// the operation, its parameters and the dataset version, so a reloaded
// file never serves stale answers.
//
// # Errors
//
//   - dataset.ErrDatasetNotFound: the configured file is missing
//   - ErrNoDataForFilters: no record matched the request filters
//   - ErrNoDataForRegion: the region has no records
//   - analytics.ErrInvalidColumn: unknown engagement grouping column
//   - *validation.RequestValidationError: the request failed validation
package pipeline
