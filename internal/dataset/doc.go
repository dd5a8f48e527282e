// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

// Package dataset loads the mentions CSV and keeps a versioned, prepared
// snapshot of it in memory.
//
// Load returns ErrDatasetNotFound when the file is missing. Cells matching
// NullTokens are reported as null by Table.Value, mirroring the way pandas
// marks missing values.
//
// Store reloads lazily on Snapshot and eagerly on Refresh. The dataset
// watcher service calls Refresh on an interval. Prepared data is shared by
// every request and must never be mutated.
package dataset
