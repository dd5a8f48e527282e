// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

// Package cleaner normalizes raw dataset rows into models.Record values.
//
// Datetimes go through a free-form parser and end up in UTC. Missing
// categoricals become "unknown", missing counts become 1, missing engagement
// becomes 0. Rows without a usable datetime or keyword are dropped and
// counted in the returned report; they never fail the call.
package cleaner
