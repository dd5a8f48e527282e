// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

// Package services adapts MediaPulse's long-running components to
// suture.Service so the supervisor tree can start, restart and stop them.
//
//   - HTTPServerService: the API server (api layer)
//   - DatasetWatcherService: periodic dataset reload and cache cleanup
//     (data layer)
//
// Each wrapper implements Serve(ctx) error and String() string. Services
// depend on small interfaces rather than concrete types so they can be
// tested with stubs.
package services
