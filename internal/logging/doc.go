// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

// Package logging provides centralized zerolog-based structured logging for MediaPulse.
//
// JSON output is the default and suits production log shippers. Console output
// is meant for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("path", cfg.Dataset.Path).Msg("Dataset configured")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Analyze failed")
//
// # Configuration
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event is
// never written.
package logging
