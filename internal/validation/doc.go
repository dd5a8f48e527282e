// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

// Package validation validates request structs with go-playground/validator.
//
// A single validator instance is shared process-wide so struct metadata is
// parsed once. Field names in errors are the JSON names, so a client sees
// "ma_window" rather than "MAWindow".
//
// # Custom Tags
//
//   - freq: accepted by aggregate.ParseFreq
//   - datetime_any: accepted by cleaner.ParseDatetime
//
// # Usage
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package validation
