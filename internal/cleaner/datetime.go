// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package cleaner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrUnparseableDatetime is returned by ParseDatetime when no parser accepts the value.
var ErrUnparseableDatetime = errors.New("unparseable datetime")

// fallbackLayouts are tried after dateparse gives up, day-first variants included.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
}

// ParseDatetime parses a free-form date or timestamp. Values without a zone
// are read as UTC; zoned values are converted to UTC.
func ParseDatetime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnparseableDatetime
	}

	if t, err := dateparse.ParseIn(s, time.UTC); err == nil {
		return t.UTC(), nil
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDatetime, s)
}
