// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package aggregate

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
	"time"
)

// ErrInvalidFreq is returned when a period granularity cannot be parsed.
var ErrInvalidFreq = errors.New("invalid frequency")

type freqKind int

const (
	kindDay freqKind = iota
	kindWeek
	kindMonth
	kindDuration
)

// Freq is a period granularity. The zero value is daily.
type Freq struct {
	kind freqKind
	d    time.Duration
}

var (
	Day   = Freq{kind: kindDay}
	Week  = Freq{kind: kindWeek}
	Month = Freq{kind: kindMonth}
)

// Every returns a fixed-duration granularity.
func Every(d time.Duration) (Freq, error) {
	if d <= 0 {
		return Freq{}, fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidFreq, d)
	}
	return Freq{kind: kindDuration, d: d}, nil
}

// ParseFreq accepts day/d/D, week/w/W, month/m/M and any positive Go
// duration string such as "6h".
func ParseFreq(s string) (Freq, error) {
	switch strings.TrimSpace(s) {
	case "day", "d", "D", "daily":
		return Day, nil
	case "week", "w", "W", "weekly":
		return Week, nil
	case "month", "m", "M", "monthly":
		return Month, nil
	case "":
		return Freq{}, fmt.Errorf("%w: empty", ErrInvalidFreq)
	}

	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return Freq{}, fmt.Errorf("%w: %q", ErrInvalidFreq, s)
	}
	return Every(d)
}

// String returns the canonical name, or the duration for fixed-width periods.
func (f Freq) String() string {
	switch f.kind {
	case kindWeek:
		return "week"
	case kindMonth:
		return "month"
	case kindDuration:
		return f.d.String()
	default:
		return "day"
	}
}

// Floor returns the start of the period containing t, in UTC.
func (f Freq) Floor(t time.Time) time.Time {
	t = t.UTC()
	switch f.kind {
	case kindWeek:
		midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		// Monday is the ISO week start.
		offset := (int(midnight.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -offset)
	case kindMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case kindDuration:
		return floorEpoch(t, f.d)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}

// floorEpoch floors to a multiple of d counted from the Unix epoch.
// time.Truncate counts from the zero Time instead. The remainder is taken
// from Unix seconds and nanoseconds separately since UnixNano only covers
// the years 1678 to 2262.
func floorEpoch(t time.Time, d time.Duration) time.Time {
	step := int64(d)
	sec := t.Unix() % step
	if sec < 0 {
		sec += step
	}
	// (sec*1e9 + nsec) mod step, in 128 bits.
	hi, lo := bits.Mul64(uint64(sec), uint64(time.Second))
	lo, carry := bits.Add64(lo, uint64(t.Nanosecond()), 0)
	rem := bits.Rem64(hi+carry, lo, uint64(step))
	return t.Add(-time.Duration(rem))
}

// periodKey identifies a period start for map lookups.
type periodKey struct {
	sec  int64
	nsec int
}

func keyOf(t time.Time) periodKey {
	return periodKey{sec: t.Unix(), nsec: t.Nanosecond()}
}
