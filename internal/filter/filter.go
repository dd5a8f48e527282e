// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

// Package filter selects cleaned records by categorical values and date range.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/tomtom215/mediapulse/internal/models"
)

// Criteria holds optional inclusion filters. Empty lists and nil bounds
// impose no constraint. Bounds are inclusive.
type Criteria struct {
	Keywords     []string
	Platforms    []string
	ContentTypes []string
	Regions      []string
	Start        *time.Time
	End          *time.Time
}

// IsZero reports whether no constraint is set.
func (c Criteria) IsZero() bool {
	return len(c.Keywords) == 0 && len(c.Platforms) == 0 &&
		len(c.ContentTypes) == 0 && len(c.Regions) == 0 &&
		c.Start == nil && c.End == nil
}

// Result is the output of Apply.
type Result struct {
	// Records is sorted ascending by datetime and never nil.
	Records []models.Record
	// Filtered is true when at least one constraint was applied.
	Filtered bool
}

// Empty reports whether no record survived.
func (r Result) Empty() bool {
	return len(r.Records) == 0
}

// Apply returns the records matching c in a new slice. The input is not modified.
func Apply(records []models.Record, c Criteria) Result {
	keywords := lowerSet(c.Keywords)
	platforms := lowerSet(c.Platforms)
	contentTypes := lowerSet(c.ContentTypes)
	regions := lowerSet(c.Regions)

	out := make([]models.Record, 0, len(records))
	for i := range records {
		r := &records[i]
		if !in(keywords, r.Keyword) || !in(platforms, r.Platform) ||
			!in(contentTypes, r.ContentType) || !in(regions, r.Region) {
			continue
		}
		if c.Start != nil && r.Datetime.Before(*c.Start) {
			continue
		}
		if c.End != nil && r.Datetime.After(*c.End) {
			continue
		}
		out = append(out, *r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Datetime.Before(out[j].Datetime)
	})
	return Result{Records: out, Filtered: !c.IsZero()}
}

// lowerSet returns nil for an empty list so in() treats it as "match all".
func lowerSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}

func in(set map[string]struct{}, v string) bool {
	if set == nil {
		return true
	}
	_, ok := set[strings.ToLower(v)]
	return ok
}
