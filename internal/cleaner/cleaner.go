// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package cleaner

import (
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/mediapulse/internal/dataset"
	"github.com/tomtom215/mediapulse/internal/models"
	"github.com/tomtom215/mediapulse/internal/schema"
)

// Defaults holds the value used for each optional field when its source
// column is missing. Categoricals also use Category for null cells.
var Defaults = struct {
	Category   string
	Count      int
	Engagement float64
}{
	Category:   models.Unknown,
	Count:      1,
	Engagement: 0,
}

// Clean converts a raw table into normalized records using the resolved
// column mapping. Rows with an unparseable datetime or a null keyword are
// dropped and counted in the report. The table is not modified.
func Clean(t *dataset.Table, m schema.Mapping) ([]models.Record, models.CleanReport) {
	report := models.CleanReport{InputRows: t.Len()}
	records := make([]models.Record, 0, t.Len())

	dtCol := m.Index(schema.RoleDatetime)
	kwCol := m.Index(schema.RoleKeyword)
	countCol := m.Index(schema.RoleCount)
	engCol := m.Index(schema.RoleEngagement)
	platformCol := m.Index(schema.RolePlatform)
	contentCol := m.Index(schema.RoleContentType)
	regionCol := m.Index(schema.RoleRegion)

	for row := 0; row < t.Len(); row++ {
		raw, ok := t.Value(row, dtCol)
		if !ok {
			report.DroppedDatetime++
			continue
		}
		dt, err := ParseDatetime(raw)
		if err != nil {
			report.DroppedDatetime++
			continue
		}

		kw, ok := t.Value(row, kwCol)
		if !ok {
			report.DroppedKeyword++
			continue
		}

		records = append(records, models.Record{
			Datetime:    dt,
			Keyword:     strings.TrimSpace(kw),
			Count:       countAt(t, row, countCol),
			Platform:    categoryAt(t, row, platformCol),
			ContentType: categoryAt(t, row, contentCol),
			Region:      categoryAt(t, row, regionCol),
			Engagement:  engagementAt(t, row, engCol),
		})
	}

	report.KeptRows = len(records)
	return records, report
}

func categoryAt(t *dataset.Table, row, col int) string {
	if col < 0 {
		return Defaults.Category
	}
	v, ok := t.Value(row, col)
	if !ok {
		return Defaults.Category
	}
	if v = strings.TrimSpace(v); v == "" {
		return Defaults.Category
	}
	return v
}

func countAt(t *dataset.Table, row, col int) int {
	if col < 0 {
		return Defaults.Count
	}
	v, ok := t.Value(row, col)
	if !ok {
		return 0
	}
	f, ok := toNumber(v)
	if !ok || f < 0 || f >= math.MaxInt64 {
		return 0
	}
	return int(f)
}

func engagementAt(t *dataset.Table, row, col int) float64 {
	if col < 0 {
		return Defaults.Engagement
	}
	v, ok := t.Value(row, col)
	if !ok {
		return 0
	}
	f, ok := toNumber(v)
	if !ok || f < 0 {
		return 0
	}
	return f
}

// toNumber coerces a cell to a finite float. ok is false for anything that
// is not a plain decimal number.
func toNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
