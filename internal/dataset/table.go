// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package dataset

import (
	"github.com/go-gota/gota/dataframe"
)

// Table is a read-only, string-typed view of a loaded dataset.
type Table struct {
	headers []string
	cols    [][]string
	nulls   [][]bool
	rows    int
}

// newTable copies df into a Table. headers are the raw source names; gota
// renames blank or duplicate names, so columns are read by position.
func newTable(headers []string, df dataframe.DataFrame) *Table {
	names := df.Names()
	h := make([]string, len(headers))
	copy(h, headers)
	t := &Table{
		headers: h,
		cols:    make([][]string, len(names)),
		nulls:   make([][]bool, len(names)),
		rows:    df.Nrow(),
	}
	for i, name := range names {
		s := df.Col(name)
		t.cols[i] = s.Records()
		t.nulls[i] = s.IsNaN()
	}
	return t
}

func newEmptyTable(headers []string) *Table {
	h := make([]string, len(headers))
	copy(h, headers)
	return &Table{
		headers: h,
		cols:    make([][]string, len(h)),
		nulls:   make([][]bool, len(h)),
	}
}

// Headers returns the column names in source order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return t.rows
}

// Value returns the cell at (row, col). ok is false for null cells and for
// out-of-range positions.
func (t *Table) Value(row, col int) (string, bool) {
	if col < 0 || col >= len(t.cols) || row < 0 || row >= t.rows {
		return "", false
	}
	if t.nulls[col][row] {
		return "", false
	}
	return t.cols[col][row], true
}
