// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var (
	// ErrDatasetNotFound is returned when the configured dataset file does not exist.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrMalformed is returned when the file cannot be read as delimited text.
	ErrMalformed = errors.New("malformed dataset")
)

// NullTokens are the cell values treated as missing, matching the usual
// pandas read_csv defaults.
var NullTokens = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// LoadOptions controls how the file is parsed.
type LoadOptions struct {
	// Delimiter separates fields. Zero means comma.
	Delimiter rune
}

// Load reads the CSV file at path into a Table.
// Every column is kept as text; typing is the cleaner's job.
func Load(ctx context.Context, path string, opts LoadOptions) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	return Parse(bytes.NewReader(data), opts)
}

// Parse reads delimited text with a header row from r.
func Parse(r io.Reader, opts LoadOptions) (*Table, error) {
	records, err := readRecords(r, opts)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	headers := records[0]
	if len(records) == 1 {
		return newEmptyTable(headers), nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(NullTokens),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, df.Err)
	}
	return newTable(headers, df), nil
}

// readRecords reads every row, padding short rows with empty cells so each
// row has one value per header. Rows longer than the header are rejected.
func readRecords(r io.Reader, opts LoadOptions) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	if opts.Delimiter != 0 {
		if opts.Delimiter == '"' || opts.Delimiter == '\n' || opts.Delimiter == '\r' || !utf8.ValidRune(opts.Delimiter) {
			return nil, fmt.Errorf("%w: invalid delimiter %q", ErrMalformed, opts.Delimiter)
		}
		cr.Comma = opts.Delimiter
	}

	var records [][]string
	width := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if len(records) == 0 {
			width = len(rec)
		} else if len(rec) > width {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrMalformed, line, len(rec), width)
		}
		row := make([]string, width)
		copy(row, rec)
		records = append(records, row)
	}
	return records, nil
}
