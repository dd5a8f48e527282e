// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package pipeline

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/tomtom215/mediapulse/internal/models"
)

// ExportFilename is the attachment name used for aggregate exports.
const ExportFilename = "mediapulse_agg.csv"

// ExportCSV writes the full aggregate of an analyze request to w as CSV
// with a header row.
func (s *Service) ExportCSV(ctx context.Context, req models.AnalyzeRequest, w io.Writer) error {
	snap, err := s.snapshotFor(ctx, &req)
	if err != nil {
		return err
	}
	_, agg, _, err := s.aggregateFor(ctx, snap, req)
	if err != nil {
		return err
	}
	if err := aggregateFrame(agg).WriteCSV(w); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// aggregateFrame lays agg out as a string-typed dataframe. Every column is
// text so counts keep their shortest representation.
func aggregateFrame(agg []models.AggregatedRecord) dataframe.DataFrame {
	n := len(agg)
	keyword := make([]string, n)
	datetime := make([]string, n)
	platform := make([]string, n)
	contentType := make([]string, n)
	region := make([]string, n)
	count := make([]string, n)

	for i := range agg {
		a := &agg[i]
		keyword[i] = a.Keyword
		datetime[i] = a.Datetime.Format(time.RFC3339)
		platform[i] = a.Platform
		contentType[i] = a.ContentType
		region[i] = a.Region
		count[i] = strconv.FormatFloat(a.Count, 'f', -1, 64)
	}

	return dataframe.New(
		series.New(keyword, series.String, "keyword"),
		series.New(datetime, series.String, "datetime"),
		series.New(platform, series.String, "platform"),
		series.New(contentType, series.String, "content_type"),
		series.New(region, series.String, "region"),
		series.New(count, series.String, "count"),
	)
}
