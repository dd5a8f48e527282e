// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/mediapulse/internal/analytics"
	"github.com/tomtom215/mediapulse/internal/cache"
	"github.com/tomtom215/mediapulse/internal/dataset"
	"github.com/tomtom215/mediapulse/internal/models"
	"github.com/tomtom215/mediapulse/internal/validation"
)

const fixture = `date,keyword,platform,content_type,region,engagement
2024-01-01,ai,Twitter,video,US,10
2024-01-01,ai,Reddit,text,EU,5
2024-01-02,ai,Twitter,video,US,20
2024-01-02,go,Twitter,image,US,1
2024-01-03,go,reddit,image,EU,3
not a date,go,Twitter,image,US,1
`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trends.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func newService(t *testing.T, c *cache.Cache) (*Service, string) {
	t.Helper()
	path := writeDataset(t, fixture)
	return New(Options{DatasetPath: path}, c), path
}

func TestAnalyze(t *testing.T) {
	svc, _ := newService(t, nil)

	resp, meta, err := svc.Analyze(context.Background(), models.AnalyzeRequest{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if meta.Cached {
		t.Error("uncached service reported a cache hit")
	}
	if resp.TotalRows != 5 {
		t.Errorf("TotalRows = %d, want 5", resp.TotalRows)
	}
	if strings.Join(resp.Keywords, ",") != "ai,go" {
		t.Errorf("Keywords = %v", resp.Keywords)
	}
	if resp.Freq != "day" {
		t.Errorf("Freq = %q, want day", resp.Freq)
	}
	if resp.Filters.Keywords == nil || resp.Filters.Regions == nil {
		t.Error("filter echo lists should be non-nil")
	}
	if len(resp.AggPreview) != 5 {
		t.Errorf("AggPreview has %d rows, want 5", len(resp.AggPreview))
	}

	ai, ok := resp.Stats["ai"]
	if !ok {
		t.Fatalf("missing stats for ai: %v", resp.Stats)
	}
	if ai.Peak != 1 || len(ai.MovingAverage) != 3 {
		t.Errorf("ai stats = %+v", ai)
	}
	if resp.Spikes == nil {
		t.Error("Spikes should be an empty slice, not nil")
	}
}

func TestAnalyzeFiltersAndPreview(t *testing.T) {
	path := writeDataset(t, fixture)
	svc := New(Options{DatasetPath: path, PreviewRows: 1}, nil)

	resp, _, err := svc.Analyze(context.Background(), models.AnalyzeRequest{
		FilterParams: models.FilterParams{Regions: []string{"eu"}},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if resp.TotalRows != 2 {
		t.Errorf("TotalRows = %d, want 2", resp.TotalRows)
	}
	if len(resp.AggPreview) != 1 {
		t.Errorf("AggPreview has %d rows, want 1", len(resp.AggPreview))
	}
	if resp.Filters.Regions[0] != "eu" {
		t.Errorf("Filters.Regions = %v", resp.Filters.Regions)
	}
}

func TestAnalyzeWeightedAndWeekly(t *testing.T) {
	svc, _ := newService(t, nil)

	resp, _, err := svc.Analyze(context.Background(), models.AnalyzeRequest{
		FilterParams:       models.FilterParams{Keywords: []string{"AI"}},
		Freq:               "week",
		EngagementWeighted: true,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	var total float64
	for _, a := range resp.AggPreview {
		total += a.Count
	}
	if total != 35 {
		t.Errorf("weighted total = %v, want 35", total)
	}
	if !resp.Weighted || resp.Freq != "week" {
		t.Errorf("Weighted = %v, Freq = %q", resp.Weighted, resp.Freq)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	svc, _ := newService(t, nil)
	ctx := context.Background()

	_, _, err := svc.Analyze(ctx, models.AnalyzeRequest{
		FilterParams: models.FilterParams{Keywords: []string{"nothing"}},
	})
	if !errors.Is(err, ErrNoDataForFilters) {
		t.Errorf("expected ErrNoDataForFilters, got %v", err)
	}

	_, _, err = svc.Analyze(ctx, models.AnalyzeRequest{
		FilterParams: models.FilterParams{Start: "2030-01-01"},
	})
	if !errors.Is(err, ErrNoDataForFilters) {
		t.Errorf("expected ErrNoDataForFilters for future start, got %v", err)
	}

	_, _, err = svc.Analyze(ctx, models.AnalyzeRequest{Freq: "fortnight"})
	var verr *validation.RequestValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected validation error, got %v", err)
	}

	missing := New(Options{DatasetPath: filepath.Join(t.TempDir(), "missing.csv")}, nil)
	if _, _, err := missing.Analyze(ctx, models.AnalyzeRequest{}); !errors.Is(err, dataset.ErrDatasetNotFound) {
		t.Errorf("expected ErrDatasetNotFound, got %v", err)
	}
	if err := missing.Ready(ctx); !errors.Is(err, dataset.ErrDatasetNotFound) {
		t.Errorf("Ready = %v, want ErrDatasetNotFound", err)
	}
}

func TestAnalyzeCanceledContext(t *testing.T) {
	svc, _ := newService(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := svc.Analyze(ctx, models.AnalyzeRequest{}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCachingFollowsDatasetVersion(t *testing.T) {
	svc, path := newService(t, cache.New(time.Minute, 100))
	ctx := context.Background()

	_, meta, err := svc.Analyze(ctx, models.AnalyzeRequest{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if meta.Cached {
		t.Error("first call should miss")
	}
	_, meta2, err := svc.Analyze(ctx, models.AnalyzeRequest{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !meta2.Cached {
		t.Error("second call should hit")
	}

	if err := os.WriteFile(path, []byte(fixture+"2024-01-04,ai,Twitter,video,US,1\n"), 0o600); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	changed, err := svc.Refresh(ctx)
	if err != nil || !changed {
		t.Fatalf("Refresh = %v, %v", changed, err)
	}

	resp, meta3, err := svc.Analyze(ctx, models.AnalyzeRequest{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if meta3.Cached {
		t.Error("call after reload should miss")
	}
	if meta3.Version == meta.Version {
		t.Error("version should change after reload")
	}
	if resp.TotalRows != 6 {
		t.Errorf("TotalRows = %d, want 6", resp.TotalRows)
	}
}

func TestLazyReloadDropsStaleResults(t *testing.T) {
	c := cache.New(time.Minute, 100)
	svc, path := newService(t, c)
	ctx := context.Background()
	content := fixture

	for i := 0; i < 5; i++ {
		if _, _, err := svc.Analyze(ctx, models.AnalyzeRequest{}); err != nil {
			t.Fatalf("Analyze #%d: %v", i, err)
		}
		if n := c.Len(); n != 1 {
			t.Errorf("after request %d the cache holds %d entries, want 1", i, n)
		}

		// No Refresh call: the next request notices the change itself.
		content += "2024-01-04,ai,Twitter,video,US,1\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		future := time.Now().Add(time.Duration(i+2) * time.Second)
		if err := os.Chtimes(path, future, future); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
	}

	if _, err := svc.DatasetInfo(ctx); err != nil {
		t.Fatalf("DatasetInfo: %v", err)
	}
	if n := c.Len(); n != 0 {
		t.Errorf("cache holds %d entries after the last reload, want 0", n)
	}
}

func TestRegionSummary(t *testing.T) {
	svc, _ := newService(t, nil)
	ctx := context.Background()

	sum, _, err := svc.RegionSummary(ctx, "us")
	if err != nil {
		t.Fatalf("RegionSummary: %v", err)
	}
	if len(sum.TopContentTypes) != 2 {
		t.Fatalf("TopContentTypes = %+v", sum.TopContentTypes)
	}
	if top := sum.TopContentTypes[0]; top.ContentType != "video" || top.Engagement != 30 {
		t.Errorf("top = %+v, want video/30", top)
	}

	if _, _, err := svc.RegionSummary(ctx, "mars"); !errors.Is(err, ErrNoDataForRegion) {
		t.Errorf("expected ErrNoDataForRegion, got %v", err)
	}
}

func TestTrending(t *testing.T) {
	svc, _ := newService(t, nil)

	top, _, err := svc.Trending(context.Background(), models.TrendingRequest{})
	if err != nil {
		t.Fatalf("Trending: %v", err)
	}
	if len(top) != 2 || top[0].Keyword != "ai" || top[0].Count != 3 || top[1].Count != 2 {
		t.Errorf("Trending = %+v", top)
	}

	top, _, err = svc.Trending(context.Background(), models.TrendingRequest{Periods: 1, TopK: 1})
	if err != nil {
		t.Fatalf("Trending: %v", err)
	}
	if len(top) != 1 || top[0].Keyword != "go" {
		t.Errorf("last-period Trending = %+v", top)
	}
}

func TestEngagement(t *testing.T) {
	svc, _ := newService(t, nil)
	ctx := context.Background()

	stats, _, err := svc.Engagement(ctx, models.EngagementRequest{By: "region"})
	if err != nil {
		t.Fatalf("Engagement: %v", err)
	}
	if len(stats) != 2 || stats[0].Group != "EU" || stats[0].Count != 2 || stats[0].Mean != 4 {
		t.Errorf("Engagement = %+v", stats)
	}

	if _, _, err := svc.Engagement(ctx, models.EngagementRequest{}); err != nil {
		t.Errorf("default grouping: %v", err)
	}
	if _, _, err := svc.Engagement(ctx, models.EngagementRequest{By: "colour"}); !errors.Is(err, analytics.ErrInvalidColumn) {
		t.Errorf("expected ErrInvalidColumn, got %v", err)
	}
}

func TestFilterOptions(t *testing.T) {
	svc, _ := newService(t, nil)

	opts, _, err := svc.FilterOptions(context.Background())
	if err != nil {
		t.Fatalf("FilterOptions: %v", err)
	}
	if strings.Join(opts.Platforms, ",") != "reddit,twitter" {
		t.Errorf("Platforms = %v", opts.Platforms)
	}
	if strings.Join(opts.Regions, ",") != "eu,us" {
		t.Errorf("Regions = %v", opts.Regions)
	}
	wantMin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	wantMax := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	if opts.MinDatetime == nil || !opts.MinDatetime.Equal(wantMin) {
		t.Errorf("MinDatetime = %v", opts.MinDatetime)
	}
	if opts.MaxDatetime == nil || !opts.MaxDatetime.Equal(wantMax) {
		t.Errorf("MaxDatetime = %v", opts.MaxDatetime)
	}
}

func TestExportCSV(t *testing.T) {
	svc, _ := newService(t, nil)

	var buf bytes.Buffer
	if err := svc.ExportCSV(context.Background(), models.AnalyzeRequest{}, &buf); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), buf.String())
	}
	if lines[0] != "keyword,datetime,platform,content_type,region,count" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "ai,2024-01-01T00:00:00Z,Reddit,text,EU,1" {
		t.Errorf("first row = %q", lines[1])
	}

	err := svc.ExportCSV(context.Background(), models.AnalyzeRequest{
		FilterParams: models.FilterParams{Platforms: []string{"tiktok"}},
	}, &buf)
	if !errors.Is(err, ErrNoDataForFilters) {
		t.Errorf("expected ErrNoDataForFilters, got %v", err)
	}
}

func TestDatasetInfo(t *testing.T) {
	svc, path := newService(t, nil)

	info, err := svc.DatasetInfo(context.Background())
	if err != nil {
		t.Fatalf("DatasetInfo: %v", err)
	}
	if info.Path != path {
		t.Errorf("Path = %q", info.Path)
	}
	if info.Report.KeptRows != 5 || info.Report.DroppedDatetime != 1 {
		t.Errorf("Report = %+v", info.Report)
	}
	if info.Mapping["datetime"] != "date" || info.Mapping["engagement"] != "engagement" {
		t.Errorf("Mapping = %v", info.Mapping)
	}
	if _, ok := info.Mapping["count"]; ok {
		t.Error("count should be unmapped")
	}
	if len(info.Columns) != 6 {
		t.Errorf("Columns = %v", info.Columns)
	}
}
