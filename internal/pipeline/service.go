// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package pipeline

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tomtom215/mediapulse/internal/cache"
	"github.com/tomtom215/mediapulse/internal/cleaner"
	"github.com/tomtom215/mediapulse/internal/dataset"
	"github.com/tomtom215/mediapulse/internal/filter"
	"github.com/tomtom215/mediapulse/internal/logging"
	"github.com/tomtom215/mediapulse/internal/metrics"
	"github.com/tomtom215/mediapulse/internal/models"
	"github.com/tomtom215/mediapulse/internal/schema"
	"github.com/tomtom215/mediapulse/internal/validation"
)

var (
	// ErrNoDataForFilters is returned when no record matches the request filters.
	ErrNoDataForFilters = errors.New("no data for filters")

	// ErrNoDataForRegion is returned when a region has no records.
	ErrNoDataForRegion = errors.New("no data for region")
)

// Prepared is the cleaned form of one dataset version. It is shared by all
// requests and must not be modified.
type Prepared struct {
	Records []models.Record
	Report  models.CleanReport
	Columns []string
	Mapping schema.Mapping
}

// Meta describes how a result was produced.
type Meta struct {
	Cached  bool
	Version string
}

// Service answers analysis requests against the configured dataset.
type Service struct {
	opts  Options
	store *dataset.Store[*Prepared]
	cache *cache.Cache

	// seen is the dataset version the cache currently holds results for.
	seenMu sync.Mutex
	seen   dataset.Version
}

// New creates a Service. c may be nil to disable result caching.
func New(opts Options, c *cache.Cache) *Service {
	opts = opts.withDefaults()
	return &Service{
		opts:  opts,
		store: dataset.NewStore(opts.DatasetPath, dataset.LoadOptions{Delimiter: opts.Delimiter}, prepare),
		cache: c,
	}
}

// prepare resolves and cleans a freshly loaded table.
func prepare(ctx context.Context, t *dataset.Table) (*Prepared, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	headers := t.Headers()
	mapping := schema.Resolve(headers)
	records, report := cleaner.Clean(t, mapping)
	metrics.ObserveStage("clean", start)
	metrics.RecordDatasetReload(report, nil)

	logging.Ctx(ctx).Debug().
		Int("input_rows", report.InputRows).
		Int("kept_rows", report.KeptRows).
		Int("dropped_datetime", report.DroppedDatetime).
		Int("dropped_keyword", report.DroppedKeyword).
		Msg("Dataset prepared")

	return &Prepared{
		Records: records,
		Report:  report,
		Columns: headers,
		Mapping: mapping,
	}, nil
}

// Options returns the effective options after defaults were applied.
func (s *Service) Options() Options {
	return s.opts
}

// Refresh reloads the dataset if the file changed and drops cached results
// when it did.
func (s *Service) Refresh(ctx context.Context) (bool, error) {
	changed, err := s.store.Refresh(ctx)
	if err != nil {
		metrics.RecordDatasetReload(models.CleanReport{}, err)
		return false, err
	}
	if snap, ok := s.store.Current(); ok {
		s.observe(snap)
	}
	return changed, nil
}

// snapshot returns the current snapshot, reloading lazily, and drops cached
// results computed for an older version.
func (s *Service) snapshot(ctx context.Context) (*dataset.Snapshot[*Prepared], error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.observe(snap)
	return snap, nil
}

func (s *Service) observe(snap *dataset.Snapshot[*Prepared]) {
	if s.cache == nil {
		return
	}
	s.seenMu.Lock()
	defer s.seenMu.Unlock()
	if snap.Version.Equal(s.seen) {
		return
	}
	s.seen = snap.Version
	s.cache.Clear()
}

// CacheCleanup evicts expired cache entries and returns how many were removed.
func (s *Service) CacheCleanup() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Cleanup()
}

// Ready reports whether the dataset can be loaded.
func (s *Service) Ready(ctx context.Context) error {
	_, err := s.snapshot(ctx)
	return err
}

// DatasetInfo describes the current snapshot.
func (s *Service) DatasetInfo(ctx context.Context) (*models.DatasetInfo, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &models.DatasetInfo{
		Path:     s.store.Path(),
		Version:  snap.Version.String(),
		LoadedAt: snap.LoadedAt,
		Report:   snap.Data.Report,
		Columns:  append([]string(nil), snap.Data.Columns...),
		Mapping:  snap.Data.Mapping.Map(),
	}, nil
}

// cached returns the cached result for (method, params) at the snapshot's
// version, computing and storing it on a miss. Errors are never cached.
func cached[T any](s *Service, snap *dataset.Snapshot[*Prepared], method string, params interface{}, compute func() (T, error)) (T, Meta, error) {
	meta := Meta{Version: snap.Version.String()}
	if s.cache == nil {
		v, err := compute()
		return v, meta, err
	}

	key := cache.GenerateKey(method, struct {
		Version string      `json:"version"`
		Params  interface{} `json:"params"`
	}{meta.Version, params})

	if v, ok := s.cache.Get(key); ok {
		if typed, ok := v.(T); ok {
			metrics.RecordCacheLookup(true)
			meta.Cached = true
			return typed, meta, nil
		}
	}
	metrics.RecordCacheLookup(false)

	v, err := compute()
	if err != nil {
		return v, meta, err
	}
	s.cache.Set(key, v)
	return v, meta, nil
}

// snapshotFor validates req and returns the current snapshot.
func (s *Service) snapshotFor(ctx context.Context, req interface{}) (*dataset.Snapshot[*Prepared], error) {
	if req != nil {
		if verr := validation.ValidateStruct(req); verr != nil {
			return nil, verr
		}
	}
	return s.snapshot(ctx)
}

// criteria converts request filters. Dates were validated already.
func criteria(p models.FilterParams) (filter.Criteria, error) {
	c := filter.Criteria{
		Keywords:     p.Keywords,
		Platforms:    p.Platforms,
		ContentTypes: p.ContentTypes,
		Regions:      p.Regions,
	}
	if p.Start != "" {
		t, err := cleaner.ParseDatetime(p.Start)
		if err != nil {
			return c, err
		}
		c.Start = &t
	}
	if p.End != "" {
		t, err := cleaner.ParseDatetime(p.End)
		if err != nil {
			return c, err
		}
		c.End = &t
	}
	return c, nil
}

// filtered applies the request filters to the snapshot and fails with
// ErrNoDataForFilters when nothing matches.
func filtered(ctx context.Context, snap *dataset.Snapshot[*Prepared], p models.FilterParams) ([]models.Record, error) {
	c, err := criteria(p)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	res := filter.Apply(snap.Data.Records, c)
	metrics.ObserveStage("filter", start)
	if res.Empty() {
		return nil, ErrNoDataForFilters
	}
	return res.Records, ctx.Err()
}
