// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"
)

// Version identifies one state of the dataset file.
type Version struct {
	ModTime time.Time
	Size    int64
}

// String renders the version as a compact cache-key friendly token.
func (v Version) String() string {
	return fmt.Sprintf("%d-%d", v.ModTime.UnixNano(), v.Size)
}

// Equal reports whether two versions describe the same file state.
func (v Version) Equal(o Version) bool {
	return v.Size == o.Size && v.ModTime.Equal(o.ModTime)
}

// Snapshot is one prepared view of the dataset. Data must be treated as
// read-only by every consumer; it is shared across concurrent requests.
type Snapshot[T any] struct {
	Data     T
	Version  Version
	LoadedAt time.Time
}

// BuildFunc turns a freshly loaded table into the prepared form kept by a Store.
type BuildFunc[T any] func(ctx context.Context, t *Table) (T, error)

// Store keeps the latest prepared snapshot of a dataset file and reloads it
// when the file's modification time or size changes.
type Store[T any] struct {
	path  string
	opts  LoadOptions
	build BuildFunc[T]

	mu      sync.RWMutex
	current *Snapshot[T]

	// loadMu serializes reloads so concurrent callers share one load.
	loadMu sync.Mutex
	now    func() time.Time
}

// NewStore creates a store for the file at path.
func NewStore[T any](path string, opts LoadOptions, build BuildFunc[T]) *Store[T] {
	return &Store[T]{
		path:  path,
		opts:  opts,
		build: build,
		now:   time.Now,
	}
}

// Path returns the dataset file path.
func (s *Store[T]) Path() string {
	return s.path
}

// Current returns the last published snapshot without touching the file.
func (s *Store[T]) Current() (*Snapshot[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != nil
}

// Snapshot returns an up-to-date snapshot, reloading the file if it changed.
func (s *Store[T]) Snapshot(ctx context.Context) (*Snapshot[T], error) {
	if _, err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	snap, _ := s.Current()
	return snap, nil
}

// Refresh reloads the file when its version differs from the published
// snapshot. changed reports whether a new snapshot was published.
func (s *Store[T]) Refresh(ctx context.Context) (changed bool, err error) {
	v, err := s.stat()
	if err != nil {
		return false, err
	}
	if cur, ok := s.Current(); ok && cur.Version.Equal(v) {
		return false, nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	// Another caller may have finished the same reload while we waited.
	if cur, ok := s.Current(); ok && cur.Version.Equal(v) {
		return false, nil
	}

	table, err := Load(ctx, s.path, s.opts)
	if err != nil {
		return false, err
	}
	data, err := s.build(ctx, table)
	if err != nil {
		return false, fmt.Errorf("prepare dataset %s: %w", s.path, err)
	}

	snap := &Snapshot[T]{Data: data, Version: v, LoadedAt: s.now()}
	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()
	return true, nil
}

func (s *Store[T]) stat() (Version, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Version{}, fmt.Errorf("%w: %s", ErrDatasetNotFound, s.path)
		}
		return Version{}, fmt.Errorf("stat dataset %s: %w", s.path, err)
	}
	if info.IsDir() {
		return Version{}, fmt.Errorf("%w: %s is a directory", ErrDatasetNotFound, s.path)
	}
	return Version{ModTime: info.ModTime(), Size: info.Size()}, nil
}
