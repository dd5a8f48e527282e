// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/mediapulse/internal/dataset"
	"github.com/tomtom215/mediapulse/internal/logging"
)

// DatasetRefresher is satisfied by *pipeline.Service.
type DatasetRefresher interface {
	// Refresh reloads the dataset when the file changed.
	Refresh(ctx context.Context) (bool, error)
	// CacheCleanup evicts expired cached results.
	CacheCleanup() int
}

// DatasetWatcherService polls the dataset file and reloads it when its
// modification time or size changes.
//
// Load failures are logged and retried on the next tick rather than
// returned: the API keeps serving the last good snapshot, and a missing
// file is an operator problem that restarts would not fix.
type DatasetWatcherService struct {
	refresher DatasetRefresher
	interval  time.Duration
	name      string
	logger    zerolog.Logger
}

// NewDatasetWatcherService creates a watcher. A non-positive interval means 30s.
func NewDatasetWatcherService(refresher DatasetRefresher, interval time.Duration) *DatasetWatcherService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &DatasetWatcherService{
		refresher: refresher,
		interval:  interval,
		name:      "dataset-watcher",
		logger:    logging.WithComponent("dataset-watcher"),
	}
}

// Serve loads the dataset once, then polls every interval until ctx is canceled.
func (w *DatasetWatcherService) Serve(ctx context.Context) error {
	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *DatasetWatcherService) tick(ctx context.Context) {
	changed, err := w.refresher.Refresh(ctx)
	switch {
	case err == nil && changed:
		w.logger.Info().Msg("Dataset reloaded")
	case errors.Is(err, context.Canceled):
	case errors.Is(err, dataset.ErrDatasetNotFound):
		w.logger.Warn().Err(err).Msg("Dataset file not found")
	case err != nil:
		w.logger.Error().Err(err).Msg("Dataset reload failed")
	}

	if n := w.refresher.CacheCleanup(); n > 0 {
		w.logger.Debug().Int("evicted", n).Msg("Expired cache entries removed")
	}
}

// String names the service in supervisor events.
func (w *DatasetWatcherService) String() string {
	return w.name
}
