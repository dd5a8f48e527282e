// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/mediapulse/internal/api"
	"github.com/tomtom215/mediapulse/internal/cache"
	"github.com/tomtom215/mediapulse/internal/config"
	"github.com/tomtom215/mediapulse/internal/logging"
	"github.com/tomtom215/mediapulse/internal/pipeline"
	"github.com/tomtom215/mediapulse/internal/supervisor"
	"github.com/tomtom215/mediapulse/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("dataset", cfg.Dataset.Path).
		Str("default_freq", cfg.Analytics.DefaultFreq).
		Bool("cache", cfg.Cache.Enabled).
		Int("cache_max_entries", cfg.Cache.MaxEntries).
		Msg("Starting MediaPulse with supervisor tree")

	var resultCache *cache.Cache
	if cfg.Cache.Enabled {
		resultCache = cache.New(cfg.Cache.TTL, cfg.Cache.MaxEntries)
	}
	svc := pipeline.New(pipeline.OptionsFromConfig(cfg), resultCache)

	// Warm the dataset so the first request does not pay for it. A missing
	// file is not fatal: the watcher picks it up once it appears.
	if _, err := svc.Refresh(context.Background()); err != nil {
		logging.Warn().Err(err).Msg("Dataset not loaded at startup")
	}

	handler := api.NewHandler(svc, cfg.Dataset.Path, version)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Handler(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Dataset.ReloadInterval > 0 {
		tree.AddDataService(services.NewDatasetWatcherService(svc, cfg.Dataset.ReloadInterval))
		logging.Info().Dur("interval", cfg.Dataset.ReloadInterval).Msg("Dataset watcher added")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, s := range unstopped {
			logging.Warn().Str("service", s.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
