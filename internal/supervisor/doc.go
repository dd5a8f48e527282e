// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

/*
Package supervisor runs MediaPulse's long-lived services under suture v4.

	mediapulse
	├── data-layer
	│   └── DatasetWatcherService
	└── api-layer
	    └── HTTPServerService

Crashed services restart with backoff. Each layer counts failures on its
own, so a watcher that keeps failing cannot take the HTTP server down.
Supervisor events are logged through log/slog via sutureslog; the server
binary passes logging.NewSlogLogger so they end up in the zerolog stream.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewDatasetWatcherService(svc, cfg.Dataset.ReloadInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)
*/
package supervisor
