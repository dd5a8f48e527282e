// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

// Command mediapulse runs MediaPulse analyses from the command line and
// prints the same JSON the HTTP API returns in its data field.
//
//	mediapulse analyze --keywords ai,go --freq week
//	mediapulse region US
//	mediapulse trending --periods 4 --top-k 5
//	mediapulse engagement --by content_type
//	mediapulse options
//	mediapulse export --out agg.csv
//
// Configuration is loaded the same way as the server. --dataset overrides
// dataset.path.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/mediapulse/internal/pipeline"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, pipeline.ErrNoDataForFilters) {
			fmt.Fprintln(stderr, "No data for filters")
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}
