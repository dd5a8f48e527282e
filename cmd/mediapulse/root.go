// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/mediapulse/internal/config"
	"github.com/tomtom215/mediapulse/internal/logging"
	"github.com/tomtom215/mediapulse/internal/pipeline"
)

// app holds state shared by every subcommand.
type app struct {
	configPath  string
	datasetPath string
	logLevel    string

	svc    *pipeline.Service
	stdout io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout}

	root := &cobra.Command{
		Use:           "mediapulse",
		Short:         "Trend analysis over social media mention datasets",
		Long:          `MediaPulse cleans a CSV of social media mentions and reports per-keyword trends, spikes, trending keywords, region summaries and engagement distributions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "config file (default: CONFIG_PATH, ./config.yaml or /etc/mediapulse/config.yaml)")
	f.StringVar(&a.datasetPath, "dataset", "", "dataset CSV path (overrides dataset.path)")
	f.StringVar(&a.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(
		a.analyzeCmd(),
		a.regionCmd(),
		a.trendingCmd(),
		a.engagementCmd(),
		a.optionsCmd(),
		a.exportCmd(),
	)
	return root
}

// setup loads configuration and builds the pipeline service.
func (a *app) setup(stderr io.Writer) error {
	if !logging.ValidLevel(a.logLevel) {
		return fmt.Errorf("invalid --log-level %q", a.logLevel)
	}
	logging.Init(logging.Config{
		Level:  a.logLevel,
		Format: "console",
		Output: stderr,
	})

	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadWithKoanfFile(a.configPath)
	} else {
		cfg, err = config.LoadWithKoanf()
	}
	if err != nil {
		return err
	}
	if a.datasetPath != "" {
		cfg.Dataset.Path = a.datasetPath
	}

	a.svc = pipeline.New(pipeline.OptionsFromConfig(cfg), nil)
	return nil
}

// printJSON writes v as indented JSON.
func (a *app) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if _, err := fmt.Fprintln(a.stdout, string(data)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
