// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tomtom215/mediapulse/internal/models"
)

// bindFilterFlags registers the shared filter flags on fs.
func bindFilterFlags(fs *pflag.FlagSet, p *models.FilterParams) {
	fs.StringSliceVar(&p.Keywords, "keywords", nil, "keywords to keep (comma separated, case-insensitive)")
	fs.StringSliceVar(&p.Platforms, "platforms", nil, "platforms to keep")
	fs.StringSliceVar(&p.ContentTypes, "content-types", nil, "content types to keep")
	fs.StringSliceVar(&p.Regions, "regions", nil, "regions to keep")
	fs.StringVar(&p.Start, "start", "", "earliest datetime, inclusive")
	fs.StringVar(&p.End, "end", "", "latest datetime, inclusive")
}

// bindAnalyzeFlags registers the filter and aggregation flags of an analyze
// request.
func bindAnalyzeFlags(fs *pflag.FlagSet, req *models.AnalyzeRequest) {
	bindFilterFlags(fs, &req.FilterParams)
	fs.StringVar(&req.Freq, "freq", "", "aggregation period: day, week, month or a duration such as 6h")
	fs.BoolVar(&req.EngagementWeighted, "weighted", false, "sum engagement instead of counting mentions")
	fs.IntVar(&req.MAWindow, "ma-window", 0, "moving average window (default from config)")
}

func (a *app) analyzeCmd() *cobra.Command {
	var req models.AnalyzeRequest
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Aggregate the dataset and summarize each keyword",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, _, err := a.svc.Analyze(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
	bindAnalyzeFlags(cmd.Flags(), &req)
	return cmd
}

func (a *app) regionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "region <name>",
		Short: "Rank content types in a region by total engagement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, _, err := a.svc.RegionSummary(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
}

func (a *app) trendingCmd() *cobra.Command {
	var req models.TrendingRequest
	cmd := &cobra.Command{
		Use:   "trending",
		Short: "List keywords with the largest totals over the latest periods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, _, err := a.svc.Trending(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
	fs := cmd.Flags()
	bindFilterFlags(fs, &req.FilterParams)
	fs.StringVar(&req.Freq, "freq", "", "aggregation period")
	fs.BoolVar(&req.EngagementWeighted, "weighted", false, "sum engagement instead of counting mentions")
	fs.IntVar(&req.Periods, "periods", 0, "number of latest periods (default from config)")
	fs.IntVar(&req.TopK, "top-k", 0, "number of keywords (default from config)")
	return cmd
}

func (a *app) engagementCmd() *cobra.Command {
	var req models.EngagementRequest
	cmd := &cobra.Command{
		Use:   "engagement",
		Short: "Describe the engagement distribution per group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, _, err := a.svc.Engagement(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
	bindFilterFlags(cmd.Flags(), &req.FilterParams)
	cmd.Flags().StringVar(&req.By, "by", "platform", "grouping column: platform, content_type or region")
	return cmd
}

func (a *app) optionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List distinct filter values and the datetime range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, _, err := a.svc.FilterOptions(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	var (
		req models.AnalyzeRequest
		out string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full aggregate as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Buffered: a failed export writes nothing.
			var buf bytes.Buffer
			if err := a.svc.ExportCSV(cmd.Context(), req, &buf); err != nil {
				return err
			}
			if out == "" {
				_, err := buf.WriteTo(a.stdout)
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			return nil
		},
	}
	bindAnalyzeFlags(cmd.Flags(), &req)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
