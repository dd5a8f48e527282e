// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package api

import (
	"context"
	"io"
	"time"

	"github.com/tomtom215/mediapulse/internal/models"
	"github.com/tomtom215/mediapulse/internal/pipeline"
)

// Analyzer is the subset of pipeline.Service the handlers use.
type Analyzer interface {
	Analyze(ctx context.Context, req models.AnalyzeRequest) (*models.AnalyzeResponse, pipeline.Meta, error)
	RegionSummary(ctx context.Context, region string) (*models.RegionSummary, pipeline.Meta, error)
	Trending(ctx context.Context, req models.TrendingRequest) ([]models.KeywordTotal, pipeline.Meta, error)
	Engagement(ctx context.Context, req models.EngagementRequest) ([]models.EngagementStats, pipeline.Meta, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, pipeline.Meta, error)
	ExportCSV(ctx context.Context, req models.AnalyzeRequest, w io.Writer) error
	DatasetInfo(ctx context.Context) (*models.DatasetInfo, error)
	Ready(ctx context.Context) error
}

// Handler manages HTTP request handlers
type Handler struct {
	svc         Analyzer
	datasetPath string
	version     string
	startTime   time.Time
}

// NewHandler creates a new Handler
func NewHandler(svc Analyzer, datasetPath, version string) *Handler {
	if version == "" {
		version = "dev"
	}
	return &Handler{
		svc:         svc,
		datasetPath: datasetPath,
		version:     version,
		startTime:   time.Now(),
	}
}
