// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/mediapulse/internal/aggregate"
	"github.com/tomtom215/mediapulse/internal/analytics"
	"github.com/tomtom215/mediapulse/internal/dataset"
	"github.com/tomtom215/mediapulse/internal/models"
	"github.com/tomtom215/mediapulse/internal/pipeline"
	"github.com/tomtom215/mediapulse/internal/validation"
)

// Error codes returned in APIError.Code.
const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidColumn   = "INVALID_COLUMN"
	CodeNoData          = "NO_DATA"
	CodeNotFound        = "NOT_FOUND"
	CodeDatasetNotFound = "DATASET_NOT_FOUND"
	CodeMethodNotAllow  = "METHOD_NOT_ALLOWED"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeInternal        = "INTERNAL_ERROR"
	CodeUnavailable     = "SERVICE_UNAVAILABLE"
)

// respondServiceError maps a pipeline error to its status and code.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		apiErr := verr.ToAPIError()
		respondAPIError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		})
		return
	}

	switch {
	case errors.Is(err, pipeline.ErrNoDataForFilters):
		respondError(w, r, http.StatusNotFound, CodeNoData, "No data for filters", nil)
	case errors.Is(err, pipeline.ErrNoDataForRegion):
		respondError(w, r, http.StatusNotFound, CodeNotFound, "No data for region", nil)
	case errors.Is(err, analytics.ErrInvalidColumn), errors.Is(err, aggregate.ErrUnknownDimension):
		respondError(w, r, http.StatusBadRequest, CodeInvalidColumn, err.Error(), nil)
	case errors.Is(err, aggregate.ErrInvalidFreq):
		respondError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
	case errors.Is(err, dataset.ErrDatasetNotFound):
		respondError(w, r, http.StatusServiceUnavailable, CodeDatasetNotFound, "Dataset not available", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusServiceUnavailable, CodeUnavailable, "Request canceled", err)
	default:
		respondError(w, r, http.StatusInternalServerError, CodeInternal, "Internal server error", err)
	}
}
