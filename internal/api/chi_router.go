// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/mediapulse/internal/middleware"
)

// compressLevel is the gzip/deflate level for chi's Compress middleware.
const compressLevel = 5

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil config uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, cfg *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(cfg),
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Handler builds the routed http.Handler.
func (router *Router) Handler() http.Handler {
	r := chi.NewRouter()

	// Global stack, outermost first.
	r.Use(chimiddleware.RealIP)
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(chimiddleware.Compress(compressLevel))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, CodeNotFound, "Not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, CodeMethodNotAllow, "Method not allowed", nil)
	})

	h := router.handler

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", h.Health)
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Post("/analyze", h.Analyze)
		r.Get("/regions/{region}/summary", h.RegionSummary)
		r.Get("/trending", h.Trending)
		r.Get("/engagement", h.Engagement)
		r.Get("/options", h.FilterOptions)
		r.Post("/export", h.Export)
		r.Get("/dataset", h.DatasetInfo)
	})

	// Dashboard-era paths kept for existing clients.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Post("/analyze_multi", h.Analyze)
		r.Get("/region_summary/{region}", h.RegionSummary)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
