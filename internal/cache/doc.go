// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

/*
Package cache provides a thread-safe in-memory TTL cache for computed
pipeline responses.

# Overview

Analyze, trending, engagement and region responses are pure functions of the
request parameters and the dataset version. The pipeline service stores them
here under a key built by GenerateKey from both, so a repeated request within
the TTL skips the filter, aggregate and statistics passes.

# Invalidation

Keys embed the dataset version, so a reloaded file never serves stale
results. The pipeline service calls Clear whenever it observes a new dataset
version, whether the watcher or a request triggered the reload. The entry
limit passed to New bounds memory when no watcher runs Cleanup.

# Usage

	c := cache.New(5*time.Minute, 1000)
	key := cache.GenerateKey("analyze", struct {
		Version string
		Req     models.AnalyzeRequest
	}{version, req})

	if v, ok := c.Get(key); ok {
	    return v.(*models.AnalyzeResponse), nil
	}
	resp := compute()
	c.Set(key, resp)

# Thread Safety

All methods are safe for concurrent use. Cached values are shared between
callers and must not be modified.
*/
package cache
