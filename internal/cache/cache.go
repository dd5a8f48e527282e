// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// Entry is a cached value with its expiry.
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Cache is a thread-safe in-memory TTL cache for computed responses.
// Expired entries are removed lazily on Get and in bulk by Cleanup. When
// maxEntries is reached, Set drops expired entries and then the entry that
// expires soonest.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]Entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// New creates a cache whose entries live for ttl and which holds at most
// maxEntries values. maxEntries <= 0 means no limit.
//
// Example:
//
//	c := cache.New(5*time.Minute, 1000)
//	key := cache.GenerateKey("analyze", params)
//	if v, ok := c.Get(key); ok {
//	    return v.(*models.AnalyzeResponse), nil
//	}
func New(ttl time.Duration, maxEntries int) *Cache {
	return &Cache{
		entries:    make(map[string]Entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get returns the value for key if present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.now().After(entry.ExpiresAt) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the key.
		if cur, ok := c.entries[key]; ok && c.now().After(cur.ExpiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return entry.Data, true
}

// Set stores value under key.
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if _, exists := c.entries[key]; !exists && c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictLocked(now)
	}
	c.entries[key] = Entry{Data: value, ExpiresAt: now.Add(c.ttl)}
}

// evictLocked frees one slot: every expired entry goes, and if none had
// expired, the one closest to expiry. Callers hold mu.
func (c *Cache) evictLocked(now time.Time) {
	var (
		victim  string
		soonest time.Time
	)
	removed := 0
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			removed++
			continue
		}
		if victim == "" || entry.ExpiresAt.Before(soonest) {
			victim, soonest = key, entry.ExpiresAt
		}
	}
	if removed == 0 && victim != "" {
		delete(c.entries, victim)
	}
}

// Clear drops every entry. Called when the dataset version changes.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]Entry)
}

// Cleanup removes expired entries and returns how many were removed.
func (c *Cache) Cleanup() int {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GenerateKey builds a compact key from a method name and its parameters.
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
