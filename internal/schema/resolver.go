// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

// Package schema maps arbitrary source headers onto the canonical MediaPulse roles.
//
// Resolution is deterministic. Rules are evaluated in order. Within a rule the
// first header, in source order, that contains any cue (case-insensitive
// substring) wins. Required roles then fall back to fixed positions, and
// optional roles stay absent.
package schema

import (
	"strings"
)

// Role is a canonical column role.
type Role string

const (
	RoleDatetime    Role = "datetime"
	RoleKeyword     Role = "keyword"
	RoleCount       Role = "count"
	RolePlatform    Role = "platform"
	RoleContentType Role = "content_type"
	RoleRegion      Role = "region"
	RoleEngagement  Role = "engagement"
)

// Rule pairs a role with the substrings that identify it.
type Rule struct {
	Role     Role
	Cues     []string
	Required bool
}

// DefaultRules is the evaluation order used by Resolve. Engagement cues are in
// priority order.
var DefaultRules = []Rule{
	{Role: RoleDatetime, Cues: []string{"date", "time"}, Required: true},
	{Role: RoleKeyword, Cues: []string{"keyword", "topic", "hashtag"}, Required: true},
	{Role: RoleCount, Cues: []string{"count", "mentions", "volume"}},
	{Role: RolePlatform, Cues: []string{"platform", "source", "site"}},
	{Role: RoleContentType, Cues: []string{"content_type", "content type", "content", "type"}},
	{Role: RoleRegion, Cues: []string{"region", "country", "location"}},
	{Role: RoleEngagement, Cues: []string{"engagement_level", "engagement", "likes", "shares", "engagement_score"}},
}

// Mapping is the result of resolution: role to source header.
type Mapping struct {
	columns map[Role]string
	index   map[Role]int
}

// Column returns the source header resolved for role.
func (m Mapping) Column(role Role) (string, bool) {
	c, ok := m.columns[role]
	return c, ok
}

// Index returns the source position resolved for role, or -1.
func (m Mapping) Index(role Role) int {
	if i, ok := m.index[role]; ok {
		return i
	}
	return -1
}

// Has reports whether role resolved to a column.
func (m Mapping) Has(role Role) bool {
	_, ok := m.columns[role]
	return ok
}

// Map returns a copy of the resolution keyed by role name.
func (m Mapping) Map() map[string]string {
	out := make(map[string]string, len(m.columns))
	for r, c := range m.columns {
		out[string(r)] = c
	}
	return out
}

// Resolver applies an ordered list of rules.
type Resolver struct {
	rules []Rule
}

// NewResolver returns a resolver over rules. A nil slice selects DefaultRules.
func NewResolver(rules []Rule) *Resolver {
	if rules == nil {
		rules = DefaultRules
	}
	return &Resolver{rules: rules}
}

// Resolve maps headers with DefaultRules.
func Resolve(headers []string) Mapping {
	return NewResolver(nil).Resolve(headers)
}

// Resolve never fails. With no headers every role is absent.
func (r *Resolver) Resolve(headers []string) Mapping {
	m := Mapping{
		columns: make(map[Role]string),
		index:   make(map[Role]int),
	}
	if len(headers) == 0 {
		return m
	}

	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(h)
	}

	claimed := make(map[int]bool)
	for _, rule := range r.rules {
		idx := match(lowered, rule, claimed)
		if idx < 0 && rule.Required {
			idx = fallback(rule.Role, len(headers))
		}
		if idx < 0 {
			continue
		}
		m.columns[rule.Role] = headers[idx]
		m.index[rule.Role] = idx
		claimed[idx] = true
	}
	return m
}

// match returns the first header containing any cue. Optional roles skip
// headers already claimed by an earlier rule.
func match(lowered []string, rule Rule, claimed map[int]bool) int {
	for i, h := range lowered {
		if !rule.Required && claimed[i] {
			continue
		}
		for _, cue := range rule.Cues {
			if strings.Contains(h, cue) {
				return i
			}
		}
	}
	return -1
}

func fallback(role Role, n int) int {
	switch role {
	case RoleDatetime:
		return 0
	case RoleKeyword:
		if n > 1 {
			return 1
		}
		return 0
	}
	return -1
}
