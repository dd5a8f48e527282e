// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package schema

import "testing"

func TestResolveViralTrendsHeaders(t *testing.T) {
	headers := []string{"Post_ID", "Post_Date", "Platform", "Hashtag", "Content_Type", "Region", "Views", "Likes", "Shares", "Comments", "Engagement_Level"}
	m := Resolve(headers)

	tests := []struct {
		role Role
		want string
	}{
		{RoleDatetime, "Post_Date"},
		{RoleKeyword, "Hashtag"},
		{RolePlatform, "Platform"},
		{RoleContentType, "Content_Type"},
		{RoleRegion, "Region"},
		{RoleEngagement, "Likes"},
	}
	for _, tt := range tests {
		got, ok := m.Column(tt.role)
		if !ok || got != tt.want {
			t.Errorf("Column(%s) = %q, %v; want %q", tt.role, got, ok, tt.want)
		}
	}
	if m.Has(RoleCount) {
		t.Errorf("count should be absent, got %v", m.Map())
	}
}

func TestResolveCaseInsensitiveFirstMatchWins(t *testing.T) {
	m := Resolve([]string{"TOPIC", "Timestamp", "Created Date", "Mentions", "Volume"})

	if c, _ := m.Column(RoleDatetime); c != "Timestamp" {
		t.Errorf("datetime = %q, want Timestamp", c)
	}
	if c, _ := m.Column(RoleKeyword); c != "TOPIC" {
		t.Errorf("keyword = %q, want TOPIC", c)
	}
	if c, _ := m.Column(RoleCount); c != "Mentions" {
		t.Errorf("count = %q, want Mentions", c)
	}
	if i := m.Index(RoleCount); i != 3 {
		t.Errorf("count index = %d, want 3", i)
	}
}

func TestResolvePositionalFallback(t *testing.T) {
	tests := []struct {
		name        string
		headers     []string
		wantDate    string
		wantKeyword string
	}{
		{"two columns", []string{"when", "what"}, "when", "what"},
		{"one column", []string{"only"}, "only", "only"},
		{"date found keyword missing", []string{"a", "date", "c"}, "date", "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Resolve(tt.headers)
			if c, _ := m.Column(RoleDatetime); c != tt.wantDate {
				t.Errorf("datetime = %q, want %q", c, tt.wantDate)
			}
			if c, _ := m.Column(RoleKeyword); c != tt.wantKeyword {
				t.Errorf("keyword = %q, want %q", c, tt.wantKeyword)
			}
			for _, r := range []Role{RoleCount, RolePlatform, RoleContentType, RoleRegion, RoleEngagement} {
				if m.Has(r) {
					t.Errorf("%s should be absent", r)
				}
			}
		})
	}
}

func TestResolveOptionalRolesSkipClaimedColumns(t *testing.T) {
	// keyword_type contains the "type" cue but already belongs to keyword.
	m := Resolve([]string{"datetime", "keyword_type", "media type"})
	if c, _ := m.Column(RoleKeyword); c != "keyword_type" {
		t.Fatalf("keyword = %q", c)
	}
	if c, _ := m.Column(RoleContentType); c != "media type" {
		t.Errorf("content_type = %q, want media type", c)
	}
}

func TestResolveNoHeaders(t *testing.T) {
	m := Resolve(nil)
	if m.Has(RoleDatetime) || m.Has(RoleKeyword) {
		t.Error("empty header list should resolve nothing")
	}
	if m.Index(RoleDatetime) != -1 {
		t.Error("Index should be -1 for absent roles")
	}
}

func TestCustomRules(t *testing.T) {
	r := NewResolver([]Rule{
		{Role: RoleDatetime, Cues: []string{"ts"}, Required: true},
		{Role: RoleKeyword, Cues: []string{"tag"}, Required: true},
	})
	m := r.Resolve([]string{"tag", "ts"})
	if c, _ := m.Column(RoleDatetime); c != "ts" {
		t.Errorf("datetime = %q", c)
	}
	if c, _ := m.Column(RoleKeyword); c != "tag" {
		t.Errorf("keyword = %q", c)
	}
}
