// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package filter

import (
	"testing"
	"time"

	"github.com/tomtom215/mediapulse/internal/models"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func sample() []models.Record {
	return []models.Record{
		{Datetime: day(3), Keyword: "AI", Platform: "Twitter", ContentType: "video", Region: "EU", Count: 1},
		{Datetime: day(1), Keyword: "ai", Platform: "Reddit", ContentType: "text", Region: "US", Count: 2},
		{Datetime: day(2), Keyword: "Tech", Platform: "twitter", ContentType: "image", Region: "eu", Count: 3},
		{Datetime: day(5), Keyword: "go", Platform: "Mastodon", ContentType: "text", Region: "APAC", Count: 4},
		{Datetime: day(2), Keyword: "go", Platform: "Reddit", ContentType: "video", Region: "US", Count: 5},
	}
}

func counts(records []models.Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Count
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyNoCriteriaOnlySorts(t *testing.T) {
	in := sample()
	res := Apply(in, Criteria{})

	if res.Filtered {
		t.Error("Filtered should be false without criteria")
	}
	if got, want := counts(res.Records), []int{2, 3, 5, 1, 4}; !equalInts(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if got, want := counts(in), []int{1, 2, 3, 4, 5}; !equalInts(got, want) {
		t.Errorf("input was modified: %v", got)
	}
}

func TestApplyCaseInsensitive(t *testing.T) {
	upper := Apply(sample(), Criteria{Keywords: []string{"Tech"}})
	lower := Apply(sample(), Criteria{Keywords: []string{"tech"}})

	if !equalInts(counts(upper.Records), counts(lower.Records)) {
		t.Errorf("Tech=%v tech=%v", counts(upper.Records), counts(lower.Records))
	}
	if len(upper.Records) != 1 {
		t.Errorf("len = %d, want 1", len(upper.Records))
	}

	res := Apply(sample(), Criteria{Keywords: []string{"AI"}, Platforms: []string{"TWITTER"}})
	if got := counts(res.Records); !equalInts(got, []int{1}) {
		t.Errorf("AI on twitter = %v, want [1]", got)
	}
}

func TestApplyMultiValue(t *testing.T) {
	res := Apply(sample(), Criteria{Regions: []string{"eu", "apac"}})
	if got, want := counts(res.Records), []int{3, 1, 4}; !equalInts(got, want) {
		t.Errorf("regions = %v, want %v", got, want)
	}

	res = Apply(sample(), Criteria{ContentTypes: []string{"Text"}})
	if got, want := counts(res.Records), []int{2, 4}; !equalInts(got, want) {
		t.Errorf("content types = %v, want %v", got, want)
	}
}

func TestApplyInclusiveBounds(t *testing.T) {
	start, end := day(2), day(3)
	res := Apply(sample(), Criteria{Start: &start, End: &end})

	if !res.Filtered {
		t.Error("Filtered should be true")
	}
	if got, want := counts(res.Records), []int{3, 5, 1}; !equalInts(got, want) {
		t.Errorf("bounded = %v, want %v", got, want)
	}
}

func TestApplyEmptyResultIsDistinct(t *testing.T) {
	res := Apply(sample(), Criteria{Keywords: []string{"missing"}})
	if !res.Empty() || !res.Filtered {
		t.Errorf("Empty=%v Filtered=%v", res.Empty(), res.Filtered)
	}
	if res.Records == nil {
		t.Error("Records should be non-nil")
	}

	res = Apply(nil, Criteria{})
	if !res.Empty() || res.Filtered {
		t.Errorf("Empty=%v Filtered=%v", res.Empty(), res.Filtered)
	}
}

func TestApplyAllKeywordsRoundTrip(t *testing.T) {
	in := sample()
	seen := map[string]bool{}
	var all []string
	for _, r := range in {
		if !seen[r.Keyword] {
			seen[r.Keyword] = true
			all = append(all, r.Keyword)
		}
	}

	res := Apply(in, Criteria{Keywords: all})
	if len(res.Records) != len(in) {
		t.Errorf("len = %d, want %d", len(res.Records), len(in))
	}
}
