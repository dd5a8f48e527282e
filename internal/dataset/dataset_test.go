// MediaPulse - Trending Content Analyzer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapulse

package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), LoadOptions{})
	if !errors.Is(err, ErrDatasetNotFound) {
		t.Fatalf("expected ErrDatasetNotFound, got %v", err)
	}
}

func TestLoadReadsHeadersAndNulls(t *testing.T) {
	path := writeFile(t, t.TempDir(), "d.csv",
		"date,keyword,platform\n2024-01-01,ai,Twitter\n2024-01-02,,NA\n2024-01-03,go,\n")

	tbl, err := Load(context.Background(), path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := strings.Join(tbl.Headers(), ","); got != "date,keyword,platform" {
		t.Errorf("headers = %s", got)
	}
	if tbl.Len() != 3 {
		t.Fatalf("Len = %d, want 3", tbl.Len())
	}

	if v, ok := tbl.Value(0, 2); !ok || v != "Twitter" {
		t.Errorf("Value(0,2) = %q, %v", v, ok)
	}
	if _, ok := tbl.Value(1, 1); ok {
		t.Error("empty keyword cell should be null")
	}
	if _, ok := tbl.Value(1, 2); ok {
		t.Error("NA cell should be null")
	}
	if _, ok := tbl.Value(2, 2); ok {
		t.Error("trailing empty cell should be null")
	}
	if _, ok := tbl.Value(5, 0); ok {
		t.Error("out of range row should not be ok")
	}
}

func TestParsePadsShortRows(t *testing.T) {
	tbl, err := Parse(strings.NewReader("a,b,c\n1,2\n"), LoadOptions{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v, ok := tbl.Value(0, 1); !ok || v != "2" {
		t.Errorf("Value(0,1) = %q, %v", v, ok)
	}
	if _, ok := tbl.Value(0, 2); ok {
		t.Error("padded cell should be null")
	}
}

func TestParseRejectsLongRows(t *testing.T) {
	_, err := Parse(strings.NewReader("a,b\n1,2,3\n"), LoadOptions{})
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestParseHeaderOnlyAndEmpty(t *testing.T) {
	tbl, err := Parse(strings.NewReader("date,keyword\n"), LoadOptions{})
	if err != nil {
		t.Fatalf("Parse header only: %v", err)
	}
	if tbl.Len() != 0 || len(tbl.Headers()) != 2 {
		t.Errorf("header-only table: len=%d headers=%v", tbl.Len(), tbl.Headers())
	}

	tbl, err = Parse(strings.NewReader(""), LoadOptions{})
	if err != nil {
		t.Fatalf("Parse empty: %v", err)
	}
	if tbl.Len() != 0 || len(tbl.Headers()) != 0 {
		t.Errorf("empty table: len=%d headers=%v", tbl.Len(), tbl.Headers())
	}
}

func TestParseDelimiter(t *testing.T) {
	tbl, err := Parse(strings.NewReader("date;keyword\n2024-01-01;ai\n"), LoadOptions{Delimiter: ';'})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v, ok := tbl.Value(0, 1); !ok || v != "ai" {
		t.Errorf("Value(0,1) = %q, %v", v, ok)
	}

	if _, err := Parse(strings.NewReader("a\n"), LoadOptions{Delimiter: '"'}); !errors.Is(err, ErrMalformed) {
		t.Errorf("quote delimiter should be rejected, got %v", err)
	}
}

func TestStoreReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "d.csv", "date,keyword\n2024-01-01,ai\n")

	builds := 0
	store := NewStore(path, LoadOptions{}, func(_ context.Context, tbl *Table) (int, error) {
		builds++
		return tbl.Len(), nil
	})

	if _, ok := store.Current(); ok {
		t.Fatal("store should start empty")
	}

	snap, err := store.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Data != 1 {
		t.Errorf("Data = %d, want 1", snap.Data)
	}

	// Unchanged file: no rebuild.
	if _, err := store.Snapshot(context.Background()); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if builds != 1 {
		t.Errorf("builds = %d, want 1", builds)
	}

	writeFile(t, dir, "d.csv", "date,keyword\n2024-01-01,ai\n2024-01-02,go\n")
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	changed, err := store.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if !changed {
		t.Error("Refresh should report a change")
	}
	snap, _ = store.Current()
	if snap.Data != 2 {
		t.Errorf("Data = %d, want 2", snap.Data)
	}
}

func TestStoreMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.csv"), LoadOptions{}, func(_ context.Context, tbl *Table) (int, error) {
		return tbl.Len(), nil
	})
	if _, err := store.Snapshot(context.Background()); !errors.Is(err, ErrDatasetNotFound) {
		t.Fatalf("expected ErrDatasetNotFound, got %v", err)
	}
}

func TestStoreBuildError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "d.csv", "date,keyword\n2024-01-01,ai\n")
	boom := errors.New("boom")
	store := NewStore(path, LoadOptions{}, func(_ context.Context, _ *Table) (int, error) {
		return 0, boom
	})
	if _, err := store.Snapshot(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected build error, got %v", err)
	}
	if _, ok := store.Current(); ok {
		t.Error("failed build must not publish a snapshot")
	}
}

func TestStoreConcurrentSnapshots(t *testing.T) {
	path := writeFile(t, t.TempDir(), "d.csv", "date,keyword\n2024-01-01,ai\n")
	var mu sync.Mutex
	builds := 0
	store := NewStore(path, LoadOptions{}, func(_ context.Context, tbl *Table) (int, error) {
		mu.Lock()
		builds++
		mu.Unlock()
		return tbl.Len(), nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Snapshot(context.Background()); err != nil {
				t.Errorf("Snapshot: %v", err)
			}
		}()
	}
	wg.Wait()

	if builds != 1 {
		t.Errorf("builds = %d, want 1", builds)
	}
}

func TestVersionString(t *testing.T) {
	v := Version{ModTime: time.Unix(0, 42), Size: 7}
	if v.String() != "42-7" {
		t.Errorf("String = %q", v.String())
	}
}
