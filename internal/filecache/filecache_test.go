package filecache

import (
	"os"
	"path/filepath"
	"testing"

	"loopscan/internal/extract"
)

func sampleRecords() []extract.ImportRecord {
	return []extract.ImportRecord{
		{Source: "./a", Kind: extract.KindStaticESM, Specifiers: []string{"a"}, Line: 1},
	}
}

func TestLRU_PutThenGet(t *testing.T) {
	c := NewLRU(16)
	c.Put("/x.ts", "hash1", sampleRecords())

	records, ok := c.Get("/x.ts", "hash1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(records) != 1 || records[0].Source != "./a" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestLRU_HashMismatchIsMiss(t *testing.T) {
	c := NewLRU(16)
	c.Put("/x.ts", "hash1", sampleRecords())

	_, ok := c.Get("/x.ts", "hash2")
	if ok {
		t.Fatal("expected miss on hash mismatch")
	}
}

func TestLRU_StatsTrackHitsAndMisses(t *testing.T) {
	c := NewLRU(16)
	c.Put("/x.ts", "hash1", sampleRecords())

	c.Get("/x.ts", "hash1")
	c.Get("/x.ts", "wrong")
	c.Get("/missing.ts", "hash1")

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.HitRate != 1.0/3.0 {
		t.Errorf("unexpected hit rate: %v", stats.HitRate)
	}
}

func TestLRU_InvalidateAndClear(t *testing.T) {
	c := NewLRU(16)
	c.Put("/x.ts", "hash1", sampleRecords())
	c.Invalidate("/x.ts")

	if _, ok := c.Get("/x.ts", "hash1"); ok {
		t.Fatal("expected miss after invalidation")
	}

	c.Put("/y.ts", "hash2", sampleRecords())
	c.Clear()
	if c.Stats().Size != 0 {
		t.Fatal("expected empty cache after Clear")
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenPersistent(dir)
	if err != nil {
		t.Fatalf("OpenPersistent failed: %v", err)
	}
	defer store.Close()

	store.Put("/x.ts", "hash1", sampleRecords())

	records, ok := store.Get("/x.ts", "hash1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if len(records) != 1 || records[0].Source != "./a" {
		t.Errorf("unexpected records: %+v", records)
	}

	if _, ok := store.Get("/x.ts", "stale"); ok {
		t.Fatal("expected miss on hash mismatch")
	}

	dbPath := filepath.Join(dir, ".loopscan", "cache", "files.db")
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("expected database file at %s: %v", dbPath, err)
	}
}
