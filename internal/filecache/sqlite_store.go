package filecache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	_ "modernc.org/sqlite"

	"loopscan/internal/extract"
)

// SQLiteStore is an optional persistent Cache backend for scoping a cache
// across process runs, keyed by content hash rather than (size, mtime) —
// a hash match is exact regardless of how the file's mtime was touched.
type SQLiteStore struct {
	db     *sql.DB
	hits   int64
	misses int64
}

const schema = `
CREATE TABLE IF NOT EXISTS file_cache (
	path TEXT PRIMARY KEY,
	hash TEXT NOT NULL,
	records TEXT NOT NULL
);
`

// OpenPersistent opens or creates a cache database at
// {baseDir}/.loopscan/cache/files.db.
func OpenPersistent(baseDir string) (*SQLiteStore, error) {
	cacheDir := filepath.Join(baseDir, ".loopscan", "cache")
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(cacheDir, "files.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying cache schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(path, hash string) ([]extract.ImportRecord, bool) {
	var cachedHash, recordsJSON string
	err := s.db.QueryRow(
		"SELECT hash, records FROM file_cache WHERE path = ?", path,
	).Scan(&cachedHash, &recordsJSON)

	if err != nil || cachedHash != hash {
		atomic.AddInt64(&s.misses, 1)
		return nil, false
	}

	var records []extract.ImportRecord
	if err := json.Unmarshal([]byte(recordsJSON), &records); err != nil {
		atomic.AddInt64(&s.misses, 1)
		return nil, false
	}

	atomic.AddInt64(&s.hits, 1)
	return records, true
}

func (s *SQLiteStore) Put(path, hash string, records []extract.ImportRecord) {
	recordsJSON, err := json.Marshal(records)
	if err != nil {
		return
	}
	s.db.Exec(
		`INSERT OR REPLACE INTO file_cache (path, hash, records) VALUES (?, ?, ?)`,
		path, hash, string(recordsJSON),
	)
}

func (s *SQLiteStore) Invalidate(path string) {
	s.db.Exec("DELETE FROM file_cache WHERE path = ?", path)
}

func (s *SQLiteStore) Clear() {
	s.db.Exec("DELETE FROM file_cache")
	atomic.StoreInt64(&s.hits, 0)
	atomic.StoreInt64(&s.misses, 0)
}

func (s *SQLiteStore) Stats() Stats {
	var size int
	s.db.QueryRow("SELECT COUNT(*) FROM file_cache").Scan(&size)

	hits := atomic.LoadInt64(&s.hits)
	misses := atomic.LoadInt64(&s.misses)

	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}

	return Stats{Size: size, Hits: hits, Misses: misses, HitRate: rate}
}

var _ Cache = (*SQLiteStore)(nil)
var _ Cache = (*LRU)(nil)
