// Package filecache caches the extracted import records for a file, keyed
// by its content hash, so that re-analyzing an unchanged tree does not
// re-parse every file.
package filecache

import "loopscan/internal/extract"

// Entry is what the cache stores against a path: the content hash it was
// computed from, plus the extracted records.
type Entry struct {
	Hash    string
	Records []extract.ImportRecord
}

// Stats reports read-only cache usage counters.
type Stats struct {
	Size    int
	Hits    int64
	Misses  int64
	HitRate float64
}

// Cache is the contract §4.6 describes. Implementations must be safe for
// concurrent use: the pipeline's batch workers share one instance.
type Cache interface {
	// Get returns the cached records for path if its stored hash matches
	// hash exactly; otherwise it reports a miss.
	Get(path, hash string) ([]extract.ImportRecord, bool)

	Put(path, hash string, records []extract.ImportRecord)

	Invalidate(path string)

	Clear()

	Stats() Stats
}
