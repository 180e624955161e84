package filecache

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"loopscan/internal/extract"
)

// LRU is the default in-memory cache: a bounded hashicorp/golang-lru store
// under a mutex. Contention is low in practice because batch workers key
// by distinct file paths, so a single mutex is adequate (mirrors §5's note
// that the cache is the only cross-task mutable state and a single map
// mutation under a mutex suffices).
type LRU struct {
	mu     sync.Mutex
	store  *lru.Cache[string, Entry]
	hits   int64
	misses int64
}

// DefaultCapacity is the entry count used when callers don't need to tune
// memory usage explicitly.
const DefaultCapacity = 4096

// NewLRU constructs a bounded in-memory Cache holding up to capacity
// entries. Eviction is least-recently-used.
func NewLRU(capacity int) *LRU {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	store, _ := lru.New[string, Entry](capacity)
	return &LRU{store: store}
}

func (c *LRU) Get(path, hash string) ([]extract.ImportRecord, bool) {
	c.mu.Lock()
	entry, ok := c.store.Get(path)
	c.mu.Unlock()

	if !ok || entry.Hash != hash {
		atomic.AddInt64(&c.misses, 1)
		return nil, false
	}
	atomic.AddInt64(&c.hits, 1)
	return entry.Records, true
}

func (c *LRU) Put(path, hash string, records []extract.ImportRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Add(path, Entry{Hash: hash, Records: records})
}

func (c *LRU) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Remove(path)
}

func (c *LRU) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Purge()
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
}

func (c *LRU) Stats() Stats {
	c.mu.Lock()
	size := c.store.Len()
	c.mu.Unlock()

	hits := atomic.LoadInt64(&c.hits)
	misses := atomic.LoadInt64(&c.misses)

	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}

	return Stats{Size: size, Hits: hits, Misses: misses, HitRate: rate}
}

// process-wide instance, exposed per §4.6's "a process-wide cache instance
// is exposed for convenience; callers may construct private instances to
// scope a run."
var shared = NewLRU(DefaultCapacity)

// Shared returns the process-wide default cache.
func Shared() *LRU { return shared }
