package gradient

import (
	"container/list"
	"encoding/binary"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
)

// maxCachedTables bounds the process-wide table cache. Each entry holds one
// 1x256 table at 4 or 8 bytes per texel, so the cache tops out at a few KB.
const maxCachedTables = 32

// tableKey derives the content-addressing key for a built table:
// {colorCount, colors raw bytes, positions (3+ stops only), flags, format}.
// Gradients with bit-identical canonical data and encoding produce
// identical keys.
func (g *Gradient) tableKey(colors []Color4f, format gputypes.TextureFormat) string {
	n := len(colors)
	key := make([]byte, 0, 4+16*n+4*n+8)

	key = binary.LittleEndian.AppendUint32(key, uint32(n))
	for _, c := range colors {
		key = binary.LittleEndian.AppendUint32(key, math.Float32bits(c.R))
		key = binary.LittleEndian.AppendUint32(key, math.Float32bits(c.G))
		key = binary.LittleEndian.AppendUint32(key, math.Float32bits(c.B))
		key = binary.LittleEndian.AppendUint32(key, math.Float32bits(c.A))
	}
	// Two-stop gradients are always evenly spaced, so positions only
	// discriminate when there are three or more stops.
	if n > 2 {
		for i := 1; i < n; i++ {
			key = binary.LittleEndian.AppendUint32(key, math.Float32bits(g.Pos(i)))
		}
	}
	key = binary.LittleEndian.AppendUint32(key, uint32(g.flags))
	key = binary.LittleEndian.AppendUint32(key, uint32(format))

	return string(key)
}

// tableCache is a bounded LRU mapping canonical gradient keys to built
// lookup tables. A single mutex is held across the entire find-or-build:
// a miss on any key blocks all other callers until its build finishes.
// That serializes unrelated builds, but builds are bounded CPU work over
// 256 texels and the coarse lock guarantees at most one build per key and
// no torn reads. See the package design notes before sharding this.
type tableCache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	lru     *list.List // front = most recent; values are *tableCacheEntry

	hits   atomic.Uint64
	misses atomic.Uint64
}

type tableCacheEntry struct {
	key   string
	table *Table
}

func newTableCache() *tableCache {
	return &tableCache{
		entries: make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// findOrBuild returns the cached table for key, invoking build on a miss.
// The returned table is shared; callers must treat it as read-only.
func (c *tableCache) findOrBuild(key string, build func() *Table) *Table {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.lru.MoveToFront(el)
		c.hits.Add(1)
		return el.Value.(*tableCacheEntry).table
	}
	c.misses.Add(1)

	table := build()

	for c.lru.Len() >= maxCachedTables {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*tableCacheEntry).key)
		slogger().Debug("gradient table evicted", "entries", c.lru.Len())
	}
	c.entries[key] = c.lru.PushFront(&tableCacheEntry{key: key, table: table})
	slogger().Debug("gradient table built", "entries", c.lru.Len())

	return table
}

// len returns the current entry count.
func (c *tableCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// CacheStats holds counters for the process-wide table cache.
type CacheStats struct {
	Len      int
	Capacity int
	Hits     uint64
	Misses   uint64
	HitRate  float64
}

// stats returns current counters. Mostly lock-free (atomic counters).
func (c *tableCache) stats() CacheStats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return CacheStats{
		Len:      c.len(),
		Capacity: maxCachedTables,
		Hits:     hits,
		Misses:   misses,
		HitRate:  hitRate,
	}
}

// TableCacheStats returns activity counters for the process-wide lookup
// table cache.
func TableCacheStats() CacheStats {
	return sharedTableCache().stats()
}

var (
	gTableCache     *tableCache
	gTableCacheOnce sync.Once
)

// sharedTableCache returns the process-wide table cache, created lazily on
// first use.
func sharedTableCache() *tableCache {
	gTableCacheOnce.Do(func() {
		gTableCache = newTableCache()
	})
	return gTableCache
}
