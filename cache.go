package tessel

import (
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gogpu/tessel/geom"
	"github.com/gogpu/tessel/internal/lru"
	"github.com/gogpu/tessel/internal/parallel"
)

// DefaultMaxSize is the compiled-in byte budget for materialized
// shape meshes (4 MB).
const DefaultMaxSize = 4 << 20

// EnvCacheSizeOverride names the environment variable that overrides
// the compiled-in budget at construction. Its value is a number of
// megabytes, e.g. "8" or "0.5". An explicit WithMaxSize wins over the
// override.
const EnvCacheSizeOverride = "TESSEL_CACHE_SIZE_OVERRIDE"

// Tessellator converts a shape description and a style snapshot into a
// newly allocated mesh. Implementations must be pure: the same inputs
// always produce an equivalent mesh, and valid input always produces a
// mesh.
type Tessellator func(d Description, paint Paint) *geom.Mesh

// Option configures a TessellationCache during creation.
type Option func(*cacheOptions)

type cacheOptions struct {
	maxSize int
	pool    Pool
	workers int
}

// WithMaxSize sets the byte budget for materialized shape meshes,
// taking precedence over both the compiled-in default and the
// environment override.
func WithMaxSize(bytes int) Option {
	return func(o *cacheOptions) {
		o.maxSize = bytes
	}
}

// WithPool injects a shared worker pool. The cache references the
// pool but does not own it; Close will not shut it down.
func WithPool(p Pool) Option {
	return func(o *cacheOptions) {
		o.pool = p
	}
}

// WithWorkers sets the worker count of the pool the cache creates for
// itself when no pool is injected.
func WithWorkers(n int) Option {
	return func(o *cacheOptions) {
		o.workers = n
	}
}

// TessellationCache deduplicates and asynchronously computes
// tessellated meshes for shapes and caster shadows.
//
// Shape entries are keyed by Description and held under a byte budget;
// shadow entries are keyed by ShadowDescription, carry no byte
// accounting, and are discarded wholesale on Trim. All methods are
// safe for concurrent use.
type TessellationCache struct {
	mu          sync.Mutex
	maxSize     int
	cache       *lru.Cache[Description, *Buffer]
	shadowCache *lru.Cache[ShadowDescription, *shadowTask]

	pool    Pool
	ownPool *parallel.WorkerPool

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates a tessellation cache. Without options it owns a worker
// pool sized to GOMAXPROCS and budgets DefaultMaxSize bytes, subject
// to the EnvCacheSizeOverride environment variable.
func New(opts ...Option) *TessellationCache {
	o := cacheOptions{maxSize: -1}
	for _, opt := range opts {
		opt(&o)
	}

	maxSize := o.maxSize
	if maxSize < 0 {
		maxSize = DefaultMaxSize
		if v := os.Getenv(EnvCacheSizeOverride); v != "" {
			if mb, err := strconv.ParseFloat(v, 64); err == nil && mb >= 0 {
				maxSize = int(mb * (1 << 20))
				Logger().Debug("cache size override applied",
					"megabytes", mb)
			} else {
				Logger().Warn("ignoring malformed cache size override",
					"value", v)
			}
		}
	}

	c := &TessellationCache{
		maxSize: maxSize,
		pool:    o.pool,
	}
	if c.pool == nil {
		c.ownPool = parallel.NewWorkerPool(o.workers)
		c.pool = c.ownPool
	}

	c.cache = lru.New[Description, *Buffer](func(_ Description, b *Buffer) {
		c.evictions.Add(1)
		b.release()
	})
	c.shadowCache = lru.New[ShadowDescription, *shadowTask](func(_ ShadowDescription, t *shadowTask) {
		t.release()
	})
	return c
}

// Close drops all entries and shuts down the cache's own worker pool,
// if it created one. An injected pool is left running.
func (c *TessellationCache) Close() {
	c.Clear()
	if c.ownPool != nil {
		c.ownPool.Close()
	}
}

// GetOrCreateBuffer returns the cache entry for a description,
// creating and submitting a tessellation task on a miss.
//
// The lookup is purely key-driven: a hit returns the existing entry,
// pending or ready, even if the caller's paint differs from the one
// that created it. On a miss the paint is snapshotted by value, so the
// task never references caller-owned memory. The new entry is inserted
// before GetOrCreateBuffer returns, which is what closes the window
// for duplicate concurrent submissions under the same key.
func (c *TessellationCache) GetOrCreateBuffer(d Description, tessellator Tessellator, paint *Paint) *Buffer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b, ok := c.cache.Get(d); ok {
		c.hits.Add(1)
		return b
	}
	c.misses.Add(1)

	snapshot := *paint
	task := NewTask(func() *geom.Mesh {
		return tessellator(d, snapshot)
	})
	c.pool.Submit(task.Run)

	b := newBuffer(task)
	c.cache.Put(d, b)
	return b
}

// GetSize returns the total byte size of all shape entries. Pending
// entries are materialized to learn their size, so GetSize may block.
func (c *TessellationCache) GetSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sizeLocked()
}

// GetMaxSize returns the current byte budget.
func (c *TessellationCache) GetMaxSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxSize
}

// SetMaxSize sets the byte budget and synchronously evicts oldest
// entries until the materialized total fits.
func (c *TessellationCache) SetMaxSize(bytes int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxSize = bytes
	c.evictToBudgetLocked(c.sizeLocked())
}

// Trim evicts oldest shape entries until the materialized total fits
// the budget, then unconditionally discards every cached shadow.
// Trimming is idempotent while the cache stays under budget.
func (c *TessellationCache) Trim() {
	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := c.evictToBudgetLocked(c.sizeLocked())
	shadows := c.shadowCache.Len()
	c.shadowCache.Clear()
	if evicted > 0 || shadows > 0 {
		Logger().Debug("cache trimmed",
			"evicted", evicted, "shadowsDropped", shadows)
	}
}

// Clear drops all entries from both caches unconditionally.
func (c *TessellationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Clear()
	c.shadowCache.Clear()
}

// Stats describes the cache's current state and lookup history.
type Stats struct {
	// Entries is the number of shape entries, pending or ready.
	Entries int
	// ShadowEntries is the number of cached shadow tasks.
	ShadowEntries int
	// Hits counts shape lookups answered from the cache.
	Hits uint64
	// Misses counts shape lookups that submitted new work.
	Misses uint64
	// Evictions counts shape entries removed for any reason.
	Evictions uint64
}

// Stats returns current cache statistics.
func (c *TessellationCache) Stats() Stats {
	c.mu.Lock()
	entries := c.cache.Len()
	shadows := c.shadowCache.Len()
	c.mu.Unlock()

	return Stats{
		Entries:       entries,
		ShadowEntries: shadows,
		Hits:          c.hits.Load(),
		Misses:        c.misses.Load(),
		Evictions:     c.evictions.Load(),
	}
}

// sizeLocked sums the realized size of every shape entry. Caller must
// hold c.mu.
func (c *TessellationCache) sizeLocked() int {
	size := 0
	c.cache.Range(func(_ Description, b *Buffer) bool {
		size += b.Size()
		return true
	})
	return size
}

// evictToBudgetLocked removes oldest entries until size fits the
// budget, returning the number of evictions. Caller must hold c.mu.
func (c *TessellationCache) evictToBudgetLocked(size int) int {
	evicted := 0
	for size > c.maxSize {
		_, oldest, ok := c.cache.PeekOldest()
		if !ok {
			break
		}
		size -= oldest.Size()
		c.cache.RemoveOldest()
		evicted++
	}
	return evicted
}
