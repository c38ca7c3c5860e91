// Package lru provides the ordered key/value store backing the
// tessellation caches: access promotes recency, eviction removes the
// oldest entry first, and a removal listener observes every departure.
package lru

// RemovalFunc is invoked exactly once for every entry that leaves the
// cache, whether through Remove, RemoveOldest, replacement by Put, or
// Clear.
type RemovalFunc[K comparable, V any] func(key K, value V)

// node is a doubly-linked list node. The head is the most recently
// used entry, the tail the least recently used.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// Cache is a generic LRU map. It is not synchronized: the owning cache
// serializes access under its own lock, mirroring the split between
// list mechanics and locking in the callers.
type Cache[K comparable, V any] struct {
	entries  map[K]*node[K, V]
	head     *node[K, V]
	tail     *node[K, V]
	onRemove RemovalFunc[K, V]
}

// New creates an empty cache. onRemove may be nil.
func New[K comparable, V any](onRemove RemovalFunc[K, V]) *Cache[K, V] {
	return &Cache[K, V]{
		entries:  make(map[K]*node[K, V]),
		onRemove: onRemove,
	}
}

// Get retrieves a value and promotes it to most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	n, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.moveToFront(n)
	return n.value, true
}

// Put inserts a value under key, promoting it to most recently used.
// An existing entry under the same key is removed first, notifying the
// removal listener; the new value then takes its place.
func (c *Cache[K, V]) Put(key K, value V) {
	if n, ok := c.entries[key]; ok {
		old := n.value
		n.value = value
		c.moveToFront(n)
		if c.onRemove != nil {
			c.onRemove(key, old)
		}
		return
	}

	n := &node[K, V]{key: key, value: value}
	c.entries[key] = n
	c.pushFront(n)
}

// PeekOldest returns the least recently used entry without promoting
// or removing it.
func (c *Cache[K, V]) PeekOldest() (K, V, bool) {
	if c.tail == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return c.tail.key, c.tail.value, true
}

// RemoveOldest removes the least recently used entry, notifying the
// removal listener. Returns false if the cache is empty.
func (c *Cache[K, V]) RemoveOldest() bool {
	if c.tail == nil {
		return false
	}
	c.remove(c.tail)
	return true
}

// Remove removes the entry under key, notifying the removal listener.
// Returns true if the entry existed.
func (c *Cache[K, V]) Remove(key K) bool {
	n, ok := c.entries[key]
	if !ok {
		return false
	}
	c.remove(n)
	return true
}

// Clear removes every entry, notifying the removal listener for each,
// oldest first.
func (c *Cache[K, V]) Clear() {
	for c.tail != nil {
		c.remove(c.tail)
	}
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Range calls fn for every entry, oldest first, without promoting.
// Iteration stops if fn returns false. fn must not mutate the cache.
func (c *Cache[K, V]) Range(fn func(key K, value V) bool) {
	for n := c.tail; n != nil; n = n.prev {
		if !fn(n.key, n.value) {
			return
		}
	}
}

func (c *Cache[K, V]) remove(n *node[K, V]) {
	delete(c.entries, n.key)
	c.unlink(n)
	if c.onRemove != nil {
		c.onRemove(n.key, n.value)
	}
}

func (c *Cache[K, V]) pushFront(n *node[K, V]) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *Cache[K, V]) moveToFront(n *node[K, V]) {
	if n == c.head {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

func (c *Cache[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}
