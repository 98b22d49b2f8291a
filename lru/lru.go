package lru

import "fmt"

// Entry is a (key, value) pair returned by an eviction. Ownership of the
// value transfers to the caller; the cache keeps no reference to it.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Cache is a recency-ordered map. Get promotes, Insert links at the newest
// end, Evict reclaims from the oldest end. All single-entry operations are
// O(1); Evict(n) is O(n); ForEach is O(len).
type Cache[K comparable, V any] struct {
	m      map[K]*node[K, V]
	newest *node[K, V]
	oldest *node[K, V]
}

// New returns an empty cache. hint sizes the internal map and may be 0.
func New[K comparable, V any](hint int) *Cache[K, V] {
	if hint < 0 {
		hint = 0
	}
	return &Cache[K, V]{m: make(map[K]*node[K, V], hint)}
}

// Get returns the value for k and promotes the entry to newest.
// A miss has no side effect.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	n, ok := c.m[k]
	if !ok {
		var zero V
		return zero, false
	}
	c.moveToNewest(n)
	return n.val, true
}

// Insert creates a new entry and links it as the newest.
//
// Precondition: k must not be resident. Inserting a live key would leave
// the old node linked in the recency list but unreachable by lookup, so
// the cache asserts instead of corrupting itself. Delete first to replace.
func (c *Cache[K, V]) Insert(k K, v V) {
	if _, exists := c.m[k]; exists {
		panic(fmt.Sprintf("lru: duplicate insert of resident key %v", k))
	}
	n := &node[K, V]{key: k, val: v}
	c.m[k] = n
	c.linkNewest(n)
}

// Delete removes the entry for k if present. Returns true if it existed.
func (c *Cache[K, V]) Delete(k K) bool {
	n, ok := c.m[k]
	if !ok {
		return false
	}
	c.unlink(n)
	delete(c.m, k)
	return true
}

// EvictOldest removes and returns the least-recently-used entry.
// Returns ok=false if the cache is empty.
func (c *Cache[K, V]) EvictOldest() (Entry[K, V], bool) {
	n := c.oldest
	if n == nil {
		return Entry[K, V]{}, false
	}
	c.unlink(n)
	delete(c.m, n.key)
	return Entry[K, V]{Key: n.key, Value: n.val}, true
}

// Evict removes up to count oldest entries (fewer if the cache holds less)
// and returns them in oldest-first order.
func (c *Cache[K, V]) Evict(count int) []Entry[K, V] {
	if count <= 0 {
		return nil
	}
	if count > len(c.m) {
		count = len(c.m)
	}
	out := make([]Entry[K, V], 0, count)
	for i := 0; i < count; i++ {
		e, ok := c.EvictOldest()
		if !ok {
			break
		}
		out = append(out, e)
	}
	return out
}

// ForEach visits every resident entry in newest→oldest order without
// changing recency. fn must not mutate the cache.
func (c *Cache[K, V]) ForEach(fn func(k K, v V)) {
	for n := c.newest; n != nil; n = n.older {
		fn(n.key, n.val)
	}
}

// Clear drops all entries and resets both endpoints. Per-entry teardown is
// the caller's responsibility and must happen before Clear.
func (c *Cache[K, V]) Clear() {
	clear(c.m)
	c.newest, c.oldest = nil, nil
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int { return len(c.m) }

// -------------------- list operations --------------------

// linkNewest inserts n at the newest end in O(1).
func (c *Cache[K, V]) linkNewest(n *node[K, V]) {
	n.newer = nil
	n.older = c.newest
	if c.newest != nil {
		c.newest.newer = n
	}
	c.newest = n
	if c.oldest == nil {
		c.oldest = n
	}
}

// moveToNewest promotes n in O(1). Already-newest is a no-op.
func (c *Cache[K, V]) moveToNewest(n *node[K, V]) {
	if n == c.newest {
		return
	}
	// detach
	if n.newer != nil {
		n.newer.older = n.older
	}
	if n.older != nil {
		n.older.newer = n.newer
	}
	if c.oldest == n {
		c.oldest = n.newer
	}
	// relink at the newest end
	n.newer = nil
	n.older = c.newest
	if c.newest != nil {
		c.newest.newer = n
	}
	c.newest = n
}

// unlink splices n out of the list and updates endpoints in O(1).
func (c *Cache[K, V]) unlink(n *node[K, V]) {
	if n.newer != nil {
		n.newer.older = n.older
	}
	if n.older != nil {
		n.older.newer = n.newer
	}
	if c.newest == n {
		c.newest = n.older
	}
	if c.oldest == n {
		c.oldest = n.newer
	}
	n.newer, n.older = nil, nil
}

// invariant verifies the recency-list structure against the map: walking
// newest→oldest visits exactly Len() nodes with no duplicate keys,
// terminates at oldest, and both endpoints are nil iff the map is empty.
// Violation indicates a programming defect, so callers (tests, debug
// builds) should treat a non-nil result as fatal.
func (c *Cache[K, V]) invariant() error {
	if len(c.m) == 0 {
		if c.newest != nil || c.oldest != nil {
			return fmt.Errorf("lru: empty map but endpoints set (newest=%p oldest=%p)", c.newest, c.oldest)
		}
		return nil
	}
	if c.newest == nil || c.oldest == nil {
		return fmt.Errorf("lru: %d entries but nil endpoint", len(c.m))
	}
	seen := make(map[K]bool, len(c.m))
	var last *node[K, V]
	count := 0
	for n := c.newest; n != nil; n = n.older {
		if seen[n.key] {
			return fmt.Errorf("lru: duplicate key %v in recency list", n.key)
		}
		seen[n.key] = true
		if m, ok := c.m[n.key]; !ok || m != n {
			return fmt.Errorf("lru: listed node for key %v not in map", n.key)
		}
		count++
		if count > len(c.m) {
			return fmt.Errorf("lru: list longer than map (len=%d)", len(c.m))
		}
		last = n
	}
	if count != len(c.m) {
		return fmt.Errorf("lru: list visits %d nodes, map holds %d", count, len(c.m))
	}
	if last != c.oldest {
		return fmt.Errorf("lru: traversal does not terminate at oldest")
	}
	return nil
}
