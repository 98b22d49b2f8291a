package lru

// node is an intrusive doubly linked list element owned by the cache.
// The list is ordered strictly newest→oldest: following older links from
// the newest node visits every resident entry exactly once and ends at
// the oldest node.
type node[K comparable, V any] struct {
	key K
	val V

	// Intrusive list links. newer points toward the newest end,
	// older toward the oldest end.
	newer *node[K, V]
	older *node[K, V]
}
