// Package lru provides a generic, recency-ordered associative container:
// a map for O(1) key lookup plus an intrusive doubly linked list ordered
// strictly newest→oldest for O(1) promotion and O(N) oldest-first eviction.
//
// The cache is the bookkeeping core of the virtualization engine: it tracks
// which virtual indices currently own a live visual handle and decides which
// handle is the best candidate to reclaim when the element pool is full.
//
// It is not safe for concurrent use. The engine is single-threaded and
// event-driven; a cache instance is exclusively owned by one controller.
// Wrap it in a mutex if you need to share one outside that model.
package lru
