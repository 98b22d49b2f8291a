// Package provider supplies item data to renderers: the count that drives
// the virtual grid and, for image-backed cells, the per-index content. The
// engine itself never sees a provider; renderers consume one when the
// controller asks them to populate a handle.
package provider

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/IvanBrykalov/virtgrid/lru"
)

// defaultCacheSize is the number of loaded values retained per provider.
const defaultCacheSize = 200

// Provider reports how many items exist. Its Count feeds the controller's
// item-count setting.
type Provider interface {
	Count() int
}

// LoadFunc fetches the value for one index (thumbnail decode, database
// read, …). It may be called from multiple goroutines.
type LoadFunc[V any] func(ctx context.Context, index int) (V, error)

// Cached is a loader-backed provider with an LRU cache in front: repeated
// requests for an index near the viewport are served from memory, and
// concurrent loads for the same index are coalesced so slow decodes run
// once. Safe for concurrent use.
type Cached[V any] struct {
	count int
	load  LoadFunc[V]

	mu    sync.Mutex
	cache *lru.Cache[int, V]
	limit int

	sf singleflight.Group
}

// NewCached builds a provider over count items. cacheSize bounds retained
// values; non-positive means the default (200).
func NewCached[V any](count, cacheSize int, load LoadFunc[V]) *Cached[V] {
	if count < 0 {
		count = 0
	}
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	return &Cached[V]{
		count: count,
		load:  load,
		cache: lru.New[int, V](cacheSize),
		limit: cacheSize,
	}
}

// Count returns the number of items.
func (p *Cached[V]) Count() int { return p.count }

// Get returns the value for index, loading it on a cache miss. Concurrent
// misses for the same index share one load.
func (p *Cached[V]) Get(ctx context.Context, index int) (V, error) {
	if v, ok := p.cached(index); ok {
		return v, nil
	}

	v, err, _ := p.sf.Do(strconv.Itoa(index), func() (any, error) {
		// Double-check after joining the flight.
		if v, ok := p.cached(index); ok {
			return v, nil
		}
		v, err := p.load(ctx, index)
		if err != nil {
			return nil, err
		}
		p.store(index, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Warm prefetches the values for [from, to) with up to parallel concurrent
// loads. Errors abort the remaining loads and are returned. Intended for
// priming the initial materialization window before the first draw.
func (p *Cached[V]) Warm(ctx context.Context, from, to, parallel int) error {
	if from < 0 {
		from = 0
	}
	if to > p.count {
		to = p.count
	}
	if parallel < 1 {
		parallel = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := from; i < to; i++ {
		i := i
		g.Go(func() error {
			_, err := p.Get(ctx, i)
			return err
		})
	}
	return g.Wait()
}

func (p *Cached[V]) cached(index int) (V, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cache.Get(index)
}

func (p *Cached[V]) store(index int, v V) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.cache.Get(index); ok {
		return
	}
	if p.cache.Len() >= p.limit {
		p.cache.EvictOldest()
	}
	p.cache.Insert(index, v)
}
