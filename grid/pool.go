package grid

import "github.com/IvanBrykalov/virtgrid/lru"

// pool bounds the number of live visual handles. It shares the controller's
// cache: acquiring a handle either recycles the cache's oldest entry (when
// the limit is exceeded) or manufactures a fresh one and registers it with
// the surface. The limit is recomputed with the geometry, so a resize
// immediately tightens or relaxes retention.
type pool[E any] struct {
	cache *lru.Cache[int, E]
	limit int
}

// acquire returns a handle ready for Assign. recycled reports whether it
// was reclaimed from the cache (the caller must repopulate it) rather than
// freshly created. The cache may transiently hold one handle above the
// limit; the next acquire reclaims it.
func (p *pool[E]) acquire(r Renderer[E], s Surface[E]) (el E, recycled bool) {
	if p.cache.Len() > p.limit {
		if e, ok := p.cache.EvictOldest(); ok {
			return e.Value, true
		}
	}
	el = r.Create()
	s.Append(el)
	return el, false
}
