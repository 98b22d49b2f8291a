package grid

// EvictReason explains why a handle left the cache.
type EvictReason int

const (
	// EvictRecycle means the pool reclaimed the handle for reuse under a
	// new index.
	EvictRecycle EvictReason = iota
	// EvictInvalidate means an explicit full invalidation dropped it.
	EvictInvalidate
	// EvictSwap means a renderer replacement dropped it.
	EvictSwap
)

// Metrics exposes engine-level observability hooks. NopMetrics is used by
// default; plug the metrics/prom adapter to export to Prometheus.
type Metrics interface {
	// Hit records that an index in the window already owned a live handle.
	Hit()
	// Miss records that an index in the window needed a handle from the pool.
	Miss()
	// Evict records a handle leaving the cache for the given reason.
	Evict(reason EvictReason)
	// Size records the number of live handles after a pass.
	Size(entries int)
}

// NopMetrics is a drop-in Metrics implementation that does nothing.
type NopMetrics struct{}

func (NopMetrics) Hit()              {}
func (NopMetrics) Miss()             {}
func (NopMetrics) Evict(EvictReason) {}
func (NopMetrics) Size(int)          {}

var _ Metrics = NopMetrics{}
