// Package prom exports the engine's Metrics signals as Prometheus series.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/IvanBrykalov/virtgrid/grid"
)

// Adapter implements grid.Metrics and exports Prometheus counters/gauges.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type Adapter struct {
	hits    prometheus.Counter
	misses  prometheus.Counter
	evicts  *prometheus.CounterVec
	handles prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:         registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:     Prometheus namespace and subsystem
//   - constLabels: static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "window_hits_total",
			Help:        "Window indices that already owned a live handle",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "window_misses_total",
			Help:        "Window indices that needed a handle from the pool",
			ConstLabels: constLabels,
		}),
		evicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "handle_evictions_total",
				Help:        "Handles dropped from the cache by reason",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
		handles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "live_handles",
			Help:        "Materialized visual handles after the last pass",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.evicts, a.handles)
	return a
}

// Hit increments the window-hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss increments the window-miss counter.
func (a *Adapter) Miss() { a.misses.Inc() }

// Evict increments the eviction counter with a reason label.
func (a *Adapter) Evict(r grid.EvictReason) {
	a.evicts.WithLabelValues(reason(r)).Inc()
}

// Size updates the live-handle gauge.
func (a *Adapter) Size(entries int) { a.handles.Set(float64(entries)) }

// reason maps grid.EvictReason to a stable label value.
func reason(r grid.EvictReason) string {
	switch r {
	case grid.EvictInvalidate:
		return "invalidate"
	case grid.EvictSwap:
		return "renderer_swap"
	default:
		return "recycle"
	}
}

// Compile-time check: ensure Adapter implements grid.Metrics.
var _ grid.Metrics = (*Adapter)(nil)
