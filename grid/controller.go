package grid

import (
	"go.uber.org/zap"

	"github.com/IvanBrykalov/virtgrid/lru"
)

// Controller orchestrates geometry, the element pool, and a pluggable
// Renderer against one host Surface. It has two states: detached (no
// surface, no subscriptions) and attached (geometry valid, window
// materialized, listening for scroll/resize).
//
// All methods must be called from the host's event loop; see the package
// documentation for the concurrency model.
type Controller[E any] struct {
	renderer Renderer[E]
	surface  Surface[E] // nil while detached

	cellWidth  int
	cellHeight int
	itemCount  int

	geom      Geometry
	scrollTop int

	cache *lru.Cache[int, E]
	pool  pool[E]

	onViewport func(first int, ok bool)
	metrics    Metrics
	log        *zap.Logger
}

// The controller is the surface's event listener.
var _ SurfaceListener = (*Controller[int])(nil)

// New constructs a detached controller. A nil Options.Renderer is allowed
// here; Attach and SetRenderer enforce its presence.
func New[E any](opt Options[E]) *Controller[E] {
	if opt.Metrics == nil {
		opt.Metrics = NopMetrics{}
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	cache := lru.New[int, E](64)
	return &Controller[E]{
		renderer:   opt.Renderer,
		cellWidth:  coerceSetting(opt.CellWidth),
		cellHeight: coerceSetting(opt.CellHeight),
		itemCount:  coerceSetting(opt.ItemCount),
		cache:      cache,
		pool:       pool[E]{cache: cache},
		onViewport: opt.OnViewportChange,
		metrics:    opt.Metrics,
		log:        opt.Logger,
	}
}

// Attach binds the controller to a surface: it subscribes to the surface's
// scroll/resize events, computes geometry, and materializes the window with
// a layout-changed pass. Returns ErrNoRenderer (and changes nothing) if no
// renderer is configured.
func (c *Controller[E]) Attach(s Surface[E]) error {
	if c.renderer == nil {
		return ErrNoRenderer
	}
	if c.surface != nil {
		c.Detach()
	}
	c.surface = s
	s.Subscribe(c)
	c.scrollTop = s.ScrollTop()
	c.refreshLayout()
	return nil
}

// Detach unsubscribes from the surface and enters the detached state. Live
// handles and geometry are kept until the next Attach or an explicit
// invalidation, so re-attaching the same surface is cheap.
func (c *Controller[E]) Detach() {
	if c.surface == nil {
		return
	}
	c.surface.Unsubscribe(c)
	c.surface = nil
}

// Attached reports whether the controller is bound to a surface.
func (c *Controller[E]) Attached() bool { return c.surface != nil }

// SetRenderer installs a new renderer. Assigning nil is an
// invalid-configuration error and is rejected before anything runs.
// Installing the renderer already in place is a no-op. Otherwise every
// live handle is abandoned and cleared without redraw, the renderer is
// swapped in, and a scroll-only pass rebuilds the visible window.
func (c *Controller[E]) SetRenderer(r Renderer[E]) error {
	if r == nil {
		return ErrNoRenderer
	}
	if r == c.renderer {
		return nil
	}
	c.log.Debug("renderer swap", zap.Int("live_handles", c.cache.Len()))
	c.invalidate(EvictSwap)
	c.renderer = r
	if c.surface != nil {
		c.materialize(false)
	}
	return nil
}

// SetCellWidth changes the cell width. Negative values coerce to 0.
func (c *Controller[E]) SetCellWidth(w int) {
	c.cellWidth = coerceSetting(w)
	if c.surface != nil {
		c.refreshLayout()
	}
}

// SetCellHeight changes the cell height. Negative values coerce to 0.
func (c *Controller[E]) SetCellHeight(h int) {
	c.cellHeight = coerceSetting(h)
	if c.surface != nil {
		c.refreshLayout()
	}
}

// SetItemCount changes the number of virtual items. Negative values
// coerce to 0.
func (c *Controller[E]) SetItemCount(n int) {
	c.itemCount = coerceSetting(n)
	if c.surface != nil {
		c.refreshLayout()
	}
}

// InvalidateAll abandons and clears every live handle. With redraw, a
// scroll-only pass repopulates the visible window afterward.
func (c *Controller[E]) InvalidateAll(redraw bool) {
	c.invalidate(EvictInvalidate)
	if redraw && c.surface != nil {
		c.materialize(false)
	}
}

// Geometry returns the layout of the most recent computation.
func (c *Controller[E]) Geometry() Geometry { return c.geom }

// Live returns the number of materialized handles.
func (c *Controller[E]) Live() int { return c.cache.Len() }

// FirstVisibleIndex returns the first strictly-visible index, or ok=false
// for an empty collection.
func (c *Controller[E]) FirstVisibleIndex() (int, bool) {
	return c.geom.FirstVisible(c.scrollTop)
}

// ---- SurfaceListener ----

// SurfaceScrolled handles a scroll notification: geometry is unchanged,
// only the materialization window moves, so this is the cheap hot path.
func (c *Controller[E]) SurfaceScrolled(scrollTop int) {
	if c.surface == nil {
		return
	}
	if scrollTop < 0 {
		scrollTop = 0
	}
	c.scrollTop = scrollTop
	c.materialize(false)
}

// SurfaceResized handles a viewport size change, which may change the
// column count and therefore every position.
func (c *Controller[E]) SurfaceResized() {
	if c.surface == nil {
		return
	}
	c.refreshLayout()
}

// ---- internals ----

// refreshLayout recomputes geometry from the live surface and runs a
// layout-changed pass.
func (c *Controller[E]) refreshLayout() {
	vw, vh := c.surface.Viewport()
	c.geom = ComputeGeometry(vw, vh, c.cellWidth, c.cellHeight, c.itemCount)
	c.pool.limit = c.geom.MaxRetained()
	c.surface.SetContentExtent(c.geom.ContentExtent)
	c.materialize(true)
}

// invalidate abandons every live handle, removes it from the surface's
// display list, and clears the cache. No pass runs here; callers decide
// whether to redraw.
func (c *Controller[E]) invalidate(reason EvictReason) {
	if c.cache.Len() == 0 {
		return
	}
	c.cache.ForEach(func(_ int, el E) {
		c.renderer.Abandon(el)
		if c.surface != nil {
			c.surface.Remove(el)
		}
		c.metrics.Evict(reason)
	})
	c.cache.Clear()
	c.metrics.Size(0)
}

// materialize is the shared pass. For every index in the window it either
// leaves the already-cached handle alone or acquires one, has the renderer
// populate it, and inserts it under the index. On the scroll-only path the
// handful of entering handles are positioned immediately; on the
// layout-changed path positioning is deferred to a single unconditional
// sweep over every live handle, because a changed column count moves
// every on-screen position.
func (c *Controller[E]) materialize(layoutChanged bool) {
	g := c.geom
	topRow, bottomRow := g.Window(c.scrollTop)

	created := 0
	for idx := topRow * g.Columns; idx < bottomRow*g.Columns; idx++ {
		if idx >= c.itemCount {
			// Window padding naturally runs past the collection near
			// its end; not an error.
			break
		}
		if _, ok := c.cache.Get(idx); ok {
			c.metrics.Hit()
			continue
		}
		c.metrics.Miss()
		el, recycled := c.pool.acquire(c.renderer, c.surface)
		if recycled {
			c.metrics.Evict(EvictRecycle)
		}
		c.renderer.Assign(el, idx)
		c.cache.Insert(idx, el)
		created++

		if !layoutChanged {
			row, col := g.RowColumn(idx)
			top, left := g.CellOrigin(row, col)
			c.surface.Place(el, top, left)
		}
	}

	if layoutChanged {
		c.cache.ForEach(func(idx int, el E) {
			row, col := g.RowColumn(idx)
			top, left := g.CellOrigin(row, col)
			c.surface.Place(el, top, left)
		})
	}

	c.metrics.Size(c.cache.Len())
	c.log.Debug("materialization pass",
		zap.Bool("layout_changed", layoutChanged),
		zap.Int("top_row", topRow),
		zap.Int("bottom_row", bottomRow),
		zap.Int("created", created),
		zap.Int("live", c.cache.Len()),
	)

	if c.onViewport != nil {
		first, ok := c.geom.FirstVisible(c.scrollTop)
		c.onViewport(first, ok)
	}
}
