// Package grid implements a virtualization and recycling engine for an
// unbounded, indexable collection of uniform-size cells shown inside a
// finite scrollable viewport. Only the cells near the viewport (the
// materialization window) ever own a live visual handle; everything else
// exists as pure arithmetic.
//
// Design
//
//   - Geometry: a pure computation translates (viewport size, cell size,
//     item count, scroll offset) into a column/row layout, a total scrollable
//     extent, and the window of rows that must currently be materialized.
//     The window pads the strictly-visible band with one page above and
//     below so fast scrolling does not expose empty cells between passes.
//
//   - Recycling: live handles are tracked in a recency-ordered cache
//     (package lru) keyed by virtual index. When the pool limit of six
//     pages worth of handles is reached, the least-recently-seen handle is
//     reclaimed and repopulated for the incoming index instead of
//     manufacturing a new one. This trades a bounded amount of memory for
//     zero handle churn on the hot scroll path.
//
//   - Capability boundaries: the engine never draws. A Renderer creates,
//     populates, and abandons handles; a Surface reports viewport size,
//     accepts appended handles and their positions, and delivers scroll and
//     resize notifications to subscribed listeners. Both are implemented by
//     the surrounding application.
//
//   - Passes: a scroll-only pass positions just the handles entering the
//     window. A layout-changed pass (resize, cell-size or item-count change)
//     additionally repositions every live handle, because a column-count
//     change invalidates every on-screen position.
//
// Concurrency
//
// The engine is single-threaded and event-driven. Every public entry point
// runs to completion before the next host event is dispatched; a controller
// and its cache are exclusively owned by one surface and need no locking.
//
// Basic usage
//
//	ctrl := grid.New(grid.Options[*Tile]{
//	    Renderer:   tileRenderer{},
//	    CellWidth:  320,
//	    CellHeight: 240,
//	    ItemCount:  len(photos),
//	    OnViewportChange: func(first int, ok bool) {
//	        if ok {
//	            statusBar.Show(first, len(photos))
//	        }
//	    },
//	})
//	if err := ctrl.Attach(surface); err != nil {
//	    // no renderer configured
//	}
//	// ... the surface delivers scroll/resize events from here on.
//	ctrl.Detach()
package grid
