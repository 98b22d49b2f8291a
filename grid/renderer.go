package grid

// Renderer manufactures, populates, and releases visual handles. It is the
// pluggable capability that knows what a cell looks like; the controller
// only decides which indices need one. Implementations correspond to
// different visual representations (debug placeholder, image-backed tile,
// …) and are selected by the surrounding application.
type Renderer[E any] interface {
	// Create manufactures a new, otherwise-empty visual handle.
	// The controller registers it with the surface's display list.
	Create() E

	// Assign populates el to represent the item at index. It must be
	// idempotent and must not touch state belonging to other indices:
	// recycled handles are re-assigned without an intervening Abandon.
	Assign(el E, index int)

	// Abandon releases any index-specific resources held by el. The
	// handle itself may still be reused by the pool afterward, or torn
	// down by the host surface separately.
	Abandon(el E)
}

// Surface is the host the controller materializes into. It reports the
// current viewport, accepts handles and their positions, and delivers
// scroll/resize events to subscribed listeners.
type Surface[E any] interface {
	// Viewport returns the current viewport size in pixels.
	Viewport() (width, height int)

	// ScrollTop returns the current vertical scroll offset.
	ScrollTop() int

	// SetContentExtent sets the total scrollable height.
	SetContentExtent(height int)

	// Append adds a freshly created handle to the display list.
	Append(el E)

	// Remove detaches an abandoned handle from the display list.
	Remove(el E)

	// Place positions a handle at (top, left) in content coordinates.
	Place(el E, top, left int)

	// Subscribe registers a listener for scroll and resize events.
	// Unsubscribe removes it; no events may be delivered afterward.
	// Subscriptions are scoped to the controller's attach/detach
	// lifecycle, so a detached controller never receives stale events.
	Subscribe(SurfaceListener)
	Unsubscribe(SurfaceListener)
}

// SurfaceListener receives host events. The controller implements it.
type SurfaceListener interface {
	// SurfaceScrolled reports a new vertical scroll offset.
	SurfaceScrolled(scrollTop int)

	// SurfaceResized reports that the viewport size changed.
	SurfaceResized()
}
