package grid

import (
	"errors"

	"go.uber.org/zap"
)

// ErrNoRenderer is returned when a nil Renderer is assigned or when Attach
// runs without one configured. The rejection is synchronous and leaves the
// controller's state untouched.
var ErrNoRenderer = errors.New("grid: no renderer configured")

// Options configures a controller. Zero values are safe; defaults are
// applied in New():
//   - nil Metrics -> NopMetrics
//   - nil Logger  -> zap.NewNop()
//   - negative cell sizes / item count -> 0
type Options[E any] struct {
	// Renderer produces and tears down visual handles. May be left nil
	// and installed later via SetRenderer, but Attach requires one.
	Renderer Renderer[E]

	// Cell size in pixels and the number of virtual items. All three are
	// live settings: changing one on an attached controller triggers a
	// layout-changed materialization pass.
	CellWidth  int
	CellHeight int
	ItemCount  int

	// OnViewportChange is invoked after every materialization pass with
	// the first strictly-visible index (ok=false for an empty
	// collection). Intended for positional context like "item 42 of 1000".
	OnViewportChange func(firstVisible int, ok bool)

	// Observability.
	Metrics Metrics
	Logger  *zap.Logger
}

// coerceSetting clamps a configuration value the way the configuration
// surface does: anything that does not parse as a non-negative integer
// becomes 0.
func coerceSetting(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
