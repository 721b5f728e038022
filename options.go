package voronoi

import "github.com/fortunesweep/voronoi/internal/trace"

// Option configures an Engine built by New. Grounded on
// katalvlaran/lvlath's core.GraphOption / core.NewGraph(opts...)
// functional-options pattern (§10).
type Option func(*Engine)

// WithTrace attaches a step tracer that logs every site event, circle
// event, and tree-surgery step the Engine performs.
func WithTrace(logger *trace.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithTolerance overrides the default discriminant/near-singularity
// tolerance used by the geometric primitives (§7).
func WithTolerance(tol float64) Option {
	return func(e *Engine) { e.tolerance = tol }
}
