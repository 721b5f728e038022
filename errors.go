package voronoi

import "errors"

var (
	// ErrInvalidWidth indicates New was called with a non-positive width.
	ErrInvalidWidth = errors.New("voronoi: width must be positive")

	// ErrInvalidSite indicates a site fell outside the supported
	// non-negative coordinate range (§7).
	ErrInvalidSite = errors.New("voronoi: site coordinates must be non-negative")

	// ErrUninitialized indicates a method was called on an Engine that
	// was never produced by New (§7: "precondition violations ... are
	// reported via a terminating failure, not a silent fallback").
	ErrUninitialized = errors.New("voronoi: engine used before construction via New")
)
