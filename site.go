package voronoi

import "math"

// Point is a plain 2D point in integer pixel coordinates, used for
// constructor input, completed-edge endpoints, and snapshot polylines
// (spec §6: "Coordinate units are pixels as integers").
type Point struct {
	X, Y int
}

// Site is an immutable input location. Sites are compared by pointer
// identity: two sites placed at the same position are permitted and
// remain distinct, which produces degenerate circle events (§3).
type Site struct {
	X, Y int
}

// vec is the float64 counterpart of Point, used internally by the
// geometric primitives. The beachline and its breakpoints move
// continuously; only construction input and final output are integers.
type vec struct {
	X, Y float64
}

func siteVec(s *Site) vec { return vec{float64(s.X), float64(s.Y)} }

func roundPoint(v vec) Point {
	return Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}
