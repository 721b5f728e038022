package voronoi

import "math"

// degenTolerance bounds how close the sweep directrix may sit to a
// site's y before that site's parabola is treated as the degenerate
// vertical-ray case (§4.1). Sites and directrix values reaching these
// primitives are always exact integers reinterpreted as float64, so an
// exact comparison would do; the tolerance only guards against the
// rare case where a caller hands in an already-rounded float.
const degenTolerance = 1e-9

// defaultTolerance is the discriminant/near-singularity tolerance used
// when an Engine isn't configured with WithTolerance (§7, §10).
const defaultTolerance = 1e-7

func isDegenerate(s *Site, d float64) bool {
	return math.Abs(float64(s.Y)-d) <= degenTolerance
}

// parabolaPoint evaluates the parabola with focus s and directrix d at
// x (§4.1). Only valid while s.Y > d; callers must route the s.Y == d
// case through the degenerate handling instead.
func parabolaPoint(s *Site, d, x float64) float64 {
	sx, sy := float64(s.X), float64(s.Y)
	return (x-sx)*(x-sx)/(2*(sy-d)) + (d+sy)/2
}

// parabolaNormalForm returns (a, b, c) such that y = a*x^2 + b*x + c is
// the parabola with focus s and directrix d (§4.1).
func parabolaNormalForm(s *Site, d float64) (a, b, c float64) {
	sx, sy := float64(s.X), float64(s.Y)
	a = 1 / (2 * (sy - d))
	b = -2 * a * sx
	c = a*sx*sx + (d+sy)/2
	return a, b, c
}

// bisectorSlope is the slope of the perpendicular bisector of a and b,
// pinned to pass through p (§4.5 step 2: new edge slope at a vertex).
func bisectorSlope(a, b *Site, p vec) slope {
	denom := float64(a.Y) - float64(b.Y)
	if denom == 0 {
		return verticalSlope(p.X)
	}
	k := (float64(b.X) - float64(a.X)) / denom
	return linearSlope(k, p.Y-k*p.X)
}

// edgeParabolaIntersection finds where the growth ray of e meets the
// parabola of site at directrix d, honoring e's growth-direction
// constraint (§4.1: "Edge–Parabola intersection").
func edgeParabolaIntersection(e *edge, site *Site, d, tol float64) (vec, bool) {
	if e.slope.vertical {
		if isDegenerate(site, d) {
			if float64(site.X) == e.slope.b {
				return vec{X: float64(site.X), Y: float64(site.Y)}, true
			}
			return vec{}, false
		}
		x := e.slope.b
		return vec{X: x, Y: parabolaPoint(site, d, x)}, true
	}

	if isDegenerate(site, d) {
		sx := float64(site.X)
		onGrowthSide := sx >= e.start.X
		if !e.growRight {
			onGrowthSide = sx <= e.start.X
		}
		if onGrowthSide {
			return vec{X: sx, Y: e.slope.at(sx)}, true
		}
		return vec{}, false
	}

	a, b, c := parabolaNormalForm(site, d)
	b1 := b - e.slope.k
	c1 := c - e.slope.b
	disc := b1*b1 - 4*a*c1
	if disc < 0 {
		if disc > -tol {
			disc = 0
		} else {
			return vec{}, false
		}
	}
	sq := math.Sqrt(disc)
	x1 := (-b1 + sq) / (2 * a)
	x2 := (-b1 - sq) / (2 * a)

	x := math.Max(x1, x2)
	if !e.growRight {
		x = math.Min(x1, x2)
	}
	if (e.growRight && x < e.start.X) || (!e.growRight && x > e.start.X) {
		return vec{}, false
	}
	return vec{X: x, Y: e.slope.at(x)}, true
}

// edgeEdgeIntersection finds where two growing edges meet, subject to
// both edges' growth-direction constraints (§4.1: "Edge–Edge
// intersection"). This is how a circle event's vertex is located: it
// is the meeting point of the left and right neighbor edges of the
// shrinking arc.
func edgeEdgeIntersection(a, b *edge) (vec, bool) {
	if a.slope.vertical && b.slope.vertical {
		return vec{}, false
	}
	if !a.slope.vertical && !b.slope.vertical && a.slope.k == b.slope.k {
		return vec{}, false
	}

	var x, y float64
	switch {
	case a.slope.vertical:
		x = a.slope.b
		y = b.slope.at(x)
	case b.slope.vertical:
		x = b.slope.b
		y = a.slope.at(x)
	default:
		x = (b.slope.b - a.slope.b) / (a.slope.k - b.slope.k)
		y = a.slope.at(x)
	}

	if violatesGrowth(a, x) || violatesGrowth(b, x) {
		return vec{}, false
	}
	return vec{X: x, Y: y}, true
}

func violatesGrowth(e *edge, x float64) bool {
	if e.growRight {
		return x < e.start.X
	}
	return x > e.start.X
}

func siteDistSq(v vec, s *Site) float64 {
	dx := v.X - float64(s.X)
	dy := v.Y - float64(s.Y)
	return dx*dx + dy*dy
}

// growthSideAwayFrom picks the growth direction of a freshly merged
// edge anchored at start with slope sl: the side that moves away from
// collapsed's cell and into flank's (§4.5 step 3). A vanished arc's
// replacement edge must continue separating its two former neighbors,
// not double back into the territory the vanished arc used to own.
func growthSideAwayFrom(start vec, sl slope, collapsed, flank *Site) bool {
	const probe = 1.0
	var pos, neg vec
	if sl.vertical {
		pos = vec{X: sl.b, Y: start.Y + probe}
		neg = vec{X: sl.b, Y: start.Y - probe}
	} else {
		pos = vec{X: start.X + probe, Y: sl.at(start.X + probe)}
		neg = vec{X: start.X - probe, Y: sl.at(start.X - probe)}
	}
	diff := func(p vec) float64 { return siteDistSq(p, collapsed) - siteDistSq(p, flank) }
	return diff(pos) > diff(neg)
}
