package voronoi

import "math"

// NodeKind classifies a TreeView node: an arc leaf, or one of the two
// edge-node flavors distinguished by their growth direction (§6).
type NodeKind uint8

const (
	ArcNode NodeKind = iota
	EdgeLeftNode
	EdgeRightNode
)

// TreeView is a read-only view over one beachline node, exposing
// stable node ids for external graph visualization (§6, §12).
type TreeView interface {
	ID() int
	Kind() NodeKind
	Left() TreeView
	Right() TreeView
}

type treeView struct{ n *node }

func (v treeView) ID() int { return v.n.id }

func (v treeView) Kind() NodeKind {
	if v.n.isArc() {
		return ArcNode
	}
	if v.n.edge.growRight {
		return EdgeRightNode
	}
	return EdgeLeftNode
}

func (v treeView) Left() TreeView {
	if v.n.left == nil {
		return nil
	}
	return treeView{v.n.left}
}

func (v treeView) Right() TreeView {
	if v.n.right == nil {
		return nil
	}
	return treeView{v.n.right}
}

// Tree returns a read-only view of the current beachline, or nil if no
// site event has been processed yet.
func (e *Engine) Tree() TreeView {
	e.requireInitialized()
	if e.beachline.root == nil {
		return nil
	}
	return treeView{e.beachline.root}
}

// CircleEventView reports one pending circle event's y and whether it
// is still valid, i.e. not yet invalidated by a later tree edit (§6).
type CircleEventView struct {
	Y       int
	IsValid bool
}

// Snapshot materializes the beachline, pending events, and completed
// edges into a form suitable for external rendering (§4.8, §6).
type Snapshot struct {
	SiteEventYs       []int
	CircleEvents      []CircleEventView
	CompletedSegments []Segment
	PartialPolylines  [][]Point
}

// Snapshot returns a Snapshot of the Engine's current state, with
// partial polylines sampled as if the sweep directrix sat at y.
func (e *Engine) Snapshot(y int) Snapshot {
	e.requireInitialized()

	var snap Snapshot
	for _, it := range e.queue.items {
		if it.kind == siteEventKind {
			snap.SiteEventYs = append(snap.SiteEventYs, int(it.y))
		} else {
			snap.CircleEvents = append(snap.CircleEvents, CircleEventView{
				Y:       int(it.y),
				IsValid: !it.circle.stale(),
			})
		}
	}

	if e.beachline.root != nil {
		e.collectPolylines(e.beachline.root, float64(y), &snap.PartialPolylines)
	}

	snap.CompletedSegments = append(snap.CompletedSegments, e.completed...)
	return snap
}

// SnapshotAt replays the sweep (restarting first if y has already been
// passed) so that it stops exactly at y, then returns a Snapshot. This
// is the supplemented "scrub to an arbitrary y" operation (§12),
// grounded on forchun.py's draw_by. The directrix descends, so y has
// been passed once at least one step was taken and y >= current_d.
func (e *Engine) SnapshotAt(y int) Snapshot {
	e.requireInitialized()
	if e.stepsTaken > 0 && y >= e.currentD {
		e.seed()
	}
	e.RunUntil(y)
	return e.Snapshot(y)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// collectPolylines walks the beachline, appending one polyline per
// node: a parabolic arc sampled between its breakpoints, or the
// straight segment an edge currently spans (§4.8). Mirrors the
// teacher's finishEdge walk, generalized to also draw still-open arcs.
func (e *Engine) collectPolylines(n *node, d float64, out *[][]Point) {
	if n.isArc() {
		e.collectArcPolyline(n, d, out)
	} else {
		e.collectEdgePolyline(n, d, out)
	}
	if n.left != nil {
		e.collectPolylines(n.left, d, out)
	}
	if n.right != nil {
		e.collectPolylines(n.right, d, out)
	}
}

func (e *Engine) collectArcPolyline(n *node, d float64, out *[][]Point) {
	site := n.arc.site
	if isDegenerate(site, d) {
		*out = append(*out, []Point{
			{X: site.X, Y: int(d)},
			{X: site.X, Y: int(d) - e.width},
		})
		return
	}

	minX, maxX := 0.0, float64(e.width)
	if lp := n.leftParentEdge(); lp != nil {
		if inter, ok := edgeParabolaIntersection(lp.edge, site, d, e.tolerance); ok {
			minX = clamp(inter.X, 0, float64(e.width))
		}
	}
	if rp := n.rightParentEdge(); rp != nil {
		if inter, ok := edgeParabolaIntersection(rp.edge, site, d, e.tolerance); ok {
			maxX = clamp(inter.X, 0, float64(e.width))
		}
	}
	if maxX < minX {
		minX, maxX = maxX, minX
	}

	lo, hi := int(math.Round(minX)), int(math.Round(maxX))
	pts := make([]Point, 0, hi-lo+1)
	for x := lo; x <= hi; x++ {
		pts = append(pts, Point{X: x, Y: int(math.Round(parabolaPoint(site, d, float64(x))))})
	}
	*out = append(*out, pts)
}

func (e *Engine) collectEdgePolyline(n *node, d float64, out *[][]Point) {
	ed := n.edge
	minX, maxX := 0.0, float64(e.width)

	if leftPar := n.leftLeaf(); leftPar != nil {
		if inter, ok := edgeParabolaIntersection(ed, leftPar.arc.site, d, e.tolerance); ok {
			minX = inter.X
		}
	}
	if rightPar := n.rightLeaf(); rightPar != nil {
		if inter, ok := edgeParabolaIntersection(ed, rightPar.arc.site, d, e.tolerance); ok {
			maxX = inter.X
		}
	}

	x1, x2 := ed.start.X, minX
	if ed.growRight {
		x1, x2 = ed.start.X, maxX
	} else {
		x1, x2 = minX, ed.start.X
	}
	x1, x2 = clamp(x1, 0, float64(e.width)), clamp(x2, 0, float64(e.width))

	if ed.slope.vertical {
		*out = append(*out, []Point{
			roundPoint(vec{X: ed.slope.b, Y: ed.start.Y}),
			roundPoint(vec{X: ed.slope.b, Y: d}),
		})
		return
	}

	*out = append(*out, []Point{
		roundPoint(vec{X: x1, Y: ed.slope.at(x1)}),
		roundPoint(vec{X: x2, Y: ed.slope.at(x2)}),
	})
}
