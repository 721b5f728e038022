package voronoi

import "math"

// handleSiteEvent implements §4.4. The very first site event seeds the
// tree (and drains any further sites sharing its y, §4.4's seeding
// special case); every later site event splits the arc currently above
// it into three.
func (e *Engine) handleSiteEvent(s *Site) {
	if e.beachline.root == nil {
		e.seedSite(s)
		return
	}

	target := e.beachline.locate(float64(s.X), float64(s.Y), e.tolerance)
	par := target.arc

	var y0 float64
	var sl slope
	if par.site.Y == s.Y {
		// Degenerate: the incoming site coincides in y with the arc
		// being split. This only happens via coincident-site input,
		// since ordinary shared-y input is absorbed by the seeding
		// special case above. Treat the breakpoint as vertical instead
		// of dividing by zero (§7: degenerate geometry never surfaces).
		y0 = float64(s.Y)
		sl = verticalSlope(float64(s.X))
	} else {
		y0 = parabolaPoint(par.site, float64(s.Y), float64(s.X))
		k := (float64(s.X) - float64(par.site.X)) / (float64(par.site.Y) - float64(s.Y))
		sl = linearSlope(k, y0-k*float64(s.X))
	}
	start := vec{X: float64(s.X), Y: y0}

	leftEdge := newEdgeNode(e.beachline.newID(), &edge{start: start, slope: sl, growRight: false})
	rightEdge := newEdgeNode(e.beachline.newID(), &edge{start: start, slope: sl, growRight: true})

	leftArc := newArcNode(e.beachline.newID(), par.site)
	rightArc := newArcNode(e.beachline.newID(), par.site)
	middleArc := newArcNode(e.beachline.newID(), s)

	leftEdge.setLeft(leftArc)
	leftEdge.setRight(rightEdge)
	rightEdge.setLeft(middleArc)
	rightEdge.setRight(rightArc)

	e.beachline.replace(target, leftEdge)
	par.invalidate()

	e.logger.Sitef("split arc at site (%d,%d) above (%d,%d)", par.site.X, par.site.Y, s.X, s.Y)

	e.registerCircleEvent(leftArc, false)
	e.registerCircleEvent(rightArc, false)
}

// seedSite handles the very first site event(s): it inserts s as the
// sole root arc, then drains every further queued site event sharing
// s's y, splitting the root (and whatever it has already become) into
// arcs separated by vertical edges (§4.4's seeding special case,
// needed because the general split formula divides by sA.y - d).
func (e *Engine) seedSite(s *Site) {
	e.beachline.root = newArcNode(e.beachline.newID(), s)

	for {
		next := e.queue.peek()
		if next == nil || next.kind != siteEventKind || next.y != float64(s.Y) {
			break
		}
		sp := e.queue.pop().site

		target := e.beachline.locate(float64(sp.X), float64(sp.Y), e.tolerance)
		a := target.arc

		midX := (float64(sp.X) + float64(a.site.X)) / 2
		ed := &edge{
			start:     vec{X: midX, Y: float64(s.Y) - float64(e.width)},
			slope:     verticalSlope(midX),
			growRight: true,
			bothOpen:  true,
		}
		edgeNode := newEdgeNode(e.beachline.newID(), ed)

		leftSite, rightSite := a.site, sp
		if sp.X < a.site.X {
			leftSite, rightSite = sp, a.site
		}

		e.beachline.replace(target, edgeNode)
		edgeNode.setLeft(newArcNode(e.beachline.newID(), leftSite))
		edgeNode.setRight(newArcNode(e.beachline.newID(), rightSite))

		e.logger.Sitef("seeded vertical edge at x=%.0f between (%d,%d) and (%d,%d)",
			midX, leftSite.X, leftSite.Y, rightSite.X, rightSite.Y)
	}
}

// registerCircleEvent implements §4.6. q is the arc whose neighboring
// breakpoints may now be converging to a point.
//
// strictFuture distinguishes the two call sites. A site event's check
// (strictFuture false) predicts a convergence for an arc that did not
// exist until this instant, so a result landing exactly on the current
// directrix is still a genuine future event. A circle event's re-check
// of its former neighbors (strictFuture true) runs immediately after a
// collapse at this same y; since every pairwise bisector of a 3-arc
// group passes through one point, that re-check can rediscover the
// vertex the collapse itself just resolved, and must reject it rather
// than register it again.
func (e *Engine) registerCircleEvent(q *node, strictFuture bool) {
	left := q.leftParentEdge()
	right := q.rightParentEdge()
	if left == nil || right == nil {
		return
	}

	// No explicit same-site guard here: a coincident pair of flanking
	// arcs produces parallel (or identical-slope) bisectors, which
	// edgeEdgeIntersection already rejects on its own.
	center, ok := edgeEdgeIntersection(left.edge, right.edge)
	if !ok {
		return
	}

	dx := float64(q.arc.site.X) - center.X
	dy := float64(q.arc.site.Y) - center.Y
	r := math.Sqrt(dx*dx + dy*dy)
	y := math.Round(center.Y - r)

	if strictFuture && y >= float64(e.currentD) {
		return
	}
	if !strictFuture && y > float64(e.currentD) {
		return
	}

	q.arc.invalidate()

	ev := newCircleEvent(q, y, center)
	e.queue.push(ev)
	q.arc.event = ev

	e.logger.Circlef("registered at y=%.0f for arc (%d,%d)", y, q.arc.site.X, q.arc.site.Y)
}

// handleCircleEvent implements §4.5: an arc shrinks to nothing,
// finalizing two edges and creating one new edge in its place.
func (e *Engine) handleCircleEvent(ce *circleEvent) {
	a := ce.arcNode
	leftEdgeNode := a.leftParentEdge()
	rightEdgeNode := a.rightParentEdge()

	leftPar := leftEdgeNode.leftLeaf()
	rightPar := rightEdgeNode.rightLeaf()

	vertex := roundPoint(ce.center)
	e.completed = append(e.completed,
		Segment{A: roundPoint(e.boundaryPoint(leftEdgeNode.edge, ce.center)), B: vertex},
		Segment{A: vertex, B: roundPoint(e.boundaryPoint(rightEdgeNode.edge, ce.center))},
	)

	newSlope := bisectorSlope(leftPar.arc.site, rightPar.arc.site, ce.center)
	growRight := growthSideAwayFrom(ce.center, newSlope, a.arc.site, leftPar.arc.site)
	merged := newEdgeNode(e.beachline.newID(), &edge{start: ce.center, slope: newSlope, growRight: growRight})

	// Tree surgery (§4.5 step 3): walk from a up to the root; the
	// farther of leftEdgeNode/rightEdgeNode encountered along that
	// ancestry is the "high" edge. Its subtree is replaced by the new
	// merged edge, reusing its former children. a's own parent (always
	// the *nearer* of the two neighbor edges) is then replaced by a's
	// sibling, removing both a and that edge from the tree.
	var high *node
	for cur := a; cur.parent != nil; {
		cur = cur.parent
		if cur == leftEdgeNode {
			high = leftEdgeNode
		}
		if cur == rightEdgeNode {
			high = rightEdgeNode
		}
	}
	e.beachline.replace(high, merged)
	merged.setLeft(high.left)
	merged.setRight(high.right)

	parent := a.parent
	sibling := parent.left
	if parent.left == a {
		sibling = parent.right
	}
	e.beachline.replace(parent, sibling)

	a.arc.invalidate()

	e.logger.Surgeryf("collapsed arc (%d,%d) at vertex (%d,%d)", a.arc.site.X, a.arc.site.Y, vertex.X, vertex.Y)

	e.registerCircleEvent(leftPar, true)
	e.registerCircleEvent(rightPar, true)
}

// boundaryPoint returns the fixed endpoint of ed opposite the vertex
// at which it is being finalized. For an ordinary edge this is simply
// its birth point. A bothOpen edge has no birth point: its start was
// placed one width below the seeding directrix so it would read
// correctly if it survived untouched to finalizeOpenEdges, but when it
// collapses here instead, that placed point may sit on the *same* side
// as the vertex rather than opposite it. Pick whichever of the edge's
// two seeded extremes is farther from the vertex.
func (e *Engine) boundaryPoint(ed *edge, vertex vec) vec {
	if !ed.bothOpen {
		return ed.start
	}
	far := vec{X: ed.start.X, Y: ed.start.Y + 2*float64(e.width)}
	if math.Abs(far.Y-vertex.Y) > math.Abs(ed.start.Y-vertex.Y) {
		return far
	}
	return ed.start
}
