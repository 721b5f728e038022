package voronoi

// nodeKind tags a beachline node as a leaf (arc) or an internal node
// (edge). Go has no tagged unions, so node carries both pointers and
// only one is ever non-nil — the same trick the teacher plays with
// Parabola.IsLeaf, made explicit (§9).
type nodeKind uint8

const (
	arcNodeKind nodeKind = iota
	edgeNodeKind
)

// arc is a beachline leaf: a parabolic arc whose focus is site.
//
// event points at the arc's currently pending circle event, if any.
// generation increments every time that event is invalidated, which is
// how stale circle events popped later are recognized without a
// mutable is_valid flag shared between the arc and the event (§9).
type arc struct {
	site       *Site
	event      *event
	generation int
}

func (a *arc) invalidate() {
	if a.event == nil {
		return
	}
	a.generation++
	a.event = nil
}

// edge is a beachline internal node: a growing Voronoi edge between
// the arcs rooted at its left and right children.
//
// bothOpen marks a seeded bisector between two sites sharing the
// sweep's starting y: unlike a split edge, whose start is the vertex
// or breakpoint where it was born, a seeded edge has no birth point at
// all — it's the bisector of two sites inserted simultaneously at the
// very first instant of the sweep, open on both ends from the start.
type edge struct {
	start     vec
	slope     slope
	growRight bool
	bothOpen  bool
}

// node is a beachline tree node, tagged arc | edge. id is a stable
// identifier surfaced via TreeView for external graph visualization
// (§6, §12 — grounded on forchun.py's Node.id/node_counter).
type node struct {
	id     int
	kind   nodeKind
	arc    *arc
	edge   *edge
	left   *node
	right  *node
	parent *node
}

func newArcNode(id int, s *Site) *node {
	return &node{id: id, kind: arcNodeKind, arc: &arc{site: s}}
}

func newEdgeNode(id int, e *edge) *node {
	return &node{id: id, kind: edgeNodeKind, edge: e}
}

func (n *node) isArc() bool { return n.kind == arcNodeKind }

func (n *node) setLeft(c *node) {
	n.left = c
	if c != nil {
		c.parent = n
	}
}

func (n *node) setRight(c *node) {
	n.right = c
	if c != nil {
		c.parent = n
	}
}

// leftLeaf returns the rightmost leaf of n's left subtree: the arc
// immediately bordering internal edge node n on its left.
func (n *node) leftLeaf() *node {
	c := n.left
	for c != nil && !c.isArc() {
		c = c.right
	}
	return c
}

// rightLeaf returns the leftmost leaf of n's right subtree: the arc
// immediately bordering internal edge node n on its right.
func (n *node) rightLeaf() *node {
	c := n.right
	for c != nil && !c.isArc() {
		c = c.left
	}
	return c
}

// leftParentEdge walks up from n while n is a left child, and returns
// the first ancestor reached via a right-child step: the nearest
// breakpoint to n's left.
func (n *node) leftParentEdge() *node {
	cur := n
	for cur.parent != nil && cur.parent.left == cur {
		cur = cur.parent
	}
	return cur.parent
}

// rightParentEdge is the mirror of leftParentEdge: the nearest
// breakpoint to n's right.
func (n *node) rightParentEdge() *node {
	cur := n
	for cur.parent != nil && cur.parent.right == cur {
		cur = cur.parent
	}
	return cur.parent
}

// beachline owns the tree root and the monotonic node-id counter.
type beachline struct {
	root   *node
	nextID int
}

func (b *beachline) newID() int {
	id := b.nextID
	b.nextID++
	return id
}

// replace splices newNode into old's position, updating the parent's
// child pointer or the tree root (§4.2).
func (b *beachline) replace(old, newNode *node) {
	if old.parent == nil {
		b.root = newNode
		newNode.parent = nil
		return
	}
	if old.parent.left == old {
		old.parent.setLeft(newNode)
	} else {
		old.parent.setRight(newNode)
	}
}

// breakpointX computes the x-coordinate of edge e's breakpoint at
// directrix d, by intersecting e with the parabola of its left
// neighbor leaf, falling back to the right neighbor leaf if that
// intersection is absent (§4.2).
func breakpointX(e *edge, leftSite, rightSite *Site, d, tol float64) float64 {
	if p, ok := edgeParabolaIntersection(e, leftSite, d, tol); ok {
		return p.X
	}
	if p, ok := edgeParabolaIntersection(e, rightSite, d, tol); ok {
		return p.X
	}
	// Both intersections absent: every remaining neighbor is degenerate
	// and off the growth side. The edge's own x is the best remaining
	// estimate of the breakpoint (exact for a vertical edge).
	return e.start.X
}

// locate finds the arc leaf directly above x at directrix d (§4.2).
func (b *beachline) locate(x, d, tol float64) *node {
	cur := b.root
	for !cur.isArc() {
		l, r := cur.leftLeaf(), cur.rightLeaf()
		bx := breakpointX(cur.edge, l.arc.site, r.arc.site, d, tol)
		if x < bx {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return cur
}
