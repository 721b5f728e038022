package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildThreeArcTree builds left—edge—right, a minimal two-arc-edge
// beachline, mirroring what seedSite produces for two same-y sites.
func buildThreeArcTree(leftX, rightX int, b *beachline) (edgeN, leftN, rightN *node) {
	leftSite := &Site{X: leftX, Y: 100}
	rightSite := &Site{X: rightX, Y: 100}
	mid := float64(leftX+rightX) / 2

	edgeN = newEdgeNode(b.newID(), &edge{start: vec{X: mid, Y: -500}, slope: verticalSlope(mid), growRight: true})
	leftN = newArcNode(b.newID(), leftSite)
	rightN = newArcNode(b.newID(), rightSite)
	edgeN.setLeft(leftN)
	edgeN.setRight(rightN)
	b.root = edgeN
	return edgeN, leftN, rightN
}

func TestBeachlineLocateAtSeedingDirectrix(t *testing.T) {
	b := &beachline{}
	_, leftN, rightN := buildThreeArcTree(200, 600, b)

	got := b.locate(100, 100, defaultTolerance)
	assert.Same(t, leftN, got)

	got = b.locate(500, 100, defaultTolerance)
	assert.Same(t, rightN, got)
}

func TestBeachlineNeighborNavigation(t *testing.T) {
	b := &beachline{}
	edgeN, leftN, rightN := buildThreeArcTree(200, 600, b)

	assert.Same(t, edgeN, leftN.rightParentEdge())
	assert.Same(t, edgeN, rightN.leftParentEdge())
	assert.Nil(t, leftN.leftParentEdge())
	assert.Nil(t, rightN.rightParentEdge())

	assert.Same(t, leftN, edgeN.leftLeaf())
	assert.Same(t, rightN, edgeN.rightLeaf())
}

func TestBeachlineReplaceUpdatesRoot(t *testing.T) {
	b := &beachline{}
	only := newArcNode(b.newID(), &Site{X: 1, Y: 1})
	b.root = only

	replacement := newArcNode(b.newID(), &Site{X: 2, Y: 2})
	b.replace(only, replacement)
	require.Same(t, replacement, b.root)
	assert.Nil(t, replacement.parent)
}

func TestBeachlineReplaceUpdatesParentChild(t *testing.T) {
	b := &beachline{}
	edgeN, leftN, _ := buildThreeArcTree(200, 600, b)

	replacement := newArcNode(b.newID(), &Site{X: 300, Y: 100})
	b.replace(leftN, replacement)
	assert.Same(t, replacement, edgeN.left)
	assert.Same(t, edgeN, replacement.parent)
}
