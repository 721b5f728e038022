package voronoi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segmentLength(s Segment) float64 {
	dx := float64(s.B.X - s.A.X)
	dy := float64(s.B.Y - s.A.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// nonDegenerate filters out zero/near-zero-length segments, which are
// a legitimate artifact of cocircular-site configurations where an
// edge is born and finalized at (almost) the same point.
func nonDegenerate(segs []Segment) []Segment {
	var out []Segment
	for _, s := range segs {
		if segmentLength(s) > 1 {
			out = append(out, s)
		}
	}
	return out
}

func hasVertexNear(segs []Segment, x, y int, tol int) bool {
	near := func(p Point) bool {
		return abs(p.X-x) <= tol && abs(p.Y-y) <= tol
	}
	for _, s := range segs {
		if near(s.A) || near(s.B) {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestTwoSitesHorizontalProducesOneVerticalBisector(t *testing.T) {
	e, err := New([]Point{{X: 200, Y: 400}, {X: 600, Y: 400}}, 500)
	require.NoError(t, err)
	e.RunAll()

	segs := nonDegenerate(e.completed)
	require.Len(t, segs, 1)
	assert.Equal(t, 400, segs[0].A.X)
	assert.Equal(t, 400, segs[0].B.X)
	assert.Greater(t, segmentLength(segs[0]), 500.0)
}

func TestThreeSitesIsocelesProducesOneVertex(t *testing.T) {
	e, err := New([]Point{{X: 400, Y: 100}, {X: 200, Y: 400}, {X: 600, Y: 400}}, 500)
	require.NoError(t, err)
	e.RunAll()

	assert.True(t, hasVertexNear(e.completed, 400, 317, 2))

	segs := nonDegenerate(e.completed)
	assert.GreaterOrEqual(t, len(segs), 3)
}

func TestFourSitesSquareProducesOneVertex(t *testing.T) {
	e, err := New([]Point{
		{X: 200, Y: 200}, {X: 600, Y: 200},
		{X: 200, Y: 600}, {X: 600, Y: 600},
	}, 500)
	require.NoError(t, err)
	e.RunAll()

	assert.True(t, hasVertexNear(e.completed, 400, 400, 2))
	assert.GreaterOrEqual(t, len(nonDegenerate(e.completed)), 4)
}

func TestCollinearTripleOnDirectrixSeedsWithoutCircleEvents(t *testing.T) {
	e, err := New([]Point{{X: 100, Y: 100}, {X: 400, Y: 100}, {X: 700, Y: 100}}, 500)
	require.NoError(t, err)
	e.RunAll()

	require.Len(t, e.completed, 2)
	xs := []int{e.completed[0].A.X, e.completed[1].A.X}
	assert.Contains(t, xs, 250)
	assert.Contains(t, xs, 550)
	for _, s := range e.completed {
		assert.Equal(t, s.A.X, s.B.X)
	}
}

func TestCoincidentPairCompletesWithoutCrash(t *testing.T) {
	e, err := New([]Point{{X: 300, Y: 200}, {X: 300, Y: 200}, {X: 500, Y: 400}}, 500)
	require.NoError(t, err)
	require.NotPanics(t, func() { e.RunAll() })

	// Invariant 1: current_d reaches the minimum input y.
	assert.Equal(t, 200, e.CurrentD())
	// Invariant 2: the beachline always has one more arc than edge.
	assertArcEdgeParity(t, e)
}

func TestReplayEquivalenceProducesIdenticalSegments(t *testing.T) {
	sites := []Point{{X: 123, Y: 77}, {X: 410, Y: 250}, {X: 255, Y: 333}, {X: 680, Y: 440}, {X: 90, Y: 500}}
	e, err := New(sites, 600)
	require.NoError(t, err)

	e.RunAll()
	first := append([]Segment(nil), e.completed...)

	e.Restart()
	e.RunAll()
	second := e.completed

	assert.Equal(t, first, second)
}

// assertArcEdgeParity checks invariant 2 (§8): a beachline with n arc
// leaves always has exactly n-1 internal edge nodes.
func assertArcEdgeParity(t *testing.T, e *Engine) {
	t.Helper()
	if e.beachline.root == nil {
		return
	}
	arcs, edges := 0, 0
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		if n.isArc() {
			arcs++
		} else {
			edges++
		}
		walk(n.left)
		walk(n.right)
	}
	walk(e.beachline.root)
	assert.Equal(t, arcs-1, edges)
}

func TestCurrentDStartsAtMinusOneAndPanicsWithoutInit(t *testing.T) {
	fresh, err := New([]Point{{X: 1, Y: 1}}, 100)
	require.NoError(t, err)
	assert.Equal(t, -1, fresh.CurrentD())

	var e Engine
	assert.PanicsWithValue(t, ErrUninitialized, func() { e.CurrentD() })
}

func TestStepBackReplaysToSamePosition(t *testing.T) {
	sites := []Point{{X: 400, Y: 100}, {X: 200, Y: 400}, {X: 600, Y: 400}}
	e, err := New(sites, 500)
	require.NoError(t, err)

	e.Step()
	e.Step()
	afterTwoSteps := e.CurrentD()

	e.Step()
	e.StepBack()
	assert.Equal(t, afterTwoSteps, e.CurrentD())
}

func TestRunUntilStopsStrictlyBeforeTarget(t *testing.T) {
	sites := []Point{{X: 400, Y: 100}, {X: 200, Y: 400}, {X: 600, Y: 400}}
	e, err := New(sites, 500)
	require.NoError(t, err)

	e.RunUntil(300)

	// Forward progress: the two y=400 site events (above the target)
	// were consumed.
	assert.Equal(t, 400, e.CurrentD())
	// But not past the target: the y=100 site event is still pending.
	front := e.queue.peek()
	require.NotNil(t, front)
	assert.LessOrEqual(t, front.y, 300.0)
}

func TestNewRejectsInvalidWidthAndSites(t *testing.T) {
	_, err := New([]Point{{X: 1, Y: 1}}, 0)
	assert.ErrorIs(t, err, ErrInvalidWidth)

	_, err = New([]Point{{X: -1, Y: 1}}, 100)
	assert.ErrorIs(t, err, ErrInvalidSite)
}
