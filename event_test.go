package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventQueueOrdersLargestYFirst(t *testing.T) {
	q := &eventQueue{}
	q.push(newSiteEvent(&Site{X: 0, Y: 10}))
	q.push(newSiteEvent(&Site{X: 0, Y: 50}))
	q.push(newSiteEvent(&Site{X: 0, Y: 30}))

	var ys []float64
	for q.Len() > 0 {
		ys = append(ys, q.pop().y)
	}
	assert.Equal(t, []float64{50, 30, 10}, ys)
}

func TestEventQueueTieBreaksOnLargerXThenInsertionOrder(t *testing.T) {
	q := &eventQueue{}
	q.push(newSiteEvent(&Site{X: 5, Y: 100}))
	q.push(newSiteEvent(&Site{X: 20, Y: 100}))
	q.push(newSiteEvent(&Site{X: 20, Y: 100}))

	first := q.pop()
	assert.Equal(t, 20.0, first.x)
	second := q.pop()
	assert.Equal(t, 20.0, second.x)
	assert.Less(t, first.seq, second.seq)
	third := q.pop()
	assert.Equal(t, 5.0, third.x)
}

func TestCircleEventStalenessTracksArcGeneration(t *testing.T) {
	n := newArcNode(0, &Site{X: 0, Y: 0})
	ev := newCircleEvent(n, 10, vec{})
	assert.False(t, ev.circle.stale())

	n.arc.event = ev
	n.arc.invalidate()
	assert.True(t, ev.circle.stale())
}
