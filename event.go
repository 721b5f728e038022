package voronoi

import "container/heap"

type eventKind uint8

const (
	siteEventKind eventKind = iota
	circleEventKind
)

// circleEvent is a predicted arc-collapse: the arc rooted at arcNode
// will shrink to nothing once the sweep reaches y. arcGen pins the
// arc's generation at the time this event was registered, so a
// later-invalidated arc (one that has since been split or removed
// again) is recognized as stale without mutating this struct (§9).
type circleEvent struct {
	arcNode *node
	arcGen  int
	center  vec
	y       float64
}

func (ce *circleEvent) stale() bool {
	return ce.arcNode.arc.generation != ce.arcGen
}

// event is a tagged site | circle event, ordered in the queue by
// (y, x, insertion sequence) (§3, §4.3, §9 bullet 1).
type event struct {
	kind   eventKind
	y, x   float64
	seq    int
	site   *Site
	circle *circleEvent
}

func newSiteEvent(s *Site) *event {
	return &event{kind: siteEventKind, y: float64(s.Y), x: float64(s.X), site: s}
}

func newCircleEvent(n *node, y float64, center vec) *event {
	return &event{
		kind: circleEventKind,
		y:    y,
		x:    center.X,
		circle: &circleEvent{
			arcNode: n,
			arcGen:  n.arc.generation,
			center:  center,
			y:       y,
		},
	}
}

// eventQueue is a priority queue of events, implemented with
// container/heap exactly as the teacher's EventQueue does, but
// ordered to pop the largest y first (the sweep directrix descends
// from the topmost site toward the bottom), with ties broken by
// larger x, and any remaining tie broken by insertion order so the
// overall order is total (§4.3, §9 bullet 1).
type eventQueue struct {
	items []*event
	seq   int
}

func (q *eventQueue) push(e *event) {
	q.seq++
	e.seq = q.seq
	heap.Push(q, e)
}

func (q *eventQueue) pop() *event {
	return heap.Pop(q).(*event)
}

func (q *eventQueue) peek() *event {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

func (q *eventQueue) Len() int { return len(q.items) }

func (q *eventQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.y != b.y {
		return a.y > b.y
	}
	if a.x != b.x {
		return a.x > b.x
	}
	return a.seq < b.seq
}

func (q *eventQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *eventQueue) Push(x interface{}) { q.items = append(q.items, x.(*event)) }

func (q *eventQueue) Pop() interface{} {
	n := len(q.items)
	it := q.items[n-1]
	q.items[n-1] = nil
	q.items = q.items[:n-1]
	return it
}
