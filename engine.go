// Package voronoi implements Fortune's sweep-line algorithm for planar
// Voronoi diagrams, exposed as a steppable engine rather than a single
// batch computation: construction seeds the event queue, and each
// Step/RunUntil/RunAll call advances the sweep line and records
// completed edges, so the in-progress beachline can be inspected or
// rendered at any point along the way.
package voronoi

import (
	"math"

	"github.com/fortunesweep/voronoi/internal/trace"
)

// Segment is a finalized Voronoi edge between two integer endpoints.
type Segment struct {
	A, B Point
}

// Engine drives one run of Fortune's algorithm over a fixed set of
// sites. It is not safe for concurrent use; callers needing concurrent
// access must synchronize externally (§5: the engine has no internal
// locking, matching the teacher's Voronoi struct).
type Engine struct {
	sites     []*Site
	width     int
	tolerance float64
	logger    *trace.Logger

	beachline   beachline
	queue       eventQueue
	completed   []Segment
	currentD    int
	stepsTaken  int
	finalized   bool
	initialized bool
}

// New constructs an Engine over sites, seeding its event queue but
// running no steps. width anchors the seeding sentinel y (§4.4) and
// the snapshot/finalization clipping boundary (§4.8); it is not a
// hard canvas size, only a distance scale.
func New(sites []Point, width int, opts ...Option) (*Engine, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}

	e := &Engine{width: width, tolerance: defaultTolerance, currentD: -1, initialized: true}
	for _, opt := range opts {
		opt(e)
	}

	for _, p := range sites {
		if p.X < 0 || p.Y < 0 {
			return nil, ErrInvalidSite
		}
		e.sites = append(e.sites, &Site{X: p.X, Y: p.Y})
	}

	e.seed()
	return e, nil
}

func (e *Engine) seed() {
	e.beachline = beachline{}
	e.queue = eventQueue{}
	e.completed = nil
	e.currentD = -1
	e.stepsTaken = 0
	e.finalized = false
	for _, s := range e.sites {
		e.queue.push(newSiteEvent(s))
	}
}

func (e *Engine) requireInitialized() {
	if !e.initialized {
		panic(ErrUninitialized)
	}
}

// Step pops and processes one event, advancing current_d to that
// event's y regardless of whether the event turns out to be stale
// (mirrors the reference implementation's next_step: current_d tracks
// every pop, not only the ones that mutate the beachline). The very
// first site event also drains every further site sharing its y
// (§4.4), all within this one Step. stepsTaken counts Step calls that
// popped an event, for StepBack's replay count.
func (e *Engine) Step() {
	e.requireInitialized()
	if e.queue.Len() == 0 {
		return
	}

	ev := e.queue.pop()
	e.currentD = int(math.Round(ev.y))
	e.stepsTaken++
	switch {
	case ev.kind == siteEventKind:
		e.handleSiteEvent(ev.site)
	case !ev.circle.stale():
		e.handleCircleEvent(ev.circle)
	}

	if e.queue.Len() == 0 && !e.finalized {
		e.finalizeOpenEdges()
		e.finalized = true
	}
}

// RunUntil steps while the queue's front event has y strictly greater
// than target (§4.7, §6). The sweep directrix descends, so the front
// of the queue always holds the largest remaining y; stepping stops
// the instant that y drops to or below target, leaving current_d at
// the last event processed above it.
func (e *Engine) RunUntil(target int) {
	e.requireInitialized()
	for {
		front := e.queue.peek()
		if front == nil || front.y <= float64(target) {
			return
		}
		e.Step()
	}
}

// RunAll steps until the event queue is exhausted (§4.7).
func (e *Engine) RunAll() {
	e.requireInitialized()
	for e.queue.Len() > 0 {
		e.Step()
	}
}

// Restart resets the Engine to its freshly-constructed state: the
// event queue is reseeded from the original sites, the beachline and
// completed-edge list are cleared, and current_d returns to -1 (§4.7).
func (e *Engine) Restart() {
	e.requireInitialized()
	e.seed()
}

// StepBack undoes the most recent Step by replaying from the start up
// to (but not including) the event that produced the current state.
// It is not an incremental inverse: it restarts the whole sweep and
// replays (§4.7, §9). Replaying by count rather than by target y is
// deliberate: y is not a usable replay target when two events share
// the same y (a site and a circle event can both land on the same
// directrix), since there would be no y strictly between them to stop
// at. Counting steps sidesteps the tie entirely.
func (e *Engine) StepBack() {
	e.requireInitialized()
	target := e.stepsTaken - 1
	if target < 0 {
		target = 0
	}
	e.seed()
	for i := 0; i < target; i++ {
		e.Step()
	}
}

// CurrentD returns the sweep position reached by the most recent
// popped event, or -1 if no event has been processed yet.
func (e *Engine) CurrentD() int {
	e.requireInitialized()
	return e.currentD
}

// finalizeOpenEdges appends every beachline edge still open when the
// event queue drains as a completed segment, extended to a frame
// boundary scaled by width (§3: a completed segment may be bounded "by
// two circle events, or one circle event and the domain boundary").
// This mirrors the teacher's finishEdge walk over the final tree.
func (e *Engine) finalizeOpenEdges() {
	if e.beachline.root == nil {
		return
	}
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil || n.isArc() {
			return
		}
		ed := n.edge
		end := e.extendToFrame(ed)
		if ed.bothOpen {
			// Both ends are open: start already sits one width below
			// its site's birth height, so the far end is two widths up.
			end = vec{X: ed.slope.b, Y: ed.start.Y + 2*float64(e.width)}
		}
		e.completed = append(e.completed, Segment{
			A: roundPoint(ed.start),
			B: roundPoint(end),
		})
		walk(n.left)
		walk(n.right)
	}
	walk(e.beachline.root)
}

func (e *Engine) extendToFrame(ed *edge) vec {
	w := float64(e.width)
	if ed.slope.vertical {
		if ed.growRight {
			return vec{X: ed.slope.b, Y: ed.start.Y + w}
		}
		return vec{X: ed.slope.b, Y: ed.start.Y - w}
	}
	dir := -1.0
	if ed.growRight {
		dir = 1.0
	}
	mx := ed.start.X + dir*w
	return vec{X: mx, Y: ed.slope.at(mx)}
}
