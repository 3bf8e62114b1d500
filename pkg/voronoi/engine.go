package voronoi

import (
	"sort"

	"go.uber.org/zap"

	"github.com/nullsweep/voronoi-sweep/internal/tracelog"
)

// Engine holds all mutable sweep state: the frozen site list, the
// current sweep-y, the beach line and circle-event queue (both backed by
// the same orderedTree, keyed by different comparators), the node
// registry, and the edges discovered so far. Compute constructs one,
// drives it to completion, and discards it — nothing here outlives a
// single Compute call.
type Engine struct {
	sites  []Point
	sweepY float64

	beach  *orderedTree
	events *orderedTree

	nodes map[nodeKey]*Node
	edges []*Edge

	log *tracelog.Logger
}

func newEngine(sites []Point, log *tracelog.Logger) *Engine {
	return &Engine{
		sites:  sites,
		beach:  &orderedTree{},
		events: &orderedTree{},
		nodes:  make(map[nodeKey]*Node),
		log:    log,
	}
}

// Compute runs Fortune's sweep over sites and returns the resulting
// diagram. A nil log is fine — every tracelog.Logger method no-ops on a
// nil receiver.
func Compute(sites []Point, log *tracelog.Logger) (*Diagram, error) {
	if len(sites) == 0 {
		return &Diagram{}, nil
	}

	e := newEngine(sites, log)
	e.log.Debug("starting sweep", zap.Int("sites", len(sites)))

	order := make([]int, len(sites))
	for i := range order {
		order[i] = i
	}
	// descending by Y, matching the source's std::sort with a
	// greater-than comparator — the sweep line moves top to bottom.
	sort.Slice(order, func(i, j int) bool {
		return sites[order[i]].Y > sites[order[j]].Y
	})

	next := 0
	for next < len(order) || e.events.root != nil {
		if next < len(order) {
			siteY := sites[order[next]].Y
			top := e.events.last()
			if top == nil || siteY > top.value.(*circleEvent).eventY() {
				e.processSite(order[next])
				next++
				continue
			}
		}
		top := e.events.last()
		if top == nil {
			e.processSite(order[next])
			next++
			continue
		}
		evt := top.value.(*circleEvent)
		e.events.removeNode(top)
		e.processCircleEvent(evt)
	}

	e.finalizeBeachLine()
	e.linkEdgeNeighbors()
	return e.buildDiagram(), nil
}

// finalizeBeachLine registers a midpoint node for every boundary still on
// the beach line once the sweep runs out of sites and events — the source
// never squeezes these out because no circle event shrinks an arc with
// nothing above it or below it. A beach line with exactly one site never
// narrows past its single leftSentinel/rightSentinel pair, and the last
// surviving arc on any input never gets a circle event on its outer side,
// so without this pass a two-site diagram would report zero nodes despite
// spec.md's "Two sites" scenario requiring the `(1,0)`-parents-`{0,1}`
// midpoint. No edges are created here: a midpoint with no circle event
// ever squeezing it has no vertex to route an edge to.
func (e *Engine) finalizeBeachLine() {
	for node := e.beach.getFirstOrNil(); node != nil; node = node.next {
		inter := node.value.(intersection)
		if inter.left.isSite() && inter.right.isSite() {
			e.log.Debug("finalize leftover boundary", zap.Int("left", inter.left.idx), zap.Int("right", inter.right.idx))
			e.getOrCreateMidpoint(inter.left, inter.right)
		}
	}
}

func (e *Engine) buildDiagram() *Diagram {
	d := &Diagram{Sites: e.sites, Edges: e.edges}
	d.Nodes = make([]*Node, 0, len(e.nodes))
	for _, n := range e.nodes {
		d.Nodes = append(d.Nodes, n)
	}
	return d
}

// processSite handles a site event. The arc directly above the new site
// is bracketed by two existing boundaries — node1 = (A, B) and node2 =
// (B, C) — that themselves stay on the beach line untouched; the new
// site D only ever splits arc B by inserting (B, D) and (D, B) between
// them, cancelling whatever event node1/node2 had scheduled together
// since B no longer transitions directly to C. Mirrors the source's
// Implementation::processPoint.
func (e *Engine) processSite(idx int) {
	e.sweepY = e.sites[idx].Y
	site := siteAt(idx)
	e.log.Debug("process site", zap.Int("idx", idx), zap.Float64("y", e.sweepY))

	if e.beach.root == nil {
		e.beach.insertOrdered(intersection{left: leftSentinel, right: site}, e.lessBeach)
		e.beach.insertOrdered(intersection{left: site, right: rightSentinel}, e.lessBeach)
		return
	}

	probe := intersection{left: site, right: site}
	node2 := e.beach.lowerBound(probe, e.lessBeach)
	if node2 == nil {
		node2 = e.beach.last()
	}
	node1 := node2.previous
	if node1 == nil {
		panic("voronoi: beach line missing left sentinel boundary")
	}

	inter1 := node1.value.(intersection)
	inter2 := node2.value.(intersection)
	arcSite := inter1.right

	newLeft := intersection{left: arcSite, right: site}
	newRight := intersection{left: site, right: arcSite}

	if inter1.left.isSite() && inter2.right.isSite() {
		e.cancelCircleEvent(inter1, inter2)
	}

	leftNode := e.beach.insertOrdered(newLeft, e.lessBeach)
	e.beach.insertOrdered(newRight, e.lessBeach)

	if inter1.left.isSite() {
		e.scheduleCircleEvent(inter1, leftNode.value.(intersection))
	}
	if inter2.right.isSite() {
		e.scheduleCircleEvent(newRight, inter2)
	}
}

// processCircleEvent handles a circle event: the two boundaries of the
// squeezed arc B — left_it = (A, B) and right_it = (B, C) — are removed
// and replaced by a single new boundary (A, C), and a vertex node is
// created at the event's center. Mirrors the source's
// Implementation::processEvent.
func (e *Engine) processCircleEvent(evt *circleEvent) {
	// Checked against the beach line as it stood after the previous
	// event settled, before this event makes any change of its own —
	// mirrors the original's always-on assertion loop, which sits at
	// the very top of processEvent for the same reason.
	e.checkInvariants()

	// A stale event: one of its two boundaries already vanished from
	// the beach line, most likely because another circle event at the
	// exact same sweep-y consumed it first (co-circular sites). Rather
	// than eagerly proving every queued event is still live, fall back
	// to the lazy-invalidation alternative spec.md §9's "Event
	// cancellation" note allows and simply skip it.
	leftIt := e.beach.find(evt.leftInt, e.lessBeach, equalIntersection)
	if leftIt == nil {
		e.log.Debug("skip stale circle event", zap.String("reason", "left boundary gone"))
		return
	}
	rightIt := leftIt.next
	if rightIt == nil || rightIt.value.(intersection) != evt.rightInt {
		e.log.Debug("skip stale circle event", zap.String("reason", "right boundary moved"))
		return
	}
	leftNeighbor := leftIt.previous
	rightNeighbor := rightIt.next
	if leftNeighbor == nil || rightNeighbor == nil {
		// leftIt/rightIt matched evt's boundaries exactly, and a real
		// circle event's boundaries are never sentinel-adjacent
		// (scheduleCircleEvent rejects those outright), so this can
		// only mean the beach line itself is corrupted, not staleness.
		panic("voronoi: circle event at the edge of the beach line")
	}

	a := evt.leftInt.left
	b := evt.leftInt.right
	c := evt.rightInt.right
	leftNeighborInter := leftNeighbor.value.(intersection)
	rightNeighborInter := rightNeighbor.value.(intersection)

	e.cancelCircleEvent(leftNeighborInter, evt.leftInt)
	e.cancelCircleEvent(evt.rightInt, rightNeighborInter)

	e.beach.removeNode(leftIt)
	e.beach.removeNode(rightIt)

	// Only bump the sweep line after the erase above: find() needs to run
	// under the sweep-y the tree was ordered under when leftIt/rightIt
	// were inserted, or lessBeach can walk the wrong branch and miss a
	// node that is actually present. Mirrors the source's processEvent,
	// which delays this same assignment for the same reason.
	e.sweepY = evt.eventY()
	e.log.Debug("process circle event", zap.Float64("y", e.sweepY))

	merged := intersection{left: a, right: c}
	e.beach.insertOrdered(merged, e.lessBeach)

	vertex := e.getOrCreateVertex(a, b, c, evt.center)
	e.emitEdges(a, b, c, vertex)

	if leftNeighborInter.left.isSite() && !sameTriple(leftNeighborInter.left, a, c, a, b, c) {
		e.scheduleCircleEvent(leftNeighborInter, merged)
	}
	if rightNeighborInter.right.isSite() && !sameTriple(a, c, rightNeighborInter.right, a, b, c) {
		e.scheduleCircleEvent(merged, rightNeighborInter)
	}
}

// emitEdges wires the vertex just discovered for triple (a, b, c) to the
// three pairwise midpoint nodes. When the vertex sits inside triangle
// abc the three edges radiate from it directly; otherwise the midpoint
// on the side opposite the vertex becomes the hub the other two edges
// route through instead, so edges never cross the triangle they
// bound. Mirrors the source's addTriplet via perp's sign.
func (e *Engine) emitEdges(a, b, c siteRef, vertex *Node) {
	pa, pb, pc := e.sites[a.idx], e.sites[b.idx], e.sites[c.idx]
	center := Point{vertex.X, vertex.Y}

	mAB := e.getOrCreateMidpoint(a, b)
	mBC := e.getOrCreateMidpoint(b, c)
	mCA := e.getOrCreateMidpoint(c, a)

	distAB := perp(center, pa, pb)
	distBC := perp(center, pb, pc)
	distCA := perp(center, pc, pa)

	switch {
	case (distAB <= 0 && distBC <= 0 && distCA <= 0) || (distAB >= 0 && distBC >= 0 && distCA >= 0):
		e.addTriplet(vertex, mAB, mBC, mCA)
	case (distBC <= 0 && distCA >= 0 && distAB >= 0) || (distBC >= 0 && distCA <= 0 && distAB <= 0):
		e.addTriplet(mBC, vertex, mCA, mAB)
	case (distCA <= 0 && distAB >= 0 && distBC >= 0) || (distCA >= 0 && distAB <= 0 && distBC <= 0):
		e.addTriplet(mCA, vertex, mAB, mBC)
	default:
		e.addTriplet(mAB, vertex, mBC, mCA)
	}
}

// addTriplet connects hub to each of n1, n2, n3 with a new edge.
func (e *Engine) addTriplet(hub, n1, n2, n3 *Node) {
	e.addEdge(n1, hub)
	e.addEdge(n2, hub)
	e.addEdge(n3, hub)
}

func (e *Engine) addEdge(x, y *Node) *Edge {
	edge := &Edge{
		Nodes:     [2]*Node{x, y},
		Parents:   intersectParents(x.Parents, y.Parents),
		Neighbors: make(map[*Edge]struct{}),
	}
	x.Edges[edge] = struct{}{}
	y.Edges[edge] = struct{}{}
	x.Neighbors[y] = struct{}{}
	y.Neighbors[x] = struct{}{}
	e.edges = append(e.edges, edge)
	return edge
}

// linkEdgeNeighbors populates each edge's Neighbors set from the other
// edges touching its two endpoints, once the sweep is complete.
func (e *Engine) linkEdgeNeighbors() {
	for _, edge := range e.edges {
		for _, n := range edge.Nodes {
			for other := range n.Edges {
				if other != edge {
					edge.Neighbors[other] = struct{}{}
				}
			}
		}
	}
}
