package voronoi

// circleEvent records that the arcs flanking the middle site of
// (leftInt, rightInt) will squeeze that arc out of the beach line once
// the sweep reaches center.Y - radius.
type circleEvent struct {
	leftInt, rightInt intersection
	center            Point
	radius            float64
}

func (c *circleEvent) eventY() float64 {
	return c.center.Y - c.radius
}

func lessCircleEvent(av, bv interface{}) bool {
	return av.(*circleEvent).eventY() < bv.(*circleEvent).eventY()
}

// scheduleCircleEvent inserts the circle event for the triple whose
// flanking boundaries are leftInt and rightInt, after the full battery
// of insertion-time validity checks from spec §4.3. A rejected candidate
// is simply never inserted — there is no lazy invalidation to reconcile
// later.
func (e *Engine) scheduleCircleEvent(leftInt, rightInt intersection) {
	if leftInt.left.isLeftSentinel() || rightInt.right.isRightSentinel() {
		return
	}
	if (leftInt.left == rightInt.left && leftInt.right == rightInt.right) ||
		(leftInt.left == rightInt.right && leftInt.right == rightInt.left) {
		// only two distinct sites between the two boundaries — no vertex
		return
	}

	a := e.sites[leftInt.left.idx]
	b := e.sites[leftInt.right.idx]
	c := e.sites[rightInt.right.idx]

	center, radius, ok := circleOf(a, b, c)
	if !ok {
		return
	}
	eventY := center.Y - radius
	if eventY > e.sweepY {
		return
	}

	// convergence test: at the event's own event-y, both boundaries
	// must land essentially on the circle's center.
	leftPt := e.intersectionPointAt(eventY, leftInt)
	rightPt := e.intersectionPointAt(eventY, rightInt)
	if dist(leftPt, center) > radius || dist(rightPt, center) > radius {
		return
	}

	// Co-circular sites (e.g. a square's two diagonal triples) can
	// produce two distinct triples converging on the same point at the
	// same sweep-y. Processing both squeezes the beach line through a
	// state where two breakpoints coincide, which the sweep-y-dependent
	// comparator can't order consistently — the second squeeze finds
	// the beach line already left inconsistent by the first. Rather
	// than let that reach the beach line at all, canonicalize: if an
	// event converging on essentially the same point is already queued,
	// this triple is redundant with it and is dropped.
	if e.hasNearbyCircleEvent(center) {
		return
	}

	evt := &circleEvent{leftInt: leftInt, rightInt: rightInt, center: center, radius: radius}
	e.events.insertOrdered(evt, lessCircleEvent)
}

// hasNearbyCircleEvent reports whether a circle event converging within
// eps of center is already queued.
func (e *Engine) hasNearbyCircleEvent(center Point) bool {
	for node := e.events.getFirstOrNil(); node != nil; node = node.next {
		other := node.value.(*circleEvent).center
		if dist(center, other) < eps {
			return true
		}
	}
	return false
}

// cancelCircleEvent removes the (at most one) scheduled event for the
// triple bridged by leftInt/rightInt, if any. Located by recomputing the
// event-y the same way scheduleCircleEvent would, then scanning the
// small cluster of events sharing that event-y.
func (e *Engine) cancelCircleEvent(leftInt, rightInt intersection) {
	if leftInt.left.isLeftSentinel() || rightInt.right.isRightSentinel() {
		return
	}
	a := e.sites[leftInt.left.idx]
	b := e.sites[leftInt.right.idx]
	c := e.sites[rightInt.right.idx]

	center, radius, ok := circleOf(a, b, c)
	if !ok {
		return
	}
	endY := center.Y - radius

	probe := &circleEvent{center: center, radius: radius}
	for node := e.events.lowerBound(probe, lessCircleEvent); node != nil; node = node.next {
		evt := node.value.(*circleEvent)
		if evt.eventY()-endY > eps {
			break
		}
		if evt.leftInt == leftInt && evt.rightInt == rightInt {
			e.events.removeNode(node)
			return
		}
	}
}
