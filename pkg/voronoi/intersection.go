package voronoi

// intersection is a beach-line element: the ordered pair of sites whose
// parabolic arcs meet at this x-position under the current sweep-y. A
// nil left/right site is represented by the left/right sentinel.
type intersection struct {
	left, right siteRef
}

// sameTriple reports whether {x, y, z} and {a, b, c} are the same
// unordered set of site indices. Used once, shared by both of
// processCircleEvent's "don't reschedule the triple we just consumed"
// checks instead of being duplicated at each call site.
func sameTriple(x, y, z, a, b, c siteRef) bool {
	return sortedTriple(x.idx, y.idx, z.idx) == sortedTriple(a.idx, b.idx, c.idx)
}

func sortedTriple(a, b, c int) [3]int {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}
