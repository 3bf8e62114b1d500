//go:build voronoi_debug

package voronoi

import "fmt"

// checkInvariants re-walks the beach line and panics if any adjacent
// pair is found out of order under the current sweep-y. Grounded on the
// original's always-on std::cerr loop that re-compared every adjacent
// pair before each processEvent; gated behind a build tag here so it
// costs nothing outside debug builds and test runs that opt in.
func (e *Engine) checkInvariants() {
	node := e.beach.getFirstOrNil()
	for node != nil && node.next != nil {
		a := node.value.(intersection)
		b := node.next.value.(intersection)
		if e.lessBeach(b, a) {
			panic(fmt.Sprintf("voronoi: beach line out of order at sweep y=%v: (%v) should not precede (%v)", e.sweepY, b, a))
		}
		node = node.next
	}
}
