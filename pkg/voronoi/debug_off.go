//go:build !voronoi_debug

package voronoi

// checkInvariants is a no-op outside debug builds, so the call site in
// processCircleEvent costs nothing in the normal build.
func (e *Engine) checkInvariants() {}
