package voronoi

import "math"

// eps is the tolerance shared between the beach-line comparator and the
// parabola intersection formula below. Using two different epsilons
// between the two would let the ordering predicate and the geometry it's
// supposed to describe disagree — that's how a beach line silently
// corrupts itself.
const eps = 1e-7

// xOf returns the intersection of the parabolic arcs focused at p (left
// arc) and r (right arc), with directrix sweepY. sign selects which of
// the two roots of the quadratic is the one between the two arcs: +1
// when the higher-y focus is the left site, −1 otherwise.
func xOf(sweepY float64, p, r Point, sign float64) Point {
	switch {
	case math.Abs(p.Y-sweepY) < eps:
		// arc around p has collapsed to a vertical line at x = p.x
		qx := p.X
		qy := 0.5 * (sqr(qx) - 2*qx*r.X + sqr(r.X) + sqr(r.Y) - sqr(sweepY)) / (r.Y - sweepY)
		return Point{qx, qy}
	case math.Abs(r.Y-sweepY) < eps:
		// symmetric degenerate case for r
		qx := r.X
		qy := 0.5 * (sqr(p.X) + sqr(p.Y) - 2*p.X*qx + sqr(qx) - sqr(sweepY)) / (p.Y - sweepY)
		return Point{qx, qy}
	case math.Abs(p.Y-r.Y) > eps:
		term1 := (p.Y*r.X - p.X*r.Y + (p.X-r.X)*sweepY) / (p.Y - r.Y)
		rad := math.Sqrt(sqr(p.X-r.X)+sqr(p.Y-r.Y)) *
			math.Sqrt(p.Y-sweepY) * math.Sqrt(r.Y-sweepY) / (p.Y - r.Y)
		qx := term1 + sign*math.Abs(rad)
		qy := 0.5 * (sqr(p.X) + sqr(p.Y) - 2*p.X*qx + sqr(qx) - sqr(sweepY)) / (p.Y - sweepY)
		return Point{qx, qy}
	default:
		// co-horizontal foci: intersection sits exactly between them
		qx := (p.X + r.X) * 0.5
		qy := 0.5 * (sqr(p.X) + sqr(p.Y) - 2*p.X*qx + sqr(qx) - sqr(sweepY)) / (p.Y - sweepY)
		return Point{qx, qy}
	}
}

// circleOf solves the circumcircle of three non-collinear points. ok is
// false when the three points are (numerically) collinear, in which case
// center and radius are meaningless and must not be used.
func circleOf(p, q, r Point) (center Point, radius float64, ok bool) {
	denom := p.Y*q.X - p.X*q.Y - (p.Y-q.Y)*r.X + (p.X-q.X)*r.Y
	if math.Abs(denom) < 1e-9 {
		return Point{}, 0, false
	}

	cx := 0.5 * (p.Y*sqr(q.X) + p.Y*sqr(q.Y) - (p.Y-q.Y)*sqr(r.X) - (p.Y-q.Y)*sqr(r.Y) -
		(sqr(p.X)+sqr(p.Y))*q.Y + (sqr(p.X)+sqr(p.Y)-sqr(q.X)-sqr(q.Y))*r.Y) / denom
	cy := -0.5 * (p.X*sqr(q.X) + p.X*sqr(q.Y) - (p.X-q.X)*sqr(r.X) - (p.X-q.X)*sqr(r.Y) -
		(sqr(p.X)+sqr(p.Y))*q.X + (sqr(p.X)+sqr(p.Y)-sqr(q.X)-sqr(q.Y))*r.X) / denom

	center = Point{cx, cy}
	radius = math.Sqrt(sqr(p.X-cx) + sqr(p.Y-cy))
	return center, radius, true
}

// perp is the signed twice-area of the triangle (pt, v0, v1); used to
// classify which side of segment v0-v1 a point falls on.
func perp(pt, v0, v1 Point) float64 {
	return (pt.X-v1.X)*(v0.Y-v1.Y) - (pt.Y-v1.Y)*(v0.X-v1.X)
}
