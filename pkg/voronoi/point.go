package voronoi

import "math"

// Point — координаты сайта (входной точки) или вычисленной вершины.
type Point struct {
	X, Y float64
}

func sqr(v float64) float64 {
	return v * v
}

func dist(a, b Point) float64 {
	return math.Sqrt(sqr(a.X-b.X) + sqr(a.Y-b.Y))
}
