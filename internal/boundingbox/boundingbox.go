// Package boundingbox computes the axis-aligned extent of a site set.
// It is a pure external collaborator to the sweep engine: it only
// depends on voronoi.Point, never on sweep internals, and the sweep
// engine never imports it back.
package boundingbox

import (
	"math"

	"github.com/nullsweep/voronoi-sweep/pkg/voronoi"
)

type Box struct {
	MinX, MaxX, MinY, MaxY float64
}

// Of computes the bounding box of pts in one pass. The zero Box is
// returned for an empty slice.
func Of(pts []voronoi.Point) Box {
	if len(pts) == 0 {
		return Box{}
	}
	b := Box{MinX: pts[0].X, MaxX: pts[0].X, MinY: pts[0].Y, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}

func (b Box) Width() float64  { return b.MaxX - b.MinX }
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Diagonal returns the box's diagonal length, used by callers to size a
// numerical tolerance relative to the input's scale.
func (b Box) Diagonal() float64 {
	w, h := b.Width(), b.Height()
	return math.Sqrt(w*w + h*h)
}
