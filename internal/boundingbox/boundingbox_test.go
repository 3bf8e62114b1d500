package boundingbox_test

import (
	"math"
	"testing"

	"github.com/nullsweep/voronoi-sweep/internal/boundingbox"
	"github.com/nullsweep/voronoi-sweep/pkg/voronoi"
)

func TestOfEmpty(t *testing.T) {
	b := boundingbox.Of(nil)
	if b != (boundingbox.Box{}) {
		t.Errorf("got %+v, want zero value", b)
	}
}

func TestOf(t *testing.T) {
	pts := []voronoi.Point{{X: -1, Y: 2}, {X: 5, Y: -3}, {X: 2, Y: 7}}
	b := boundingbox.Of(pts)
	if b.MinX != -1 || b.MaxX != 5 || b.MinY != -3 || b.MaxY != 7 {
		t.Errorf("got %+v", b)
	}
	if b.Width() != 6 || b.Height() != 10 {
		t.Errorf("got width=%v height=%v", b.Width(), b.Height())
	}
	want := math.Sqrt(6*6 + 10*10)
	if math.Abs(b.Diagonal()-want) > 1e-9 {
		t.Errorf("got diagonal %v, want %v", b.Diagonal(), want)
	}
}
