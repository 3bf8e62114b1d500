package raster_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nullsweep/voronoi-sweep/internal/raster"
	"github.com/nullsweep/voronoi-sweep/pkg/voronoi"
)

func TestSavePNG(t *testing.T) {
	sites := []voronoi.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}
	diagram, err := voronoi.Compute(sites, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	path := filepath.Join(t.TempDir(), "diagram.png")
	opt := raster.DefaultOptions()
	opt.Width, opt.Height = 200, 200
	if err := raster.SavePNG(path, diagram, opt); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PNG output is empty")
	}
}
