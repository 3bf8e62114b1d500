// Package raster renders a *voronoi.Diagram to a PNG file using gg's
// CPU rasterizer, exercising the widest third-party dependency surface
// in the retrieved example pack without requiring a GPU device.
package raster

import (
	"github.com/gogpu/gg"

	"github.com/nullsweep/voronoi-sweep/internal/boundingbox"
	"github.com/nullsweep/voronoi-sweep/pkg/voronoi"
)

const (
	margin     = 20.0
	siteRadius = 3.0
	nodeRadius = 2.0
)

// Options controls the rendered canvas.
type Options struct {
	Width, Height int
	Background    string
	SiteColor     string
	EdgeColor     string
	NodeColor     string
}

// DefaultOptions returns a dark-theme canvas sized to match the report's
// go-echarts default panel size.
func DefaultOptions() Options {
	return Options{
		Width:      1020,
		Height:     580,
		Background: "#1F1F1F",
		SiteColor:  "#90ee90",
		EdgeColor:  "#757575",
		NodeColor:  "#d3d3d3",
	}
}

// SavePNG renders diagram to path under the given options, scaling the
// diagram's bounding box (padded by margin) to fill the canvas.
func SavePNG(path string, diagram *voronoi.Diagram, opt Options) error {
	dc := gg.NewContext(opt.Width, opt.Height)
	dc.SetHexColor(opt.Background)
	dc.Clear()

	bbox := boundingbox.Of(diagram.Sites)
	scaleX, scaleY, offX, offY := fitTransform(bbox, opt.Width, opt.Height)
	project := func(p voronoi.Point) (float64, float64) {
		return offX + (p.X-bbox.MinX)*scaleX, offY + (p.Y-bbox.MinY)*scaleY
	}

	dc.SetHexColor(opt.EdgeColor)
	dc.SetLineWidth(1.5)
	for _, edge := range diagram.Edges {
		x1, y1 := project(voronoi.Point{X: edge.Nodes[0].X, Y: edge.Nodes[0].Y})
		x2, y2 := project(voronoi.Point{X: edge.Nodes[1].X, Y: edge.Nodes[1].Y})
		dc.DrawLine(x1, y1, x2, y2)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	dc.SetHexColor(opt.NodeColor)
	for _, node := range diagram.Nodes {
		x, y := project(voronoi.Point{X: node.X, Y: node.Y})
		dc.DrawCircle(x, y, nodeRadius)
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	dc.SetHexColor(opt.SiteColor)
	for _, site := range diagram.Sites {
		x, y := project(site)
		dc.DrawCircle(x, y, siteRadius)
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	return dc.SavePNG(path)
}

// fitTransform returns the uniform scale and offset that fits bbox,
// padded by margin on every side, inside a width x height canvas.
func fitTransform(bbox boundingbox.Box, width, height int) (scaleX, scaleY, offX, offY float64) {
	w, h := bbox.Width(), bbox.Height()
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	usableW := float64(width) - 2*margin
	usableH := float64(height) - 2*margin
	scale := usableW / w
	if s := usableH / h; s < scale {
		scale = s
	}
	drawnW := w * scale
	drawnH := h * scale
	offX = margin + (usableW-drawnW)/2
	offY = margin + (usableH-drawnH)/2
	return scale, scale, offX, offY
}
