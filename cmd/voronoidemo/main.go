// Command voronoidemo builds a Voronoi diagram from randomly or evenly
// generated sites, writes it as a PNG, and serves an interactive HTML
// report over HTTP — exercising both renderers from one binary.
// Grounded on the teacher's cmd/app/main.go.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/nullsweep/voronoi-sweep/internal/raster"
	"github.com/nullsweep/voronoi-sweep/internal/report"
	"github.com/nullsweep/voronoi-sweep/internal/tracelog"
	"github.com/nullsweep/voronoi-sweep/pkg/voronoi"
)

func generateRandSites(n, width, height int) []voronoi.Point {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sites := make([]voronoi.Point, n)
	for i := 0; i < n; i++ {
		sites[i] = voronoi.Point{X: float64(rng.Intn(width)), Y: float64(rng.Intn(height))}
	}
	return sites
}

func generateGridSites(n, width, height int) []voronoi.Point {
	sites := make([]voronoi.Point, 0, n)
	rows := int(math.Sqrt(float64(n)))
	if rows < 1 {
		rows = 1
	}
	cols := (n + rows - 1) / rows
	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)
	for i := 0; i < rows && len(sites) < n; i++ {
		for j := 0; j < cols && len(sites) < n; j++ {
			sites = append(sites, voronoi.Point{
				X: xStep/2 + float64(j)*xStep,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}
	return sites
}

func main() {
	width := flag.Int("width", 1000, "canvas width")
	height := flag.Int("height", 1000, "canvas height")
	numSites := flag.Int("sites", 12, "number of sites")
	random := flag.Bool("random", false, "scatter sites randomly instead of on a grid")
	out := flag.String("out", "diagram.png", "PNG output path")
	serve := flag.Bool("serve", false, "also serve the interactive HTML report on :8080")
	flag.Parse()

	generate := generateGridSites
	if *random {
		generate = generateRandSites
	}

	sites := generate(*numSites, *width, *height)
	log := tracelog.New()

	diagram, err := voronoi.Compute(sites, log)
	if err != nil {
		fmt.Println("compute error:", err)
		return
	}

	opt := raster.DefaultOptions()
	opt.Width, opt.Height = *width, *height
	if err := raster.SavePNG(*out, diagram, opt); err != nil {
		fmt.Println("raster error:", err)
		return
	}
	fmt.Println("wrote", *out)

	if !*serve {
		return
	}

	http.HandleFunc("/", report.Handler(generate, *width, *height, *numSites))
	fmt.Println("Сервер запущен на http://localhost:8080")
	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Println("Err ListenAndServe", err)
	}
}
