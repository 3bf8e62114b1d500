// Package report renders a *voronoi.Diagram as an HTML page with an
// interactive go-echarts scatter/line chart, and serves it over HTTP,
// interleaving the sweep's trace log into the same page. Grounded on
// the teacher's cmd/app/main.go (voronoiToEcharts, prepareScatter,
// diagramHandler).
package report

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/nullsweep/voronoi-sweep/internal/tracelog"
	"github.com/nullsweep/voronoi-sweep/pkg/voronoi"
)

func prepareScatter(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{Color: "white"},
			Right:     "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Диаграмма Вороного (Форчун)",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "value",
			Name:      "Ширина",
			AxisLabel: &opts.AxisLabel{Color: "white"},
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "value",
			Name:      "Высота",
			AxisLabel: &opts.AxisLabel{Color: "white"},
			SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type: "inside", Start: 0, End: 100, FilterMode: "none", Orient: "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type: "inside", Start: 0, End: 100, FilterMode: "none", Orient: "vertical",
		}),
	)
}

// Scatter builds a go-echarts scatter chart with the sites overlaid
// with a line series per edge in the diagram.
func Scatter(diagram *voronoi.Diagram) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter)

	points := make([]opts.ScatterData, 0, len(diagram.Sites))
	for _, site := range diagram.Sites {
		points = append(points, opts.ScatterData{Value: []float64{site.X, site.Y}})
	}
	scatter.AddSeries("Станции", points).
		SetSeriesOptions(charts.WithItemStyleOpts(opts.ItemStyle{Color: "lightgreen"}))

	for _, edge := range diagram.Edges {
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)
		line.AddSeries("Границы", []opts.LineData{
			{Value: []float64{edge.Nodes[0].X, edge.Nodes[0].Y}},
			{Value: []float64{edge.Nodes[1].X, edge.Nodes[1].Y}},
		}).SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
		scatter.Overlap(line)
	}

	return scatter
}

// Write renders diagram plus log's accumulated trace into w as a
// complete HTML page. log may be nil, the same convention Compute
// itself follows — the page is rendered with an empty log section.
func Write(w io.Writer, diagram *voronoi.Diagram, log *tracelog.Logger) error {
	fmt.Fprintln(w, part1)
	if err := Scatter(diagram).Render(w); err != nil {
		return err
	}
	fmt.Fprintln(w, part2)
	if log != nil {
		for _, entry := range log.Logs {
			fmt.Fprintln(w, entry)
		}
	}
	fmt.Fprintln(w, part3)
	return nil
}

// SiteGenerator produces sites for the HTTP demo handler.
type SiteGenerator func(n, width, height int) []voronoi.Point

// Handler returns an http.HandlerFunc that reads width/height/stations
// form values (or the given defaults on a GET), builds a diagram with
// generate, and writes the page produced by Write. Grounded on the
// teacher's diagramHandler.
func Handler(generate SiteGenerator, defaultWidth, defaultHeight, defaultSites int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		width, height, n := defaultWidth, defaultHeight, defaultSites
		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if v, err := strconv.Atoi(r.FormValue("width")); err == nil {
				width = v
			}
			if v, err := strconv.Atoi(r.FormValue("height")); err == nil {
				height = v
			}
			if v, err := strconv.Atoi(r.FormValue("stations")); err == nil {
				n = v
			}
		}

		sites := generate(n, width, height)
		log := tracelog.New()
		defer log.ClearLogs()

		diagram, err := voronoi.Compute(sites, log)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if err := Write(w, diagram, log); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
