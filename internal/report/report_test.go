package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nullsweep/voronoi-sweep/internal/report"
	"github.com/nullsweep/voronoi-sweep/internal/tracelog"
	"github.com/nullsweep/voronoi-sweep/pkg/voronoi"
)

func TestWriteEmbedsChartAndLogs(t *testing.T) {
	sites := []voronoi.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}}
	log := tracelog.New()
	diagram, err := voronoi.Compute(sites, log)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, diagram, log); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Диаграмма Вороного") {
		t.Error("missing page title")
	}
	if !strings.Contains(out, "<div id=\"logs\">") {
		t.Error("missing logs container")
	}
}
