package voronoi

import (
	"math"
	"testing"
)

const testTolerance = 1e-4

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < testTolerance
}

func approxPoint(t *testing.T, got, want Point) {
	t.Helper()
	if !approxEqual(got.X, want.X) || !approxEqual(got.Y, want.Y) {
		t.Errorf("got point (%v, %v), want (%v, %v)", got.X, got.Y, want.X, want.Y)
	}
}

func TestComputeSingleSite(t *testing.T) {
	d, err := Compute([]Point{{X: 0, Y: 0}}, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(d.Nodes) != 0 {
		t.Errorf("got %d nodes, want 0", len(d.Nodes))
	}
	if len(d.Edges) != 0 {
		t.Errorf("got %d edges, want 0", len(d.Edges))
	}
}

func TestComputeTwoSites(t *testing.T) {
	d, err := Compute([]Point{{X: 0, Y: 0}, {X: 2, Y: 0}}, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(d.Nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(d.Nodes))
	}
	n := d.Nodes[0]
	approxPoint(t, Point{X: n.X, Y: n.Y}, Point{X: 1, Y: 0})
	if len(n.Parents) != 2 {
		t.Errorf("got %d parents, want 2", len(n.Parents))
	}
	if _, ok := n.Parents[0]; !ok {
		t.Error("missing parent 0")
	}
	if _, ok := n.Parents[1]; !ok {
		t.Error("missing parent 1")
	}
}

func TestComputeEquilateralTriangle(t *testing.T) {
	sites := []Point{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 1, Y: math.Sqrt(3)},
	}
	d, err := Compute(sites, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	vertex := findVertexNode(t, d)
	approxPoint(t, Point{X: vertex.X, Y: vertex.Y}, Point{X: 1, Y: math.Sqrt(3) / 3})

	midpoints := findMidpointNodes(t, d)
	if len(midpoints) != 3 {
		t.Fatalf("got %d midpoint nodes, want 3", len(midpoints))
	}

	if len(d.Edges) != 3 {
		t.Fatalf("got %d edges, want 3", len(d.Edges))
	}
	for _, e := range d.Edges {
		if len(e.Parents) != 2 {
			t.Errorf("edge parent-set size = %d, want 2", len(e.Parents))
		}
		if e.Nodes[0] != vertex && e.Nodes[1] != vertex {
			t.Error("edge does not touch the triangle's vertex node")
		}
	}
}

func TestComputeRightTriangle(t *testing.T) {
	sites := []Point{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 0, Y: 3},
	}
	d, err := Compute(sites, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	vertex := findVertexNode(t, d)
	approxPoint(t, Point{X: vertex.X, Y: vertex.Y}, Point{X: 2, Y: 1.5})

	if len(findMidpointNodes(t, d)) != 3 {
		t.Fatalf("expected 3 midpoint nodes")
	}
	if len(d.Edges) != 3 {
		t.Fatalf("got %d edges, want 3", len(d.Edges))
	}
}

func TestComputeObtuseTriangle(t *testing.T) {
	sites := []Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 5, Y: 1},
	}
	d, err := Compute(sites, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	vertex := findVertexNode(t, d)
	if len(d.Edges) != 3 {
		t.Fatalf("got %d edges, want 3", len(d.Edges))
	}

	midpoints := findMidpointNodes(t, d)
	if len(midpoints) != 3 {
		t.Fatalf("got %d midpoint nodes, want 3", len(midpoints))
	}

	// exactly one midpoint acts as the hub: it connects to the vertex and
	// to both other midpoints (3 edges); the other two midpoints connect
	// only to the hub (1 edge each).
	hubCount := 0
	for _, m := range midpoints {
		if len(m.Edges) == 3 {
			hubCount++
		}
	}
	if hubCount != 1 {
		t.Errorf("got %d hub midpoints (3 edges each), want exactly 1", hubCount)
	}
	if len(vertex.Edges) != 1 {
		t.Errorf("vertex has %d edges, want 1 (only the hub connects to it)", len(vertex.Edges))
	}
}

func TestComputeSquareDuplicateVertex(t *testing.T) {
	sites := []Point{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 0, Y: 2},
		{X: 2, Y: 2},
	}
	d, err := Compute(sites, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	for _, n := range d.Nodes {
		if len(n.Parents) == 4 {
			t.Fatal("square input should never produce a single 4-parent node")
		}
	}
	for _, n := range d.Nodes {
		if len(n.Parents) == 3 {
			approxPoint(t, Point{X: n.X, Y: n.Y}, Point{X: 1, Y: 1})
		}
	}
}

func TestEveryVertexEquidistantFromItsParents(t *testing.T) {
	sites := []Point{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 2, Y: 4}, {X: 8, Y: 3}, {X: 3, Y: -3},
	}
	d, err := Compute(sites, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	for _, n := range d.Nodes {
		if len(n.Parents) != 3 {
			continue
		}
		v := Point{X: n.X, Y: n.Y}
		var dists []float64
		for p := range n.Parents {
			dists = append(dists, dist(v, sites[p]))
		}
		for i := 1; i < len(dists); i++ {
			if !approxEqual(dists[0], dists[i]) {
				t.Errorf("vertex %v not equidistant from its parents: %v", v, dists)
			}
		}
	}
}

func TestEdgeParentsAreIntersectionOfEndpoints(t *testing.T) {
	sites := []Point{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 2, Y: 4}, {X: 8, Y: 3}, {X: 3, Y: -3},
	}
	d, err := Compute(sites, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	for _, e := range d.Edges {
		want := intersectParents(e.Nodes[0].Parents, e.Nodes[1].Parents)
		if len(e.Parents) == 0 {
			t.Error("edge has no shared parent")
		}
		if len(e.Parents) != len(want) {
			t.Errorf("edge parents = %v, want %v", e.Parents, want)
			continue
		}
		for p := range want {
			if _, ok := e.Parents[p]; !ok {
				t.Errorf("edge parents = %v, want %v", e.Parents, want)
			}
		}
	}
}

func TestNoDuplicateNodes(t *testing.T) {
	sites := []Point{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 2, Y: 4}, {X: 8, Y: 3}, {X: 3, Y: -3}, {X: -2, Y: 2},
	}
	d, err := Compute(sites, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	seen := make(map[nodeKey]bool)
	for _, n := range d.Nodes {
		idx := make([]int, 0, len(n.Parents))
		for p := range n.Parents {
			idx = append(idx, p)
		}
		var key nodeKey
		switch len(idx) {
		case 2:
			key = pairKey(idx[0], idx[1])
		case 3:
			key = tripleKey(idx[0], idx[1], idx[2])
		default:
			t.Fatalf("node with unexpected parent count %d", len(idx))
		}
		if seen[key] {
			t.Errorf("duplicate node for parent set %v", idx)
		}
		seen[key] = true
	}
}

func findVertexNode(t *testing.T, d *Diagram) *Node {
	t.Helper()
	for _, n := range d.Nodes {
		if len(n.Parents) == 3 {
			return n
		}
	}
	t.Fatal("no 3-parent vertex node found")
	return nil
}

func findMidpointNodes(t *testing.T, d *Diagram) []*Node {
	t.Helper()
	var out []*Node
	for _, n := range d.Nodes {
		if len(n.Parents) == 2 {
			out = append(out, n)
		}
	}
	return out
}
