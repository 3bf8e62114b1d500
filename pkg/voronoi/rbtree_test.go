package voronoi

import "testing"

func lessInt(a, b interface{}) bool { return a.(int) < b.(int) }

func equalInt(a, b interface{}) bool { return a.(int) == b.(int) }

func collect(t *orderedTree) []int {
	var out []int
	for n := t.getFirstOrNil(); n != nil; n = n.next {
		out = append(out, n.value.(int))
	}
	return out
}

func TestOrderedTreeInsertOrdered(t *testing.T) {
	tree := &orderedTree{}
	for _, v := range []int{5, 1, 9, 3, 7, 2, 8, 4, 6} {
		tree.insertOrdered(v, lessInt)
	}
	got := collect(tree)
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestOrderedTreeFindAndRemove(t *testing.T) {
	tree := &orderedTree{}
	for _, v := range []int{10, 20, 30, 40} {
		tree.insertOrdered(v, lessInt)
	}
	node := tree.find(30, lessInt, equalInt)
	if node == nil {
		t.Fatal("expected to find 30")
	}
	tree.removeNode(node)
	got := collect(tree)
	want := []int{10, 20, 40}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestOrderedTreeLowerBoundAndLast(t *testing.T) {
	tree := &orderedTree{}
	for _, v := range []int{1, 3, 5, 7, 9} {
		tree.insertOrdered(v, lessInt)
	}
	node := tree.lowerBound(4, lessInt)
	if node == nil || node.value.(int) != 5 {
		t.Fatalf("lowerBound(4) = %v, want 5", node)
	}
	last := tree.last()
	if last == nil || last.value.(int) != 9 {
		t.Fatalf("last() = %v, want 9", last)
	}
}
