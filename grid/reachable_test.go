package grid_test

import (
	"testing"

	"github.com/katalvlaran/covpath/grid"
)

// TestReachable_Isolated checks an enclosed pocket is excluded.
func TestReachable_Isolated(t *testing.T) {
	g, _ := grid.New([][]int{
		{2, 0, 1, 0},
		{0, 0, 1, 0},
		{1, 1, 1, 0},
	})
	got := g.Reachable(g.Start())
	if len(got) != 4 {
		t.Fatalf("Reachable len = %d; want 4 (%v)", len(got), got)
	}
	if got[0] != g.Start() {
		t.Errorf("Reachable[0] = %v; want start", got[0])
	}
	for _, p := range got {
		if p.Col == 3 {
			t.Errorf("pocket cell %v reported reachable", p)
		}
	}
	if g.Reachable(grid.Position{Row: 0, Col: 2}) != nil {
		t.Error("Reachable from obstacle should be nil")
	}
}

// TestComponents counts traversable regions in row-major discovery order.
func TestComponents(t *testing.T) {
	g, _ := grid.New([][]int{
		{2, 1, 0},
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 1},
	})
	comps := g.Components()
	if len(comps) != 3 {
		t.Fatalf("Components = %d; want 3", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1]), len(comps[2])}
	want := []int{2, 2, 2}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("component %d size = %d; want %d", i, sizes[i], want[i])
		}
	}
	if comps[1][0] != (grid.Position{Row: 0, Col: 2}) {
		t.Errorf("component 1 starts at %v; want (0,2)", comps[1][0])
	}
}
