package grid_test

import (
	"testing"

	"github.com/katalvlaran/covpath/grid"
)

// TestNewCoverage checks obstacles and the start begin visited, free cells not.
func TestNewCoverage(t *testing.T) {
	g, _ := grid.New([][]int{
		{2, 0},
		{1, 0},
	})
	c := grid.NewCoverage(g)

	want := [][]bool{{true, false}, {true, false}}
	got := c.Bools()
	for r := range want {
		for col := range want[r] {
			if got[r][col] != want[r][col] {
				t.Errorf("visited(%d,%d) = %v; want %v", r, col, got[r][col], want[r][col])
			}
		}
	}
	if c.Unvisited(g) != 2 || c.Full() {
		t.Errorf("Unvisited = %d, Full = %v; want 2, false", c.Unvisited(g), c.Full())
	}
}

// TestCoverage_CloneIsolation ensures a clone does not share storage.
func TestCoverage_CloneIsolation(t *testing.T) {
	g, _ := grid.New([][]int{{2, 0, 0}})
	c := grid.NewCoverage(g)
	d := c.Clone()
	d.Visit(grid.Position{Row: 0, Col: 1})

	if c.Visited(grid.Position{Row: 0, Col: 1}) {
		t.Error("visit on clone leaked into original")
	}
	if !d.Visited(grid.Position{Row: 0, Col: 1}) {
		t.Error("clone did not record visit")
	}
	d.Visit(grid.Position{Row: 0, Col: 2})
	if !d.Full() || d.Unvisited(g) != 0 {
		t.Error("clone should be full after visiting both free cells")
	}
}

// TestCoverage_OutOfBounds checks outside cells are visited and ignored.
func TestCoverage_OutOfBounds(t *testing.T) {
	c := grid.NewMask(2, 2)
	outside := grid.Position{Row: 2, Col: 0}
	c.Visit(outside)
	if !c.Visited(outside) {
		t.Error("outside cell should read as visited")
	}
	if c.Full() {
		t.Error("fresh mask should not be full")
	}
}
