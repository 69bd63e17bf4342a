package heuristic_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/covpath/grid"
	"github.com/katalvlaran/covpath/heuristic"
)

// ExampleBuild prints a Manhattan matrix around the centre of a 3×3 grid.
func ExampleBuild() {
	m := heuristic.Build(grid.Position{Row: 1, Col: 1}, heuristic.Manhattan, 3, 3)
	for r := 0; r < 3; r++ {
		row := make([]string, 0, 3)
		for c := 0; c < 3; c++ {
			row = append(row, fmt.Sprintf("%.0f", m.At(grid.Position{Row: r, Col: c})))
		}
		fmt.Println(strings.Join(row, " "))
	}

	// Output:
	// 2 1 2
	// 1 0 1
	// 2 1 2
}
