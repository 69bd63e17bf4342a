package grid

import "fmt"

// Cell is the occupancy code of a single grid cell.
type Cell int

const (
	// Free is an open cell that must be covered.
	Free Cell = iota
	// Obstacle is a blocked cell the agent can never enter.
	Obstacle
	// Start is the agent's initial cell. It counts as covered from the outset.
	Start
)

// String returns the lower-case name of the cell code.
func (c Cell) String() string {
	switch c {
	case Free:
		return "free"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	default:
		return fmt.Sprintf("cell(%d)", int(c))
	}
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move returns the neighbour of p one cell along orientation o.
func (p Position) Move(o Orientation) Position {
	d := o.Delta()
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Grid is an immutable rectangular occupancy grid with exactly one Start cell.
// cells is stored row-major; start caches the Start cell position.
type Grid struct {
	rows, cols int
	cells      []Cell
	start      Position
}
