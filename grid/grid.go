package grid

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice of cell codes.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrInvalidCell for a code
// outside {0,1,2}, and ErrNoStart or ErrMultipleStarts unless exactly one
// cell holds Start. All errors carry the offending coordinates.
// Algorithmic complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), w)
		}
	}

	g := &Grid{rows: h, cols: w, cells: make([]Cell, h*w)}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			g.cells[g.index(Position{r, c})] = Cell(values[r][c])
		}
	}
	start, err := g.scan()
	if err != nil {
		return nil, err
	}
	g.start = start

	return g, nil
}

// Validate re-checks the grid invariants: non-empty, only known cell codes,
// exactly one Start cell. A Grid obtained from New always passes; the zero
// value reports ErrEmptyGrid. Validate only reads g and is safe for
// concurrent use.
func (g *Grid) Validate() error {
	_, err := g.scan()
	return err
}

// scan checks the cell codes and returns the single Start position.
func (g *Grid) scan() (Position, error) {
	if g == nil || g.rows == 0 || g.cols == 0 || len(g.cells) != g.rows*g.cols {
		return Position{}, ErrEmptyGrid
	}
	var start Position
	starts := 0
	for i, v := range g.cells {
		switch v {
		case Free, Obstacle:
		case Start:
			if starts++; starts > 1 {
				return Position{}, fmt.Errorf("%w: second start at %v", ErrMultipleStarts, g.Coordinate(i))
			}
			start = g.Coordinate(i)
		default:
			return Position{}, fmt.Errorf("%w: got %d at %v", ErrInvalidCell, int(v), g.Coordinate(i))
		}
	}
	if starts == 0 {
		return Position{}, ErrNoStart
	}

	return start, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the position of the single Start cell.
func (g *Grid) Start() Position { return g.start }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell code at p. Positions outside the grid read as Obstacle.
// Complexity: O(1).
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Obstacle
	}
	return g.cells[g.index(p)]
}

// Traversable reports whether the agent may stand on p: in bounds and not
// an Obstacle. The Start cell is traversable.
func (g *Grid) Traversable(p Position) bool {
	return g.At(p) != Obstacle
}

// FreeCells counts the cells that must be covered (code Free).
func (g *Grid) FreeCells() int {
	n := 0
	for _, v := range g.cells {
		if v == Free {
			n++
		}
	}
	return n
}

// index maps p to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}
