package grid

// Coverage is a mutable visited-cell mask with the same shape as a Grid.
// Cells only ever flip from unvisited to visited.
// Positions outside the mask read as visited and ignore Visit.
type Coverage struct {
	rows, cols int
	visited    []bool
}

// NewCoverage returns the initial coverage for g: Obstacle and Start cells are
// visited, Free cells are not.
func NewCoverage(g *Grid) *Coverage {
	c := NewMask(g.rows, g.cols)
	for i, v := range g.cells {
		c.visited[i] = v != Free
	}
	return c
}

// NewMask returns an all-unvisited mask of the given shape.
func NewMask(rows, cols int) *Coverage {
	return &Coverage{rows: rows, cols: cols, visited: make([]bool, rows*cols)}
}

// Rows returns the number of rows.
func (c *Coverage) Rows() int { return c.rows }

// Cols returns the number of columns.
func (c *Coverage) Cols() int { return c.cols }

// Clone returns an independent copy of c.
func (c *Coverage) Clone() *Coverage {
	out := &Coverage{rows: c.rows, cols: c.cols, visited: make([]bool, len(c.visited))}
	copy(out.visited, c.visited)
	return out
}

func (c *Coverage) inBounds(p Position) bool {
	return p.Row >= 0 && p.Row < c.rows && p.Col >= 0 && p.Col < c.cols
}

// Visit marks p visited.
func (c *Coverage) Visit(p Position) {
	if c.inBounds(p) {
		c.visited[p.Row*c.cols+p.Col] = true
	}
}

// Visited reports whether p is visited.
func (c *Coverage) Visited(p Position) bool {
	if !c.inBounds(p) {
		return true
	}
	return c.visited[p.Row*c.cols+p.Col]
}

// Full reports whether every cell of the mask is visited.
func (c *Coverage) Full() bool {
	for _, v := range c.visited {
		if !v {
			return false
		}
	}
	return true
}

// Unvisited counts the Free cells of g that c has not visited.
// c and g must have the same shape.
func (c *Coverage) Unvisited(g *Grid) int {
	n := 0
	for i, v := range g.cells {
		if v == Free && !c.visited[i] {
			n++
		}
	}
	return n
}

// Bools returns the mask as a fresh [][]bool.
func (c *Coverage) Bools() [][]bool {
	out := make([][]bool, c.rows)
	for r := 0; r < c.rows; r++ {
		out[r] = make([]bool, c.cols)
		copy(out[r], c.visited[r*c.cols:(r+1)*c.cols])
	}
	return out
}
