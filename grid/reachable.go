package grid

// Reachable returns every traversable cell 4-connected to from, in BFS order
// starting with from itself. An untraversable from yields nil.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Reachable(from Position) []Position {
	if !g.Traversable(from) {
		return nil
	}
	seen := make([]bool, len(g.cells))
	return g.flood(from, seen)
}

// Components finds all 4-connected regions of traversable cells.
// Regions are ordered by their first cell in row-major order; each region
// lists its cells in BFS order from that first cell.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Components() [][]Position {
	seen := make([]bool, len(g.cells))
	var comps [][]Position
	for i, v := range g.cells {
		if v == Obstacle || seen[i] {
			continue
		}
		comps = append(comps, g.flood(g.Coordinate(i), seen))
	}
	return comps
}

// flood collects the region around from, marking cells in seen.
func (g *Grid) flood(from Position, seen []bool) []Position {
	queue := []Position{from}
	seen[g.index(from)] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, o := range Orientations() {
			v := u.Move(o)
			if !g.Traversable(v) {
				continue
			}
			if vi := g.index(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}
