package trajectory

import "github.com/katalvlaran/covpath/grid"

// ObstacleMark fills obstacle cells of a policy map.
const ObstacleMark = "XXXXXX"

// PolicyMap renders the per-cell view of steps over g: obstacle cells hold
// ObstacleMark, every visited cell collects the glyph of each next action
// taken from it, and annotations are appended as "@CS" / "@A*". The first
// and last steps are tagged "@STA" and "@END".
func PolicyMap(g *grid.Grid, steps Segment, notes []Annotation) [][]string {
	policy := make([][]string, g.Rows())
	for r := range policy {
		policy[r] = make([]string, g.Cols())
		for c := range policy[r] {
			if g.At(grid.Position{Row: r, Col: c}) == grid.Obstacle {
				policy[r][c] = ObstacleMark
			}
		}
	}
	put := func(p grid.Position, s string) {
		if g.InBounds(p) {
			policy[p.Row][p.Col] += s
		}
	}
	for _, st := range steps {
		put(st.Position, st.Next.String())
	}
	for _, n := range notes {
		put(n.Position, "@"+n.Tag.Glyph())
	}
	if len(steps) > 0 {
		put(steps[0].Position, "@STA")
		put(steps[len(steps)-1].Position, "@END")
	}
	return policy
}
