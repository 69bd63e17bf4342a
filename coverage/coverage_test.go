package coverage_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/covpath/coverage"
	"github.com/katalvlaran/covpath/grid"
	"github.com/katalvlaran/covpath/heuristic"
	"github.com/katalvlaran/covpath/trajectory"
)

func pos(r, c int) grid.Position { return grid.Position{Row: r, Col: c} }

func mustGrid(t testing.TB, values [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.New(values)
	require.NoError(t, err)
	return g
}

// run searches g from its Start cell with the given heading and heuristic kind.
func run(t *testing.T, g *grid.Grid, heading grid.Orientation, kind heuristic.Kind, opts ...coverage.Option) coverage.Result {
	t.Helper()
	start := g.Start()
	res, err := coverage.Search(g, grid.NewCoverage(g), start, heading, heuristic.ForGrid(g, start, kind), opts...)
	require.NoError(t, err)
	return res
}

func actions(seg trajectory.Segment) []grid.Action {
	out := make([]grid.Action, 0, len(seg))
	for _, st := range seg[1:] {
		out = append(out, st.Arrive)
	}
	return out
}

// TestSearch_Corridor covers straight runs and a turn out of the start pose.
func TestSearch_Corridor(t *testing.T) {
	g := mustGrid(t, [][]int{{2, 0, 0}})

	cases := []struct {
		name    string
		heading grid.Orientation
		actions []grid.Action
		cost    float64
	}{
		{"FacingRight", grid.Right, []grid.Action{grid.Forward, grid.Forward}, 0.2},
		{"FacingUp", grid.Up, []grid.Action{grid.TurnRight, grid.Forward}, 0.3},
		{"FacingDown", grid.Down, []grid.Action{grid.TurnLeft, grid.Forward}, 0.3},
		{"FacingLeft", grid.Left, []grid.Action{grid.Reverse, grid.Forward}, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := run(t, g, tc.heading, heuristic.Vertical)

			assert.True(t, res.Found)
			assert.Equal(t, 2, res.Steps)
			assert.InDelta(t, tc.cost, res.Cost, 1e-12)
			assert.Equal(t, tc.actions, actions(res.Trajectory))
			assert.Equal(t, []grid.Position{pos(0, 0), pos(0, 1), pos(0, 2)}, res.Trajectory.Path())
			assert.True(t, res.Coverage.Full())
		})
	}
}

// TestSearch_Resign stops when every neighbour is blocked or covered.
func TestSearch_Resign(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 2, 0}})
	res := run(t, g, grid.Right, heuristic.Vertical)

	assert.False(t, res.Found)
	assert.Equal(t, []grid.Position{pos(0, 1), pos(0, 2)}, res.Trajectory.Path())
	assert.False(t, res.Coverage.Visited(pos(0, 0)))
	assert.Equal(t, 1, res.Coverage.Unvisited(g))
}

// TestSearch_TieKeepsEarliestAction prefers TurnRight over TurnLeft at equal score.
func TestSearch_TieKeepsEarliestAction(t *testing.T) {
	g := mustGrid(t, [][]int{
		{1, 1, 1},
		{0, 2, 0},
		{1, 1, 1},
	})
	res := run(t, g, grid.Up, heuristic.Manhattan)

	require.Len(t, res.Trajectory, 2)
	assert.Equal(t, grid.TurnRight, res.Trajectory[1].Arrive)
	assert.Equal(t, pos(1, 2), res.Trajectory[1].Position)
	assert.False(t, res.Found)
}

// TestSearch_PrefersLowScore picks the cheap forward move toward the reference column.
func TestSearch_PrefersLowScore(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 0},
		{0, 2, 0},
		{0, 0, 0},
	})
	res := run(t, g, grid.Up, heuristic.Vertical)

	require.GreaterOrEqual(t, len(res.Trajectory), 2)
	assert.Equal(t, grid.Forward, res.Trajectory[1].Arrive)
	assert.Equal(t, pos(0, 1), res.Trajectory[1].Position)
}

// TestSearch_AlreadyCovered returns the single start pose.
func TestSearch_AlreadyCovered(t *testing.T) {
	for _, values := range [][][]int{
		{{2}},
		{{1, 1, 1}, {1, 2, 1}, {1, 1, 1}},
	} {
		g := mustGrid(t, values)
		res := run(t, g, grid.Up, heuristic.Manhattan)

		assert.True(t, res.Found)
		assert.Equal(t, 0, res.Steps)
		assert.Zero(t, res.Cost)
		require.Len(t, res.Trajectory, 1)
		assert.Equal(t, grid.NoAction, res.Trajectory[0].Arrive)
		assert.Equal(t, grid.NoAction, res.Trajectory[0].Next)
	}
}

// TestSearch_StepInvariants checks chaining, running cost and state labels.
func TestSearch_StepInvariants(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	})
	res := run(t, g, grid.Down, heuristic.Manhattan)

	require.NoError(t, res.Trajectory.Validate())
	assert.Equal(t, grid.NoAction, res.Trajectory[0].Arrive)
	assert.Equal(t, grid.NoAction, res.Trajectory[len(res.Trajectory)-1].Next)
	total := 0.0
	for i, st := range res.Trajectory {
		total += st.Arrive.Cost()
		assert.Equal(t, total, st.Cost, "running cost at step %d", i)
		assert.Equal(t, trajectory.CoverageSearch, st.State)
	}
	assert.Equal(t, total, res.Cost)
}

// TestSearch_DoesNotMutateInput checks the caller's coverage is cloned.
func TestSearch_DoesNotMutateInput(t *testing.T) {
	g := mustGrid(t, [][]int{{2, 0, 0}})
	cov := grid.NewCoverage(g)
	before := cov.Bools()

	_, err := coverage.Search(g, cov, g.Start(), grid.Right, heuristic.ForGrid(g, g.Start(), heuristic.Vertical))
	require.NoError(t, err)

	if diff := cmp.Diff(before, cov.Bools()); diff != "" {
		t.Errorf("input coverage changed (-before +after):\n%s", diff)
	}
}

// TestSearch_SeededCoverage skips cells the caller already covered.
func TestSearch_SeededCoverage(t *testing.T) {
	g := mustGrid(t, [][]int{{2, 0, 0, 0}})
	cov := grid.NewCoverage(g)
	cov.Visit(pos(0, 2))
	cov.Visit(pos(0, 3))

	res, err := coverage.Search(g, cov, g.Start(), grid.Right, heuristic.ForGrid(g, g.Start(), heuristic.Vertical))
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, 1, res.Steps)
}

// TestSearch_Hooks covers OnVisit ordering and the WithState label.
func TestSearch_Hooks(t *testing.T) {
	g := mustGrid(t, [][]int{{2, 0, 0}})
	var visited []grid.Position
	res := run(t, g, grid.Right, heuristic.Vertical,
		coverage.WithOnVisit(func(p grid.Position) { visited = append(visited, p) }),
		coverage.WithOnVisit(nil),
		coverage.WithState(trajectory.NearestUnvisitedSearch),
	)

	assert.Equal(t, []grid.Position{pos(0, 1), pos(0, 2)}, visited)
	for _, st := range res.Trajectory {
		assert.Equal(t, trajectory.NearestUnvisitedSearch, st.State)
	}
}

// TestSearch_InputErrors covers each sentinel.
func TestSearch_InputErrors(t *testing.T) {
	g := mustGrid(t, [][]int{{2, 0}, {1, 0}})
	cov := grid.NewCoverage(g)
	h := heuristic.ForGrid(g, g.Start(), heuristic.Manhattan)

	cases := []struct {
		name    string
		g       *grid.Grid
		cov     *grid.Coverage
		start   grid.Position
		heading grid.Orientation
		h       *heuristic.Matrix
		want    error
	}{
		{"NilGrid", nil, cov, pos(0, 0), grid.Up, h, coverage.ErrNilInput},
		{"NilCoverage", g, nil, pos(0, 0), grid.Up, h, coverage.ErrNilInput},
		{"NilHeuristic", g, cov, pos(0, 0), grid.Up, nil, coverage.ErrNilInput},
		{"CoverageShape", g, grid.NewMask(3, 2), pos(0, 0), grid.Up, h, coverage.ErrShapeMismatch},
		{"HeuristicShape", g, cov, pos(0, 0), grid.Up, heuristic.Build(pos(0, 0), heuristic.Manhattan, 2, 3), coverage.ErrShapeMismatch},
		{"OnObstacle", g, cov, pos(1, 0), grid.Up, h, coverage.ErrBadStart},
		{"OffGrid", g, cov, pos(5, 5), grid.Up, h, coverage.ErrBadStart},
		{"BadHeading", g, cov, pos(0, 0), grid.Orientation(7), h, coverage.ErrBadStart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coverage.Search(tc.g, tc.cov, tc.start, tc.heading, tc.h)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v; want %v", err, tc.want)
			}
		})
	}
}

// BenchmarkSearch_OpenGrid sweeps an obstacle-free 64x64 room.
func BenchmarkSearch_OpenGrid(b *testing.B) {
	const n = 64
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
	}
	values[0][0] = 2
	g := mustGrid(b, values)
	cov := grid.NewCoverage(g)
	h := heuristic.ForGrid(g, g.Start(), heuristic.Vertical)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coverage.Search(g, cov, g.Start(), grid.Down, h); err != nil {
			b.Fatal(err)
		}
	}
}
