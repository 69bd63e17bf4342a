package nearest

import (
	"errors"

	"github.com/katalvlaran/covpath/grid"
	"github.com/katalvlaran/covpath/trajectory"
)

// Sentinel errors for malformed search inputs.
var (
	// ErrNilInput is returned if the grid, coverage or heuristic is nil.
	ErrNilInput = errors.New("nearest: grid, coverage and heuristic must be non-nil")

	// ErrShapeMismatch is returned if coverage or heuristic dimensions differ from the grid.
	ErrShapeMismatch = errors.New("nearest: coverage and heuristic must match grid shape")

	// ErrBadStart is returned if the start pose is off-grid, on an obstacle,
	// or has an invalid orientation.
	ErrBadStart = errors.New("nearest: start must be a traversable cell with a valid orientation")
)

// MoveCost is the A* cost of one move in any direction.
const MoveCost = 1

// Result is the outcome of one nearest-unvisited search.
type Result struct {
	// Found is true when an unvisited cell was reached.
	Found bool
	// Trajectory runs from the start pose to the unvisited goal; empty on resignation.
	Trajectory trajectory.Segment
	// Closed marks every cell the search discovered.
	Closed *grid.Coverage
	// Cost is the summed action cost of Trajectory.
	Cost float64
	// Steps is the number of moves in Trajectory.
	Steps int
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds callbacks and labels for a search.
type Options struct {
	// OnExpand is called for each cell popped from the open set, before the goal test.
	OnExpand func(p grid.Position, g int)

	// State stamps every produced step. Defaults to trajectory.NearestUnvisitedSearch.
	State trajectory.State
}

// DefaultOptions returns no-op hooks and the NearestUnvisitedSearch state label.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(grid.Position, int) {},
		State:    trajectory.NearestUnvisitedSearch,
	}
}

// WithOnExpand registers a hook called for each popped cell with its move count.
func WithOnExpand(fn func(p grid.Position, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithState overrides the state label stamped on produced steps.
func WithState(s trajectory.State) Option {
	return func(o *Options) {
		o.State = s
	}
}
