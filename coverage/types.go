package coverage

import (
	"errors"

	"github.com/katalvlaran/covpath/grid"
	"github.com/katalvlaran/covpath/trajectory"
)

// Sentinel errors for malformed search inputs.
var (
	// ErrNilInput is returned if the grid, coverage or heuristic is nil.
	ErrNilInput = errors.New("coverage: grid, coverage and heuristic must be non-nil")

	// ErrShapeMismatch is returned if coverage or heuristic dimensions differ from the grid.
	ErrShapeMismatch = errors.New("coverage: coverage and heuristic must match grid shape")

	// ErrBadStart is returned if the start pose is off-grid, on an obstacle,
	// or has an invalid orientation.
	ErrBadStart = errors.New("coverage: start must be a traversable cell with a valid orientation")
)

// Result is the outcome of one coverage search.
type Result struct {
	// Found is true when every free cell is covered.
	Found bool
	// Trajectory is the segment walked, starting at the start pose.
	Trajectory trajectory.Segment
	// Coverage is the updated visited mask.
	Coverage *grid.Coverage
	// Cost is the summed action cost of Trajectory.
	Cost float64
	// Steps is the number of moves in Trajectory.
	Steps int
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds callbacks and labels for a search.
type Options struct {
	// OnVisit is called for each cell the search moves into.
	OnVisit func(p grid.Position)

	// State stamps every produced step. Defaults to trajectory.CoverageSearch.
	State trajectory.State
}

// DefaultOptions returns no-op hooks and the CoverageSearch state label.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(grid.Position) {},
		State:   trajectory.CoverageSearch,
	}
}

// WithOnVisit registers a hook called for each newly covered cell.
func WithOnVisit(fn func(p grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithState overrides the state label stamped on produced steps.
func WithState(s trajectory.State) Option {
	return func(o *Options) {
		o.State = s
	}
}
