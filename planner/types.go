package planner

import (
	"errors"

	"github.com/katalvlaran/covpath/grid"
	"github.com/katalvlaran/covpath/heuristic"
	"github.com/katalvlaran/covpath/internal/logging"
	"github.com/katalvlaran/covpath/trajectory"
)

// Sentinel configuration errors returned by Start.
var (
	// ErrNilGrid indicates the planner has no grid.
	ErrNilGrid = errors.New("planner: grid is nil")

	// ErrInvalidOrientation indicates an initial orientation outside 0..3.
	ErrInvalidOrientation = errors.New("planner: orientation must be 0 (up), 1 (left), 2 (down) or 3 (right)")

	// ErrUnknownHeuristic indicates an unsupported heuristic kind.
	ErrUnknownHeuristic = errors.New("planner: unknown heuristic kind")
)

// State is the planner's finite-state machine state.
type State = trajectory.State

// Planner states.
const (
	Standby                = trajectory.Standby
	CoverageSearch         = trajectory.CoverageSearch
	NearestUnvisitedSearch = trajectory.NearestUnvisitedSearch
	Found                  = trajectory.Found
	NotFound               = trajectory.NotFound
)

// Result is the outcome of a planning run.
type Result struct {
	// Found is true when the run ended in FOUND.
	Found bool
	// State is the state the planner is in.
	State State
	// Steps is the number of moves in Trajectory.
	Steps int
	// Cost is the summed action cost over steps with a defined arrival action.
	Cost float64
	// Trajectory is the merged path.
	Trajectory trajectory.Segment
	// Annotations marks every strategy switch.
	Annotations []trajectory.Annotation
	// Path is the (row, col) of every trajectory step.
	Path []grid.Position
	// Coverage is a copy of the final visited mask.
	Coverage *grid.Coverage
}

// Options configures a Planner.
type Options struct {
	// Logger receives diagnostics. Defaults to a no-op logger.
	Logger *logging.Logger
	// Orientation is the initial heading at the Start cell. Default Up.
	Orientation grid.Orientation
	// CoverageHeuristic orders greedy coverage candidates. Default Vertical.
	CoverageHeuristic heuristic.Kind
	// RecoveryHeuristic orders nearest-unvisited expansion. Default Manhattan.
	RecoveryHeuristic heuristic.Kind
}

// Option represents a functional option for configuring a Planner.
type Option func(*Options)

// DefaultOptions returns the defaults described on Options.
func DefaultOptions() Options {
	return Options{
		Logger:            logging.NopLogger(),
		Orientation:       grid.Up,
		CoverageHeuristic: heuristic.Vertical,
		RecoveryHeuristic: heuristic.Manhattan,
	}
}

// WithLogger sets the diagnostics logger. A nil logger is ignored.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOrientation sets the initial heading. It is validated by Start.
func WithOrientation(or grid.Orientation) Option {
	return func(o *Options) {
		o.Orientation = or
	}
}

// WithCoverageHeuristic sets the coverage-phase heuristic kind.
func WithCoverageHeuristic(k heuristic.Kind) Option {
	return func(o *Options) {
		o.CoverageHeuristic = k
	}
}

// WithRecoveryHeuristic sets the recovery-phase heuristic kind.
func WithRecoveryHeuristic(k heuristic.Kind) Option {
	return func(o *Options) {
		o.RecoveryHeuristic = k
	}
}
