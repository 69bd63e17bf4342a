package trajectory

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/covpath/grid"
)

// ErrDiscontinuous indicates two adjacent steps that do not chain.
var ErrDiscontinuous = errors.New("trajectory: discontinuous steps")

// State is the planner state a step originated from.
type State int

const (
	// Standby is the state before the first Start.
	Standby State = iota
	// CoverageSearch extends the path greedily over unvisited cells.
	CoverageSearch
	// NearestUnvisitedSearch jumps to the closest unvisited cell.
	NearestUnvisitedSearch
	// Found is terminal: every reachable free cell is covered.
	Found
	// NotFound is terminal: coverage stalled and nothing unvisited is reachable.
	NotFound
)

var stateNames = [...]string{"STANDBY", "COVERAGE_SEARCH", "NEAREST_UNVISITED_SEARCH", "FOUND", "NOT_FOUND"}

// String returns the upper-case state name.
func (s State) String() string {
	if s < Standby || s > NotFound {
		return fmt.Sprintf("STATE(%d)", int(s))
	}
	return stateNames[s]
}

// Terminal reports whether s ends a planning run.
func (s State) Terminal() bool {
	return s == Found || s == NotFound
}

// Step is one pose along a trajectory.
type Step struct {
	// Cost is the cumulative action cost up to and including Arrive.
	Cost float64
	grid.Position
	Orientation grid.Orientation
	// Arrive is the action taken to reach this step, NoAction if none.
	Arrive grid.Action
	// Next is the action taken to leave this step, NoAction if none.
	Next grid.Action
	// State is the planner state that produced the step.
	State State
}

// Tag labels the strategy of a spliced segment.
type Tag int

const (
	// TagCoverage marks a greedy coverage segment.
	TagCoverage Tag = iota
	// TagRecovery marks a nearest-unvisited recovery segment.
	TagRecovery
)

// String returns the long tag name.
func (t Tag) String() string {
	if t == TagRecovery {
		return "recovery-segment"
	}
	return "coverage-segment"
}

// Glyph returns the short policy-map label: CS or A*.
func (t Tag) Glyph() string {
	if t == TagRecovery {
		return "A*"
	}
	return "CS"
}

// Annotation records a strategy switch point.
type Annotation struct {
	grid.Position
	Tag Tag
}

// String formats the step as "cost (row,col)heading arrive>next STATE".
func (s Step) String() string {
	return fmt.Sprintf("%.2f %v%v %s>%s %v", s.Cost, s.Position, s.Orientation, s.Arrive, s.Next, s.State)
}

// String formats the annotation as "(row,col)@GLYPH".
func (a Annotation) String() string {
	return fmt.Sprintf("%v@%s", a.Position, a.Tag.Glyph())
}
