package coverage

import (
	"fmt"

	"github.com/katalvlaran/covpath/grid"
	"github.com/katalvlaran/covpath/heuristic"
	"github.com/katalvlaran/covpath/trajectory"
)

// Search runs the greedy coverage sweep over g from start facing heading.
// cov is the coverage so far; it is cloned, never mutated. h orders the
// candidates.
//
// Returns ErrNilInput, ErrShapeMismatch or ErrBadStart for malformed inputs;
// otherwise the Result, where Found == false means the sweep resigned.
func Search(g *grid.Grid, cov *grid.Coverage, start grid.Position, heading grid.Orientation, h *heuristic.Matrix, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil || cov == nil || h == nil {
		return Result{}, ErrNilInput
	}
	if hr, hc := h.Dims(); cov.Rows() != g.Rows() || cov.Cols() != g.Cols() || hr != g.Rows() || hc != g.Cols() {
		return Result{}, ErrShapeMismatch
	}
	if !g.Traversable(start) || !heading.Valid() {
		return Result{}, fmt.Errorf("%w: %v%v", ErrBadStart, start, heading)
	}

	s := &sweeper{g: g, h: h, cfg: cfg, closed: cov.Clone()}
	s.init(start, heading)
	found := s.process()

	return Result{
		Found:      found,
		Trajectory: s.traj,
		Coverage:   s.closed,
		Cost:       s.traj.Cost(),
		Steps:      s.traj.Steps(),
	}, nil
}

// sweeper holds the mutable state of a single coverage search.
type sweeper struct {
	g         *grid.Grid
	h         *heuristic.Matrix
	cfg       Options
	closed    *grid.Coverage     // visited mask, seeded from the caller's coverage
	remaining int                // free cells not yet closed
	traj      trajectory.Segment // steps walked so far
}

// init closes the start cell and seeds the trajectory with the start pose.
func (s *sweeper) init(start grid.Position, heading grid.Orientation) {
	s.closed.Visit(start)
	s.remaining = s.closed.Unvisited(s.g)
	s.traj = trajectory.Segment{{
		Position:    start,
		Orientation: heading,
		Arrive:      grid.NoAction,
		Next:        grid.NoAction,
		State:       s.cfg.State,
	}}
}

// process extends the trajectory until full coverage or resignation.
// It reports whether full coverage was reached.
func (s *sweeper) process() bool {
	for s.remaining > 0 {
		last := &s.traj[len(s.traj)-1]
		a, ok := s.choose(last.Position, last.Orientation)
		if !ok {
			return false
		}

		heading := a.Apply(last.Orientation)
		next := last.Position.Move(heading)
		last.Next = a
		s.traj = append(s.traj, trajectory.Step{
			Cost:        last.Cost + a.Cost(),
			Position:    next,
			Orientation: heading,
			Arrive:      a,
			Next:        grid.NoAction,
			State:       s.cfg.State,
		})
		s.visit(next)
	}
	return true
}

// choose picks the legal action minimising action cost + heuristic.
// Strict comparison keeps the earliest action on ties.
func (s *sweeper) choose(at grid.Position, heading grid.Orientation) (grid.Action, bool) {
	best, bestScore, found := grid.NoAction, 0.0, false
	for _, a := range grid.Actions() {
		p := at.Move(a.Apply(heading))
		if !s.g.Traversable(p) || s.closed.Visited(p) {
			continue
		}
		score := a.Cost() + s.h.At(p)
		if !found || score < bestScore {
			best, bestScore, found = a, score, true
		}
	}
	return best, found
}

// visit closes p and updates the remaining counter.
func (s *sweeper) visit(p grid.Position) {
	if s.g.At(p) == grid.Free {
		s.remaining--
	}
	s.closed.Visit(p)
	s.cfg.OnVisit(p)
}
