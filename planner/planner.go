package planner

import (
	"fmt"

	"github.com/katalvlaran/covpath/coverage"
	"github.com/katalvlaran/covpath/grid"
	"github.com/katalvlaran/covpath/heuristic"
	"github.com/katalvlaran/covpath/nearest"
	"github.com/katalvlaran/covpath/trajectory"
)

// Planner drives one coverage planning run at a time over a fixed grid.
type Planner struct {
	grid *grid.Grid
	opts Options

	state   State
	pos     grid.Position
	heading grid.Orientation
	cov     *grid.Coverage
	traj    trajectory.Trajectory
}

// New returns a Planner over g in STANDBY. Options set the defaults used by
// every Start; nothing is validated until Start.
func New(g *grid.Grid, opts ...Option) *Planner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Planner{grid: g, opts: cfg, state: Standby}
}

// Start validates the configuration and begins a fresh run: the agent is
// placed on the Start cell, coverage is reset from the grid, the trajectory
// is cleared, and the state becomes COVERAGE_SEARCH. opts override the
// planner's options from here on.
//
// On a configuration error the planner is left in STANDBY.
func (p *Planner) Start(opts ...Option) error {
	cfg := p.opts
	for _, opt := range opts {
		opt(&cfg)
	}

	p.state = Standby
	p.traj.Reset()
	p.cov = nil

	if p.grid == nil {
		return ErrNilGrid
	}
	if err := p.grid.Validate(); err != nil {
		return err
	}
	if !cfg.Orientation.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidOrientation, int(cfg.Orientation))
	}
	if !cfg.CoverageHeuristic.Valid() {
		return fmt.Errorf("%w: coverage %v", ErrUnknownHeuristic, cfg.CoverageHeuristic)
	}
	if !cfg.RecoveryHeuristic.Valid() {
		return fmt.Errorf("%w: recovery %v", ErrUnknownHeuristic, cfg.RecoveryHeuristic)
	}

	p.opts = cfg
	p.pos = p.grid.Start()
	p.heading = cfg.Orientation
	p.cov = grid.NewCoverage(p.grid)
	p.state = CoverageSearch
	p.opts.Logger.Debug("planning started",
		"start", p.pos.String(),
		"orientation", p.heading.String(),
		"coverage_heuristic", cfg.CoverageHeuristic.String(),
		"recovery_heuristic", cfg.RecoveryHeuristic.String(),
		"free_cells", p.grid.FreeCells())

	return nil
}

// Step advances the state machine by exactly one transition and reports
// whether further work remains. In STANDBY or a terminal state it logs an
// invalid-state warning and returns false.
func (p *Planner) Step() bool {
	switch p.state {
	case CoverageSearch:
		return p.stepCoverage()
	case NearestUnvisitedSearch:
		return p.stepRecovery()
	default:
		p.opts.Logger.Warn("invalid state, planner not advanced", "state", p.state.String())
		return false
	}
}

// Compute runs Step until no work remains and returns the final state.
func (p *Planner) Compute() State {
	for p.Step() {
	}
	return p.state
}

// stepCoverage runs one greedy coverage search from the current pose.
func (p *Planner) stepCoverage() bool {
	h := heuristic.ForGrid(p.grid, p.pos, p.opts.CoverageHeuristic)
	res, err := coverage.Search(p.grid, p.cov, p.pos, p.heading, h)
	if err != nil {
		return p.abort(err)
	}

	p.advance(res.Trajectory, trajectory.TagCoverage)
	p.cov = res.Coverage
	p.opts.Logger.Debug("coverage segment",
		"heuristic", h.Kind().String(), "reference", h.Reference().String(),
		"found", res.Found, "steps", res.Steps, "cost", res.Cost, "at", p.pos.String())

	if res.Found {
		return p.finish(Found)
	}
	p.state = NearestUnvisitedSearch
	return true
}

// stepRecovery runs one nearest-unvisited search from the current pose.
func (p *Planner) stepRecovery() bool {
	h := heuristic.ForGrid(p.grid, p.pos, p.opts.RecoveryHeuristic)
	res, err := nearest.Search(p.grid, p.cov, p.pos, p.heading, h)
	if err != nil {
		return p.abort(err)
	}

	p.opts.Logger.Debug("recovery segment",
		"heuristic", h.Kind().String(), "reference", h.Reference().String(),
		"found", res.Found, "steps", res.Steps, "cost", res.Cost, "from", p.pos.String())
	if !res.Found {
		return p.finish(NotFound)
	}

	p.advance(res.Trajectory, trajectory.TagRecovery)
	p.state = CoverageSearch
	return true
}

// advance splices seg and moves the agent to its final pose.
func (p *Planner) advance(seg trajectory.Segment, tag trajectory.Tag) {
	if len(seg) == 0 {
		return
	}
	last := seg[len(seg)-1]
	p.pos, p.heading = last.Position, last.Orientation
	p.traj.Append(seg, tag)
}

// finish enters terminal state s and stamps it on the last step.
func (p *Planner) finish(s State) bool {
	p.state = s
	p.traj.MarkLast(s)
	p.opts.Logger.Info("planning finished",
		"state", s.String(),
		"steps", max(p.traj.Len()-1, 0),
		"cost", p.traj.Cost(),
		"unvisited", p.cov.Unvisited(p.grid))
	return false
}

// abort ends the run as NOT_FOUND after a search rejected its inputs.
// Start validation makes this unreachable for a well-formed planner.
func (p *Planner) abort(err error) bool {
	p.opts.Logger.Error("search rejected planner state", "state", p.state.String(), "error", err.Error())
	return p.finish(NotFound)
}

// State returns the current state.
func (p *Planner) State() State { return p.state }

// Position returns the agent's current cell and heading.
func (p *Planner) Position() (grid.Position, grid.Orientation) { return p.pos, p.heading }

// Coverage returns a copy of the current visited mask, or nil before Start.
func (p *Planner) Coverage() *grid.Coverage {
	if p.cov == nil {
		return nil
	}
	return p.cov.Clone()
}

// Trajectory returns a copy of the merged trajectory so far.
func (p *Planner) Trajectory() trajectory.Segment { return p.traj.Steps() }

// Annotations returns a copy of the strategy-switch annotations so far.
func (p *Planner) Annotations() []trajectory.Annotation { return p.traj.Annotations() }

// Result summarises the run so far. It may be called in any state.
func (p *Planner) Result() Result {
	steps := p.traj.Steps()
	return Result{
		Found:       p.state == Found,
		State:       p.state,
		Steps:       steps.Steps(),
		Cost:        steps.Cost(),
		Trajectory:  steps,
		Annotations: p.traj.Annotations(),
		Path:        steps.Path(),
		Coverage:    p.Coverage(),
	}
}
