package nearest

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/covpath/grid"
	"github.com/katalvlaran/covpath/heuristic"
	"github.com/katalvlaran/covpath/trajectory"
)

// Search finds the path from start (facing heading) to the nearest cell that
// cov has not visited. h is the estimate toward start itself. cov is only read.
//
// Returns ErrNilInput, ErrShapeMismatch or ErrBadStart for malformed inputs;
// otherwise the Result, where Found == false means nothing unvisited is
// reachable and Trajectory is empty.
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

	r := &runner{
		g:      g,
		cov:    cov,
		h:      h,
		cfg:    cfg,
		closed: grid.NewMask(g.Rows(), g.Cols()),
		via:    make(map[grid.Position]grid.Orientation),
	}
	r.init(start)
	goal, found := r.process()

	res := Result{Found: found, Closed: r.closed}
	if found {
		res.Trajectory = r.reconstruct(start, heading, goal)
		res.Cost = res.Trajectory.Cost()
		res.Steps = res.Trajectory.Steps()
	}
	return res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g      *grid.Grid
	cov    *grid.Coverage // live coverage; read only
	h      *heuristic.Matrix
	cfg    Options
	closed *grid.Coverage                     // cells already discovered
	via    map[grid.Position]grid.Orientation // heading used to first reach a cell
	open   openSet
	seq    int
}

// init closes start and pushes it with g = 0.
func (r *runner) init(start grid.Position) {
	r.closed.Visit(start)
	heap.Init(&r.open)
	r.push(start, 0)
}

func (r *runner) push(p grid.Position, g int) {
	heap.Push(&r.open, &openItem{pos: p, g: g, f: float64(g) + r.h.At(p), seq: r.seq})
	r.seq++
}

// process pops cells in (f, seq) order until one is unvisited in the live
// coverage, discovering traversable neighbours as it goes.
func (r *runner) process() (grid.Position, bool) {
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*openItem)
		r.cfg.OnExpand(item.pos, item.g)
		if !r.cov.Visited(item.pos) {
			return item.pos, true
		}
		for _, o := range grid.Orientations() {
			next := item.pos.Move(o)
			if !r.g.Traversable(next) || r.closed.Visited(next) {
				continue
			}
			r.closed.Visit(next)
			r.via[next] = o
			r.push(next, item.g+MoveCost)
		}
	}
	return grid.Position{}, false
}

// reconstruct walks back from goal to start along the recorded headings and
// returns the forward-ordered segment.
func (r *runner) reconstruct(start grid.Position, heading grid.Orientation, goal grid.Position) trajectory.Segment {
	var back trajectory.Segment
	for p := goal; p != start; {
		o := r.via[p]
		back = append(back, trajectory.Step{Position: p, Orientation: o})
		p = p.Move(grid.Reverse.Apply(o))
	}
	back = append(back, trajectory.Step{Position: start, Orientation: heading})

	n := len(back)
	seg := make(trajectory.Segment, n)
	for i := range back {
		seg[i] = back[n-1-i]
		seg[i].Arrive, seg[i].Next, seg[i].State = grid.NoAction, grid.NoAction, r.cfg.State
	}
	for i := 0; i+1 < n; i++ {
		a := grid.ActionBetween(seg[i].Orientation, seg[i+1].Orientation)
		seg[i].Next = a
		seg[i+1].Arrive = a
	}
	return seg.Accumulated()
}
