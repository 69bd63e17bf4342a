package planner

import (
	"sort"

	"github.com/katalvlaran/covpath/grid"
	"github.com/katalvlaran/covpath/heuristic"
)

// SweepRow is one (coverage heuristic, initial orientation) run of Sweep.
type SweepRow struct {
	Heuristic   heuristic.Kind
	Orientation grid.Orientation
	Result      Result
}

// Sweep plans g once per (coverage heuristic, orientation) pair and returns
// the rows ranked best first: found runs before unfinished ones, then fewer
// steps, then lower cost. Ties keep kinds-major input order. Empty kinds or
// orientations mean all of them. opts apply to every run; the recovery
// heuristic and logger come from opts.
//
// Returns the first configuration error encountered, if any.
func Sweep(g *grid.Grid, kinds []heuristic.Kind, orientations []grid.Orientation, opts ...Option) ([]SweepRow, error) {
	if len(kinds) == 0 {
		kinds = heuristic.Kinds()
	}
	if len(orientations) == 0 {
		orientations = grid.Orientations()
	}

	p := New(g, opts...)
	rows := make([]SweepRow, 0, len(kinds)*len(orientations))
	for _, k := range kinds {
		for _, o := range orientations {
			if err := p.Start(WithCoverageHeuristic(k), WithOrientation(o)); err != nil {
				return nil, err
			}
			p.Compute()
			rows = append(rows, SweepRow{Heuristic: k, Orientation: o, Result: p.Result()})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Result, rows[j].Result
		if a.Found != b.Found {
			return a.Found
		}
		if a.Steps != b.Steps {
			return a.Steps < b.Steps
		}
		return a.Cost < b.Cost
	})
	return rows, nil
}
