// Package planner is the coverage path planner: a finite-state controller
// that alternates greedy coverage with nearest-unvisited recovery until the
// grid is covered or nothing unvisited is reachable.
//
// States and transitions:
//
//	STANDBY ──Start──▶ COVERAGE_SEARCH
//	COVERAGE_SEARCH ──covered──▶ FOUND (terminal)
//	COVERAGE_SEARCH ──resigned──▶ NEAREST_UNVISITED_SEARCH
//	NEAREST_UNVISITED_SEARCH ──reached──▶ COVERAGE_SEARCH
//	NEAREST_UNVISITED_SEARCH ──resigned──▶ NOT_FOUND (terminal)
//
// Every segment produced by a search is spliced into one continuous
// trajectory (see package trajectory). Step advances exactly one transition
// and reports whether work remains, so callers can interleave planning with
// other periodic work; Compute loops Step to completion. A single search is
// the smallest unit of work and always runs to its own end. Start is the only
// way to abandon a run; it discards all prior state.
//
// A Planner is single-threaded: it owns its coverage mask and trajectory and
// must not be shared between goroutines without external synchronisation.
//
// Errors:
//
//   - ErrNilGrid:            Start on a planner built with a nil grid.
//   - ErrInvalidOrientation: orientation outside 0..3.
//   - ErrUnknownHeuristic:   heuristic kind outside the four supported kinds.
//   - grid.Err*:             the grid violates its invariants.
//
// Planning failure is not an error: it is reported as State NotFound.
// Stepping a planner in STANDBY or a terminal state is a logged no-op.
package planner
