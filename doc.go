// Package covpath plans complete-coverage routes over 2-D occupancy grids:
// a single agent with a heading must visit every free cell, paying a small
// cost for each turn-and-advance action.
//
// What is inside?
//
//	grid/         validated grid, positions, headings, actions, coverage mask, reachability
//	heuristic/    per-cell estimate matrices (Manhattan, Chebyshev, Horizontal, Vertical)
//	coverage/     greedy sweep that always takes the cheapest unvisited neighbour
//	nearest/      A* hop from a dead end to the closest unvisited cell
//	trajectory/   steps, segments, the merged trajectory and its policy map
//	planner/      the state machine alternating sweep and hop, plus Sweep
//
// The planner state machine:
//
//	STANDBY ──Start──▶ COVERAGE_SEARCH ◀──found──┐
//	                      │        │             │
//	                 covered    dead end         │
//	                      ▼        ▼             │
//	                   FOUND   NEAREST_UNVISITED_SEARCH
//	                               │
//	                          nothing left reachable
//	                               ▼
//	                           NOT_FOUND
//
// Quick start:
//
//	g, _ := grid.New([][]int{
//		{2, 0, 0},
//		{0, 1, 0},
//		{0, 0, 0},
//	})
//	p := planner.New(g, planner.WithCoverageHeuristic(heuristic.Vertical))
//	_ = p.Start()
//	p.Compute()
//	fmt.Println(p.Result().Path)
//
// The covpath command (cmd/covpath) wraps the planner for YAML/JSON map files:
//
//	covpath plan maps/warehouse.yaml --orientation down --path
//	covpath sweep maps/warehouse.yaml --top 5
package covpath
