// Package nearest implements the recovery search of the coverage planner:
// A* from the agent's cell to the closest cell not yet covered.
//
// The open set is a min-heap keyed by f = g + h[cell], where g counts unit
// moves (all four directions cost 1) and h is a heuristic matrix built
// toward the agent's own position. h is not a distance to any goal; it only
// biases expansion toward cells near the agent so the first unvisited cell
// popped tends to be a near one. Correctness does not depend on it: the goal
// test is exact and happens when a cell is popped, against the live coverage
// mask, not the search-local closed set.
//
// Equal f values pop in insertion order, so results are deterministic.
//
// On success the path is rebuilt backward from the goal using the direction
// recorded when each cell was first discovered; each step's action is derived
// from the heading change between consecutive cells, and the sequence is then
// reversed into forward order.
//
// Resignation (open set exhausted) means no unvisited cell is reachable at all.
//
// Complexity:
//
//   - Time:  O(R×C log(R×C)); each cell is discovered at most once.
//   - Space: O(R×C) for the closed mask, direction records and heap.
package nearest
