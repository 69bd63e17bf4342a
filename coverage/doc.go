// Package coverage implements the greedy coverage search: a locally greedy,
// heuristic-guided boustrophedon sweep that extends the agent's path one
// cell at a time until every free cell is covered or no unvisited neighbour
// remains.
//
// At each pose the four actions are tried in the fixed order TurnRight,
// Forward, TurnLeft, Reverse. Candidates that leave the grid, hit an
// obstacle or re-enter a closed cell are discarded. The survivor with the
// lowest action cost + heuristic wins; ties go to the earliest action in
// enumeration order, which on open rectangular regions decides the sweep
// pattern. Forward is the cheapest action, so the sweep prefers long
// straight runs before turning.
//
// Resignation (no candidate left) is an ordinary outcome reported through
// Result.Found == false; it tells the planner to switch to recovery.
//
// Complexity:
//
//   - Time:  O(F × 4) action evaluations for F free cells, plus O(R×C) to
//     clone the coverage mask.
//   - Space: O(R×C) for the closed mask and O(F) for the trajectory.
package coverage
