// Package grid models the static 2-D occupancy grid a coverage agent moves on,
// together with the motion vocabulary shared by every search in covpath.
//
// What:
//
//   - Grid wraps a rectangular [][]int of cell codes {Free=0, Obstacle=1, Start=2}
//     with exactly one Start cell. It is immutable once built.
//   - Coverage is the mutable visited-cell mask laid over a Grid.
//   - Orientation and Action describe the agent's heading and the four
//     relative moves it can make (turn right, forward, turn left, reverse).
//   - Reachable and Components report the 4-connected traversable regions.
//
// Conventions:
//
//   - Positions are (Row, Col); Row grows downward, Col grows rightward.
//   - Orientation order is Up, Left, Down, Right and is shared by all algorithms.
//   - Action order is TurnRight, Forward, TurnLeft, Reverse; searches that break
//     ties rely on this exact order.
//   - Cells outside the grid read as Obstacle and as visited, so bounds never
//     need to be checked twice.
//
// Complexity:
//
//   - New, Validate:        O(R×C) time and memory.
//   - At, InBounds, Move:   O(1).
//   - Reachable:            O(R×C×4) time, O(R×C) memory.
//   - Components:           O(R×C×4) time, O(R×C) memory.
//
// Errors:
//
//   - ErrEmptyGrid:       input grid has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrInvalidCell:     a cell code is not 0, 1 or 2.
//   - ErrNoStart:         no Start cell present.
//   - ErrMultipleStarts:  more than one Start cell present.
package grid
