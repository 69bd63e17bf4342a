// Package trajectory holds the step model shared by the coverage planner's
// searches and the merger that splices their segments into one continuous,
// annotated path.
//
// A Step records where the agent stands, how it is heading, which action
// brought it there (Arrive) and which action it takes next (Next). Within a
// segment, step[i+1].Arrive == step[i].Next and applying step[i].Next to
// step[i] yields step[i+1]'s heading and cell.
//
// Each search starts fresh from the agent's current cell, so its first step
// has no arrival action. Trajectory.Append repairs that at every strategy
// switch: it carries the arrival action across, drops the duplicated boundary
// cell, and annotates the switch point.
//
// PolicyMap derives a per-cell glyph view of a trajectory for reports.
package trajectory
