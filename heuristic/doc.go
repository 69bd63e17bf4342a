// Package heuristic builds per-cell cost-estimate matrices relative to a
// reference cell. Coverage and recovery searches read these matrices only to
// order their candidates; a matrix never affects which cells are legal.
//
// Kinds, for a cell (x,y) = (row,col) and reference (rx,ry):
//
//	Manhattan   |x−rx| + |y−ry|
//	Chebyshev   max(|x−rx|, |y−ry|)
//	Horizontal  |x−rx|
//	Vertical    |y−ry|
//
// Build is pure and deterministic; matrices are immutable once built and are
// stored in a gonum mat.Dense.
//
// Complexity: O(R×C) time and memory per Build.
package heuristic
