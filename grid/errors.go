package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidCell indicates a cell code outside {Free, Obstacle, Start}.
	ErrInvalidCell = errors.New("grid: cell code must be 0 (free), 1 (obstacle) or 2 (start)")
	// ErrNoStart indicates the grid has no Start cell.
	ErrNoStart = errors.New("grid: no start cell")
	// ErrMultipleStarts indicates the grid has more than one Start cell.
	ErrMultipleStarts = errors.New("grid: more than one start cell")
	// ErrUnknownOrientation indicates an orientation name ParseOrientation does not know.
	ErrUnknownOrientation = errors.New("grid: orientation must be up, left, down, right or 0..3")
)
