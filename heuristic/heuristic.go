package heuristic

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/covpath/grid"
)

// Matrix is an immutable per-cell estimate relative to a reference cell.
type Matrix struct {
	ref   grid.Position
	kind  Kind
	dense *mat.Dense
}

// Build returns the rows×cols matrix of kind estimates toward ref.
// A non-positive rows or cols yields an empty matrix whose every cell reads
// as +Inf. An invalid kind yields an all-zero matrix, which degrades
// ordering to action costs alone.
func Build(ref grid.Position, kind Kind, rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		return &Matrix{ref: ref, kind: kind, dense: &mat.Dense{}}
	}
	data := make([]float64, rows*cols)
	if kind.Valid() {
		for x := 0; x < rows; x++ {
			dx := math.Abs(float64(x - ref.Row))
			for y := 0; y < cols; y++ {
				dy := math.Abs(float64(y - ref.Col))
				data[x*cols+y] = estimate(kind, dx, dy)
			}
		}
	}

	return &Matrix{ref: ref, kind: kind, dense: mat.NewDense(rows, cols, data)}
}

// ForGrid is Build sized to g.
func ForGrid(g *grid.Grid, ref grid.Position, kind Kind) *Matrix {
	return Build(ref, kind, g.Rows(), g.Cols())
}

func estimate(kind Kind, dx, dy float64) float64 {
	switch kind {
	case Manhattan:
		return dx + dy
	case Chebyshev:
		return math.Max(dx, dy)
	case Horizontal:
		return dx
	case Vertical:
		return dy
	}
	return 0
}

// At returns the estimate for p. Positions outside the matrix read as +Inf.
func (m *Matrix) At(p grid.Position) float64 {
	r, c := m.dense.Dims()
	if p.Row < 0 || p.Row >= r || p.Col < 0 || p.Col >= c {
		return math.Inf(1)
	}
	return m.dense.At(p.Row, p.Col)
}

// Dims returns the matrix shape.
func (m *Matrix) Dims() (rows, cols int) {
	return m.dense.Dims()
}

// Kind returns the kind the matrix was built with.
func (m *Matrix) Kind() Kind { return m.kind }

// Reference returns the reference cell.
func (m *Matrix) Reference() grid.Position { return m.ref }
