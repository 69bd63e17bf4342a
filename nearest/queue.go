package nearest

import "github.com/katalvlaran/covpath/grid"

// openItem is one entry of the open set.
type openItem struct {
	pos grid.Position
	g   int     // moves from the start
	f   float64 // g + heuristic
	seq int     // insertion order, breaks f ties
}

// openSet is a min-heap of *openItem ordered by (f, seq).
type openSet []*openItem

// Len returns the number of items in the heap.
func (q openSet) Len() int { return len(q) }

// Less orders by f, then by insertion order.
func (q openSet) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

// Swap swaps two elements in the heap.
func (q openSet) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *openItem.
func (q *openSet) Push(x interface{}) { *q = append(*q, x.(*openItem)) }

// Pop removes and returns the last element.
// Called by heap.Pop; returns interface{} that must be cast to *openItem.
func (q *openSet) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}
