package trajectory

import (
	"fmt"

	"github.com/katalvlaran/covpath/grid"
)

// Segment is an ordered run of steps.
type Segment []Step

// Cost sums the cost of every defined arrival action, in order.
func (s Segment) Cost() float64 {
	total := 0.0
	for _, st := range s {
		total += st.Arrive.Cost()
	}
	return total
}

// Steps returns the number of moves: one less than the number of poses.
func (s Segment) Steps() int {
	if len(s) == 0 {
		return 0
	}
	return len(s) - 1
}

// Path returns the (row, col) of every step.
func (s Segment) Path() []grid.Position {
	out := make([]grid.Position, len(s))
	for i, st := range s {
		out[i] = st.Position
	}
	return out
}

// Clone returns an independent copy of s.
func (s Segment) Clone() Segment {
	if s == nil {
		return nil
	}
	out := make(Segment, len(s))
	copy(out, s)
	return out
}

// Validate checks that every adjacent pair chains: the later step's arrival
// action equals the earlier step's next action, and applying that action to
// the earlier pose yields the later heading and cell.
func (s Segment) Validate() error {
	for i := 0; i+1 < len(s); i++ {
		a, b := s[i], s[i+1]
		if b.Arrive != a.Next {
			return fmt.Errorf("%w: step %d arrives by %q but step %d leaves by %q", ErrDiscontinuous, i+1, b.Arrive, i, a.Next)
		}
		heading := a.Next.Apply(a.Orientation)
		if b.Orientation != heading || b.Position != a.Position.Move(heading) {
			return fmt.Errorf("%w: step %d at %v%v does not follow %v%v via %q", ErrDiscontinuous, i+1, b.Position, b.Orientation, a.Position, a.Orientation, a.Next)
		}
	}
	return nil
}

// accumulate rewrites Cost from index from onward as a running sum seeded by
// the step before it.
func (s Segment) accumulate(from int) {
	for i := from; i < len(s); i++ {
		prev := 0.0
		if i > 0 {
			prev = s[i-1].Cost
		}
		s[i].Cost = prev + s[i].Arrive.Cost()
	}
}

// Accumulated returns a copy of s with Cost recomputed as a running sum.
func (s Segment) Accumulated() Segment {
	out := s.Clone()
	out.accumulate(0)
	return out
}
