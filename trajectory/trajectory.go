package trajectory

// Trajectory is the continuous, annotated path assembled from search
// segments. The zero value is empty and ready to use.
type Trajectory struct {
	steps Segment
	notes []Annotation
}

// Append splices seg onto t. When both are non-empty the first step of seg
// inherits the arrival action of t's last step, an Annotation with tag is
// recorded at the switch cell, and t's last step (the same cell) is dropped.
// An empty seg is a no-op. seg is copied; the caller keeps ownership.
func (t *Trajectory) Append(seg Segment, tag Tag) {
	if len(seg) == 0 {
		return
	}
	seg = seg.Clone()
	from := len(t.steps)
	if from > 0 {
		last := t.steps[from-1]
		seg[0].Arrive = last.Arrive
		t.notes = append(t.notes, Annotation{Position: seg[0].Position, Tag: tag})
		t.steps = t.steps[:from-1]
		from--
	}
	t.steps = append(t.steps, seg...)
	t.steps.accumulate(from)
}

// Len returns the number of steps.
func (t *Trajectory) Len() int { return len(t.steps) }

// Last returns the final step, if any.
func (t *Trajectory) Last() (Step, bool) {
	if len(t.steps) == 0 {
		return Step{}, false
	}
	return t.steps[len(t.steps)-1], true
}

// MarkLast overwrites the originating state of the final step.
// It is a no-op on an empty trajectory.
func (t *Trajectory) MarkLast(s State) {
	if n := len(t.steps); n > 0 {
		t.steps[n-1].State = s
	}
}

// Steps returns a copy of the merged steps.
func (t *Trajectory) Steps() Segment { return t.steps.Clone() }

// Annotations returns a copy of the strategy-switch annotations.
func (t *Trajectory) Annotations() []Annotation {
	out := make([]Annotation, len(t.notes))
	copy(out, t.notes)
	return out
}

// Cost sums the arrival action costs of the merged steps.
func (t *Trajectory) Cost() float64 { return t.steps.Cost() }

// Reset empties t, keeping its storage.
func (t *Trajectory) Reset() {
	t.steps = t.steps[:0]
	t.notes = t.notes[:0]
}
