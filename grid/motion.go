package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Orientation is one of the four cardinal headings.
type Orientation int

const (
	// Up moves toward row 0.
	Up Orientation = iota
	// Left moves toward column 0.
	Left
	// Down moves toward the last row.
	Down
	// Right moves toward the last column.
	Right
)

// NumOrientations is the size of the heading ring.
const NumOrientations = 4

// movement maps each Orientation to its unit (row, col) step.
var movement = [NumOrientations]Position{
	{-1, 0}, // Up
	{0, -1}, // Left
	{1, 0},  // Down
	{0, 1},  // Right
}

var (
	orientationGlyphs = [NumOrientations]string{"^", "<", "v", ">"}
	orientationNames  = [NumOrientations]string{"up", "left", "down", "right"}
)

// Orientations returns all headings in their fixed order.
func Orientations() []Orientation {
	return []Orientation{Up, Left, Down, Right}
}

// Valid reports whether o is one of the four headings.
func (o Orientation) Valid() bool {
	return o >= Up && o <= Right
}

// Delta returns the unit movement vector of o.
func (o Orientation) Delta() Position {
	return movement[o.normalize()]
}

// String returns the arrow glyph of o: ^ < v >.
func (o Orientation) String() string {
	if !o.Valid() {
		return "?"
	}
	return orientationGlyphs[o]
}

// Name returns the lower-case name of o, e.g. "up".
func (o Orientation) Name() string {
	if !o.Valid() {
		return fmt.Sprintf("orientation(%d)", int(o))
	}
	return orientationNames[o]
}

// ParseOrientation resolves a heading from its name (case-insensitive) or
// its numeric code 0..3.
func ParseOrientation(s string) (Orientation, error) {
	s = strings.TrimSpace(s)
	for i, name := range orientationNames {
		if strings.EqualFold(s, name) {
			return Orientation(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Orientation(n).Valid() {
		return Orientation(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}

func (o Orientation) normalize() Orientation {
	return ((o % NumOrientations) + NumOrientations) % NumOrientations
}

// Action is a relative move: the agent turns by the action's delta and then
// advances one cell.
type Action int

// NoAction marks an undefined action, e.g. the arrival action of the first
// step of a search or the next action of the final step.
const NoAction Action = -1

const (
	// TurnRight turns clockwise, then advances.
	TurnRight Action = iota
	// Forward keeps the heading and advances.
	Forward
	// TurnLeft turns counter-clockwise, then advances.
	TurnLeft
	// Reverse turns around, then advances.
	Reverse
)

var (
	actionDelta  = [NumOrientations]Orientation{-1, 0, 1, 2}
	actionCost   = [NumOrientations]float64{0.2, 0.1, 0.2, 0.4}
	actionGlyphs = [NumOrientations]string{"R", "#", "L", "B"}
)

// Actions returns the four actions in enumeration order. Greedy coverage
// relies on this order to break ties.
func Actions() []Action {
	return []Action{TurnRight, Forward, TurnLeft, Reverse}
}

// Defined reports whether a is one of the four real actions.
func (a Action) Defined() bool {
	return a >= TurnRight && a <= Reverse
}

// Cost returns the scalar cost of a; NoAction costs nothing.
func (a Action) Cost() float64 {
	if !a.Defined() {
		return 0
	}
	return actionCost[a]
}

// Apply returns the heading obtained by performing a while facing o.
// NoAction leaves the heading unchanged.
func (a Action) Apply(o Orientation) Orientation {
	if !a.Defined() {
		return o
	}
	return (o + actionDelta[a]).normalize()
}

// String returns the policy glyph of a: R # L B, or "" for NoAction.
func (a Action) String() string {
	if !a.Defined() {
		return ""
	}
	return actionGlyphs[a]
}

// ActionBetween returns the action that turns heading from into heading to.
func ActionBetween(from, to Orientation) Action {
	return Action((to - from + 1).normalize())
}
