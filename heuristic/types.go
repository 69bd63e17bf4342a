package heuristic

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind indicates a heuristic name or value that is not one of the
// four supported kinds.
var ErrUnknownKind = errors.New("heuristic: unknown kind")

// Kind selects the distance estimate used by Build.
type Kind int

const (
	// Manhattan is the 4-connected step distance.
	Manhattan Kind = iota
	// Chebyshev is the 8-connected step distance.
	Chebyshev
	// Horizontal is the row distance only; it favours sweeping along rows.
	Horizontal
	// Vertical is the column distance only; it favours sweeping along columns.
	Vertical
)

var kindNames = [...]string{"MANHATTAN", "CHEBYSHEV", "HORIZONTAL", "VERTICAL"}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{Manhattan, Chebyshev, Horizontal, Vertical}
}

// Valid reports whether k is a supported kind.
func (k Kind) Valid() bool {
	return k >= Manhattan && k <= Vertical
}

// String returns the upper-case name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("KIND(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
