package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel for errors.Is. Every *WindingError matches it.
var ErrWrongWinding = errors.New("triangle has wrong winding direction")

// Returned when a triangle is clockwise and reversal was not allowed.
type WindingError struct {
	Triangle Triangle
}

func (e *WindingError) Error() string {
	return fmt.Sprintf("%s: %s", ErrWrongWinding, e.Triangle)
}

func (e *WindingError) Is(target error) bool {
	return target == ErrWrongWinding
}

// Bring a triangle into counterclockwise (or degenerate) order.
//
// Triangles with non-negative signed area come back untouched. A clockwise
// triangle is reversed by swapping p1 and p3 if allowReversed is set, and
// rejected with a *WindingError otherwise. The input is never modified; the
// reversed triangle is a new value.
func NormalizeWinding(t Triangle, allowReversed bool) (Triangle, error) {
	if !(t.SignedArea() < 0) {
		return t, nil
	}
	if !allowReversed {
		return t, errors.WithStack(&WindingError{Triangle: t})
	}

	// Swapping p1 and p3 negates the area, so this only trips on broken
	// arithmetic.
	reversed := t.Reverse()
	if reversed.SignedArea() < 0 {
		return t, errors.WithStack(&WindingError{Triangle: reversed})
	}
	return reversed, nil
}
