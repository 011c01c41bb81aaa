package internal

import "github.com/pkg/errors"

// Triangle-triangle overlap by separating edges. Two convex polygons are
// disjoint iff some edge of one of them has every vertex of the other on its
// outer side. Both triangles are normalized to counterclockwise order first,
// so "outer" is always the right hand side of a directed edge, which is where
// SignedArea(start, end, p) goes negative.

type CollisionOptions struct {
	// Shifts the threshold for calling a vertex "outside" an edge. Positive
	// values make separation easier to find, negative values harder. Negative
	// values are allowed.
	Epsilon float64

	// Passed to NormalizeWinding for both triangles.
	AllowReversed bool

	// Selects the outside test. When set, a vertex is outside if its signed
	// area against the edge is < Epsilon, so with Epsilon = 0 triangles that
	// only touch are reported as colliding. When unset, <= Epsilon is used and
	// touching triangles are reported as separate.
	OnBoundary bool
}

func DefaultCollisionOptions() CollisionOptions {
	return CollisionOptions{
		Epsilon:       0,
		AllowReversed: true,
		OnBoundary:    true,
	}
}

// Is p outside the directed edge start->end?
func (o CollisionOptions) outside(start, end, p Point) bool {
	area := SignedArea(start, end, p)
	if o.OnBoundary {
		return area < o.Epsilon
	}
	return area <= o.Epsilon
}

// Does edge i of the owner triangle have all three vertices of the other
// triangle on its outer side?
func (o CollisionOptions) edgeSeparates(owner Triangle, i int, other Triangle) bool {
	start, end := owner.Edge(i)
	return o.outside(start, end, other[0]) &&
		o.outside(start, end, other[1]) &&
		o.outside(start, end, other[2])
}

// Report whether two triangles overlap. A *WindingError from normalizing
// either triangle aborts the test and is returned wrapped.
func TrianglesCollide(t1, t2 Triangle, opts CollisionOptions) (bool, error) {
	t1, err := NormalizeWinding(t1, opts.AllowReversed)
	if err != nil {
		return false, errors.Wrap(err, "first triangle")
	}
	t2, err = NormalizeWinding(t2, opts.AllowReversed)
	if err != nil {
		return false, errors.Wrap(err, "second triangle")
	}

	for i := 0; i < 3; i++ {
		if opts.edgeSeparates(t1, i, t2) {
			return false, nil
		}
		if opts.edgeSeparates(t2, i, t1) {
			return false, nil
		}
	}
	return true, nil
}
