package internal

import "math"

// Twice the signed area of the triangle abc. Positive when a->b->c turns
// counterclockwise, negative when it turns clockwise, and zero when the points
// are collinear.
//
// No attempt is made to handle NaN or infinite coordinates. They propagate
// through the arithmetic like anywhere else.
func SignedArea(a, b, c Point) float64 {
	return (a[0]-c[0])*(b[1]-c[1]) - (b[0]-c[0])*(a[1]-c[1])
}

// Twice the signed area of the triangle, expanded over its vertices in
// declared order. This is the same quantity as SignedArea(t[0], t[1], t[2]),
// written as a determinant so that winding checks read straight off the
// vertex list.
func (t Triangle) SignedArea() float64 {
	return t[0][0]*(t[1][1]-t[2][1]) +
		t[1][0]*(t[2][1]-t[0][1]) +
		t[2][0]*(t[0][1]-t[1][1])
}

// Unsigned geometric area (not doubled).
func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea()) / 2
}

// A degenerate triangle has collinear vertices. Degenerate triangles are valid
// input everywhere; they simply have no inside.
func (t Triangle) IsDegenerate() bool {
	return t.SignedArea() == 0
}

func IsCCW(t Triangle) bool {
	return t.SignedArea() > 0
}

func IsCW(t Triangle) bool {
	return t.SignedArea() < 0
}
