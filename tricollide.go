// Exact 2D triangle predicates for Go.
//
// This package answers two questions about triangles in the plane: does a
// point lie inside a triangle, and do two triangles overlap. Both are decided
// purely from signs of areas, with no trigonometry and no allocation. Boundary
// contact is controlled explicitly with an epsilon and a boundary mode.
package tricollide

import "github.com/osuushi/tricollide/internal"

type Point = internal.Point
type Triangle = internal.Triangle
type TriangleList = internal.TriangleList
type Pair = internal.Pair
type CollisionOptions = internal.CollisionOptions
type WindingError = internal.WindingError

// Matches any *WindingError with errors.Is.
var ErrWrongWinding = internal.ErrWrongWinding

// Epsilon 0, clockwise triangles reversed, touching counts as colliding.
func DefaultCollisionOptions() CollisionOptions {
	return internal.DefaultCollisionOptions()
}

// Twice the signed area of abc. Positive for counterclockwise order.
func SignedArea(a, b, c Point) float64 {
	return internal.SignedArea(a, b, c)
}

// Is p inside t or on one of its edges? Works for either winding.
func PointInTriangle(p Point, t Triangle) bool {
	return internal.PointInTriangle(p, t)
}

// Return t in counterclockwise (or degenerate) order. A clockwise triangle is
// reversed when allowReversed is true, and is an error otherwise.
func NormalizeWinding(t Triangle, allowReversed bool) (Triangle, error) {
	return internal.NormalizeWinding(t, allowReversed)
}

// Do the triangles overlap, using DefaultCollisionOptions? Touching triangles
// count as overlapping.
func TrianglesCollide(t1, t2 Triangle) (bool, error) {
	return internal.TrianglesCollide(t1, t2, internal.DefaultCollisionOptions())
}

// Do the triangles overlap, with explicit tolerance and boundary handling?
//
// The error is always a wrapped *WindingError, and only occurs when
// opts.AllowReversed is false and one of the triangles is clockwise.
func TrianglesCollideWith(t1, t2 Triangle, opts CollisionOptions) (bool, error) {
	return internal.TrianglesCollide(t1, t2, opts)
}
