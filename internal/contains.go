package internal

// Point-in-triangle by edge signs. The point is inside (or on an edge) iff it
// is not strictly left of one edge and strictly right of another. That makes
// the test indifferent to the triangle's winding, so no normalization is
// needed first.
//
// Comparisons are exact against zero; there is no tolerance here. For a
// degenerate triangle, every point on the supporting line gives three zero
// areas and is reported inside, while every point off the line is outside.
func PointInTriangle(p Point, t Triangle) bool {
	d1 := SignedArea(p, t[0], t[1])
	d2 := SignedArea(p, t[1], t[2])
	d3 := SignedArea(p, t[2], t[0])

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func (t Triangle) ContainsPoint(p Point) bool {
	return PointInTriangle(p, t)
}
