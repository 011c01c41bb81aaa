package internal

import "fmt"

// Points and triangles are plain values. Nothing in this package keeps a
// reference to a caller's triangle, and nothing ever modifies one in place.
// Operations that need a different vertex order build a new value.

type Point [2]float64

func (p Point) X() float64 { return p[0] }
func (p Point) Y() float64 { return p[1] }

func (p Point) Add(v Point) Point {
	return Point{p[0] + v[0], p[1] + v[1]}
}

func (p Point) Sub(v Point) Point {
	return Point{p[0] - v[0], p[1] - v[1]}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p[0], p[1])
}

// Vertex order matters. It determines the winding, and edge i always runs
// from vertex i to vertex i+1 (mod 3).
type Triangle [3]Point

func (t Triangle) P1() Point { return t[0] }
func (t Triangle) P2() Point { return t[1] }
func (t Triangle) P3() Point { return t[2] }

// Directed edge i of the triangle.
func (t Triangle) Edge(i int) (start, end Point) {
	return t[CircularIndex(i, 3)], t[CircularIndex(i+1, 3)]
}

// Swap the first and third vertices. This negates the signed area while
// keeping p2 in place.
func (t Triangle) Reverse() Triangle {
	return Triangle{t[2], t[1], t[0]}
}

func (t Triangle) Translate(v Point) Triangle {
	return Triangle{t[0].Add(v), t[1].Add(v), t[2].Add(v)}
}

// Axis aligned bounding box of the vertices.
func (t Triangle) Bounds() (min, max Point) {
	min, max = t[0], t[0]
	for _, p := range t[1:] {
		min, max = extend(min, max, p)
	}
	return min, max
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{%s, %s, %s}", t[0], t[1], t[2])
}

func extend(min, max, p Point) (Point, Point) {
	for axis := 0; axis < 2; axis++ {
		if p[axis] < min[axis] {
			min[axis] = p[axis]
		}
		if p[axis] > max[axis] {
			max[axis] = p[axis]
		}
	}
	return min, max
}
