package internal

import (
	"math"

	"github.com/pkg/errors"
)

type TriangleList []Triangle

// Pair of indexes into a TriangleList, with I < J.
type Pair struct {
	I, J int
}

// Every pair of triangles in the list that collide, in index order. This is a
// plain all-pairs sweep; the list is expected to be small.
func (list TriangleList) CollidingPairs(opts CollisionOptions) ([]Pair, error) {
	var pairs []Pair
	for i := range list {
		for j := i + 1; j < len(list); j++ {
			collide, err := TrianglesCollide(list[i], list[j], opts)
			if err != nil {
				return nil, errors.Wrapf(err, "pair %d-%d", i, j)
			}
			if collide {
				pairs = append(pairs, Pair{i, j})
			}
		}
	}
	return pairs, nil
}

// Indexes of the triangles that contain p, including on their edges.
func (list TriangleList) Containing(p Point) []int {
	var result []int
	for i, t := range list {
		if PointInTriangle(p, t) {
			result = append(result, i)
		}
	}
	return result
}

// Bounding box over every vertex in the list. An empty list gives an inverted
// infinite box.
func (list TriangleList) Bounds() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, t := range list {
		for _, p := range t {
			min, max = extend(min, max, p)
		}
	}
	return min, max
}
