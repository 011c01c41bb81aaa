package scene

import (
	"github.com/osuushi/tricollide/internal"
	"github.com/pkg/errors"
)

type Containment struct {
	Point    string
	Triangle string
	Inside   bool
}

type Collision struct {
	First, Second string
	Collide       bool
}

// Results of evaluating a scene. Containment lists every point against every
// triangle, in scene order. Collisions lists the scene's explicit pairs if it
// has any, and otherwise every pair i < j in index order.
type Report struct {
	Containment []Containment
	Collisions  []Collision
}

func (r *Report) Colliding(name string) bool {
	for _, c := range r.Collisions {
		if c.Collide && (c.First == name || c.Second == name) {
			return true
		}
	}
	return false
}

func (r *Report) Inside(point string) bool {
	for _, c := range r.Containment {
		if c.Inside && c.Point == point {
			return true
		}
	}
	return false
}

func (s *Scene) Evaluate(opts internal.CollisionOptions) (*Report, error) {
	report := &Report{}
	list := s.TriangleList()

	for _, p := range s.Points {
		inside := make(map[int]bool)
		for _, i := range list.Containing(p.At) {
			inside[i] = true
		}
		for i, t := range s.Triangles {
			report.Containment = append(report.Containment, Containment{
				Point:    p.Name,
				Triangle: t.Name,
				Inside:   inside[i],
			})
		}
	}

	if len(s.Pairs) > 0 {
		for _, pair := range s.Pairs {
			i, j := s.triangleIndex(pair[0]), s.triangleIndex(pair[1])
			if i < 0 || j < 0 {
				return nil, errors.Errorf("pair %s-%s: unknown triangle", pair[0], pair[1])
			}
			collide, err := internal.TrianglesCollide(list[i], list[j], opts)
			if err != nil {
				return nil, errors.Wrapf(err, "pair %s-%s", pair[0], pair[1])
			}
			report.Collisions = append(report.Collisions, Collision{pair[0], pair[1], collide})
		}
		return report, nil
	}

	pairs, err := list.CollidingPairs(opts)
	if err != nil {
		return nil, err
	}
	colliding := make(map[internal.Pair]bool, len(pairs))
	for _, pair := range pairs {
		colliding[pair] = true
	}
	for i := range s.Triangles {
		for j := i + 1; j < len(s.Triangles); j++ {
			report.Collisions = append(report.Collisions, Collision{
				First:   s.Triangles[i].Name,
				Second:  s.Triangles[j].Name,
				Collide: colliding[internal.Pair{I: i, J: j}],
			})
		}
	}
	return report, nil
}
