package scene

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/tricollide/internal"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg parser. It finds every <polygon>
// and <circle> element and reads them as triangles and points respectively.
// The element id, if any, becomes the name. Coordinates are taken as written,
// so y grows downward and the winding of every triangle is flipped compared
// to how it looks on screen. The default options reverse clockwise triangles,
// so this usually doesn't matter.
func LoadSVG(r io.Reader) (*Scene, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var s Scene
	for _, el := range root.FindAll("polygon") {
		points, err := parsePointList(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %q", el.Attributes["id"])
		}
		s.Triangles = append(s.Triangles, NamedTriangle{
			Name:   el.Attributes["id"],
			Points: points,
		})
	}

	for _, el := range root.FindAll("circle") {
		x, err := parseCoordinate(el.Attributes["cx"])
		if err != nil {
			return nil, errors.Wrapf(err, "circle %q", el.Attributes["id"])
		}
		y, err := parseCoordinate(el.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrapf(err, "circle %q", el.Attributes["id"])
		}
		s.Points = append(s.Points, NamedPoint{
			Name: el.Attributes["id"],
			At:   internal.Point{x, y},
		})
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Parse an svg points attribute of the form "x1,y1 x2,y2 ...".
func parsePointList(attr string) ([]internal.Point, error) {
	fields := strings.Fields(attr)
	points := make([]internal.Point, 0, len(fields))
	for _, field := range fields {
		parts := strings.Split(field, ",")
		if len(parts) != 2 {
			return nil, errors.Errorf("invalid point string %q", field)
		}
		x, err := parseCoordinate(parts[0])
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(parts[1])
		if err != nil {
			return nil, err
		}
		points = append(points, internal.Point{x, y})
	}
	return points, nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid coordinate %q", s)
	}
	return v, nil
}
