// Package render draws scenes as PNG images, and can print them inline in
// terminals that support it (iTerm only).
package render

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/tricollide/internal"
	"github.com/osuushi/tricollide/scene"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Padding around the scene so that edges and labels aren't clipped
const padding = 40

const pointRadius = 4

// Draw the scene onto a new context, scale pixels per unit. With a report,
// triangles involved in any collision are filled red and points inside any
// triangle are yellow. Without one, everything is drawn in neutral colors.
func Draw(s *scene.Scene, report *scene.Report, scale float64) *gg.Context {
	min, max := bounds(s)
	width := int(scale*(max.X()-min.X())) + padding*2
	height := int(scale*(max.Y()-min.Y())) + padding*2

	// The origin goes at the bottom left. This is done by hand rather than by
	// flipping the context so that labels come out upright.
	toScreen := func(p internal.Point) (float64, float64) {
		return padding + scale*(p.X()-min.X()),
			float64(height) - padding - scale*(p.Y()-min.Y())
	}

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFontFace(basicfont.Face7x13)
	c.SetLineWidth(2)

	for _, named := range s.Triangles {
		tri := named.Triangle()
		for i, p := range tri {
			x, y := toScreen(p)
			if i == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.ClosePath()
		if report != nil && report.Colliding(named.Name) {
			c.SetRGBA(0.8, 0, 0, 0.5)
		} else {
			c.SetRGBA(0, 0.5, 0, 0.5)
		}
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()

		cx, cy := toScreen(centroid(tri))
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(named.Name, cx, cy, 0.5, 0.5)
	}

	for _, named := range s.Points {
		x, y := toScreen(named.At)
		c.DrawCircle(x, y, pointRadius)
		if report != nil && report.Inside(named.Name) {
			c.SetRGB(1, 1, 0)
		} else {
			c.SetRGB(0.7, 0.7, 0.7)
		}
		c.Fill()
		c.DrawStringAnchored(named.Name, x+pointRadius+2, y-pointRadius-2, 0, 0)
	}
	return c
}

func SavePNG(c *gg.Context, path string) error {
	return errors.Wrap(c.SavePNG(path), "saving png")
}

// Print a PNG inline in the terminal.
func Cat(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}

func centroid(t internal.Triangle) internal.Point {
	return internal.Point{
		(t[0].X() + t[1].X() + t[2].X()) / 3,
		(t[0].Y() + t[1].Y() + t[2].Y()) / 3,
	}
}

// Bounding box of every triangle vertex and point. An empty scene gets a zero
// box at the origin.
func bounds(s *scene.Scene) (min, max internal.Point) {
	min, max = s.TriangleList().Bounds()
	for _, p := range s.Points {
		min = internal.Point{math.Min(min.X(), p.At.X()), math.Min(min.Y(), p.At.Y())}
		max = internal.Point{math.Max(max.X(), p.At.X()), math.Max(max.Y(), p.At.Y())}
	}
	if math.IsInf(min.X(), 1) {
		return internal.Point{}, internal.Point{}
	}
	return min, max
}
