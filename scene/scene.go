// Package scene loads named triangles and points from YAML or SVG files and
// evaluates every containment and collision question between them.
package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/tricollide/internal"
	"github.com/pkg/errors"
)

type Scene struct {
	Options   `yaml:",inline"`
	Triangles []NamedTriangle `yaml:"triangles"`
	Points    []NamedPoint    `yaml:"points,omitempty"`

	// Pairs of triangle names to test. When empty, every pair is tested.
	Pairs [][2]string `yaml:"pairs,omitempty"`
}

// Collision settings carried by a scene file. Unset fields fall back to
// internal.DefaultCollisionOptions.
type Options struct {
	Epsilon       *float64 `yaml:"epsilon,omitempty"`
	AllowReversed *bool    `yaml:"allow_reversed,omitempty"`
	OnBoundary    *bool    `yaml:"on_boundary,omitempty"`
}

type NamedTriangle struct {
	Name string `yaml:"name,omitempty"`
	// Exactly three points. A slice rather than an array so that a wrong
	// count produces a readable error instead of a decoder failure.
	Points []internal.Point `yaml:"points"`
}

type NamedPoint struct {
	Name string         `yaml:"name,omitempty"`
	At   internal.Point `yaml:"at"`
}

func (t NamedTriangle) Triangle() internal.Triangle {
	return internal.Triangle{t.Points[0], t.Points[1], t.Points[2]}
}

// Load a scene, picking the format from the file extension.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening scene")
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".svg":
		return LoadSVG(f)
	default:
		return nil, errors.Errorf("unsupported scene format %q", ext)
	}
}

// Resolve the scene's collision options.
func (s *Scene) CollisionOptions() internal.CollisionOptions {
	opts := internal.DefaultCollisionOptions()
	if s.Epsilon != nil {
		opts.Epsilon = *s.Epsilon
	}
	if s.AllowReversed != nil {
		opts.AllowReversed = *s.AllowReversed
	}
	if s.OnBoundary != nil {
		opts.OnBoundary = *s.OnBoundary
	}
	return opts
}

func (s *Scene) TriangleList() internal.TriangleList {
	list := make(internal.TriangleList, len(s.Triangles))
	for i, t := range s.Triangles {
		list[i] = t.Triangle()
	}
	return list
}

func (s *Scene) triangleIndex(name string) int {
	for i, t := range s.Triangles {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// Fill in default names and check the scene is usable. Loaders call this, so
// a scene built by hand should too.
func (s *Scene) Validate() error {
	seen := make(map[string]struct{}, len(s.Triangles))
	for i := range s.Triangles {
		t := &s.Triangles[i]
		if t.Name == "" {
			t.Name = fmt.Sprintf("t%d", i+1)
		}
		if len(t.Points) != 3 {
			return errors.Errorf("triangle %q: want 3 points, got %d", t.Name, len(t.Points))
		}
		if _, ok := seen[t.Name]; ok {
			return errors.Errorf("duplicate triangle name %q", t.Name)
		}
		seen[t.Name] = struct{}{}
	}
	for i := range s.Points {
		if s.Points[i].Name == "" {
			s.Points[i].Name = fmt.Sprintf("p%d", i+1)
		}
	}
	for _, pair := range s.Pairs {
		for _, name := range pair {
			if _, ok := seen[name]; !ok {
				return errors.Errorf("pair %s-%s: unknown triangle %q", pair[0], pair[1], name)
			}
		}
	}
	return nil
}
