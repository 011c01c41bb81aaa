package scene

import (
	"bytes"
	"embed"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/tricollide/internal"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(name string) *Scene {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	s, err := LoadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return s
}

const demoYAML = `
epsilon: 0
triangles:
  - name: t1
    points: [[3, 6], [6, 5], [6, 7]]
  - name: t2
    points: [[4, 2], [1, 5], [6, 4]]
  - name: t3
    points: [[3, 12], [9, 8], [9, 12]]
  - points: [[3, 10], [5, 9], [5, 13]]
points:
  - name: inside
    at: [5, 11]
  - at: [0, 0]
`

func TestLoadYAML(t *testing.T) {
	s, err := LoadYAML(strings.NewReader(demoYAML))
	require.NoError(t, err)

	require.Len(t, s.Triangles, 4)
	assert.Equal(t, "t4", s.Triangles[3].Name)
	assert.Equal(t, internal.Triangle{{4, 2}, {1, 5}, {6, 4}}, s.Triangles[1].Triangle())
	require.Len(t, s.Points, 2)
	assert.Equal(t, "p2", s.Points[1].Name)
	assert.Equal(t, internal.Point{5, 11}, s.Points[0].At)

	assert.Equal(t, internal.DefaultCollisionOptions(), s.CollisionOptions())
}

func TestLoadYAML_Options(t *testing.T) {
	s, err := LoadYAML(strings.NewReader(`
epsilon: -0.25
allow_reversed: false
on_boundary: false
triangles: []
`))
	require.NoError(t, err)
	assert.Equal(t, internal.CollisionOptions{
		Epsilon:       -0.25,
		AllowReversed: false,
		OnBoundary:    false,
	}, s.CollisionOptions())
}

func TestLoadYAML_Invalid(t *testing.T) {
	cases := map[string]string{
		"want 3 points": `
triangles:
  - name: quad
    points: [[0, 0], [1, 0], [1, 1], [0, 1]]
`,
		"duplicate triangle name": `
triangles:
  - name: a
    points: [[0, 0], [1, 0], [0, 1]]
  - name: a
    points: [[0, 0], [1, 0], [0, 1]]
`,
		"unknown triangle": `
triangles:
  - name: a
    points: [[0, 0], [1, 0], [0, 1]]
pairs:
  - [a, b]
`,
		"decoding scene": `
triangle: []
`,
	}
	for expected, doc := range cases {
		t.Run(expected, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), expected)
		})
	}
}

func TestWriteYAML(t *testing.T) {
	s, err := LoadYAML(strings.NewReader(demoYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteYAML(&buf))

	again, err := LoadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestLoadSVG(t *testing.T) {
	s := loadFixture("halves")
	require.Len(t, s.Triangles, 3)
	assert.Equal(t, "lower", s.Triangles[0].Name)
	assert.Equal(t, internal.Triangle{{100, 0}, {100, 100}, {0, 100}}, s.Triangles[1].Triangle())
	require.Len(t, s.Points, 2)
	assert.Equal(t, NamedPoint{Name: "edge", At: internal.Point{50, 50}}, s.Points[1])

	unnamed := loadFixture("unnamed")
	assert.Equal(t, "t2", unnamed.Triangles[1].Name)
	assert.Equal(t, "p1", unnamed.Points[0].Name)
}

func TestLoadSVG_NotATriangle(t *testing.T) {
	fixture, err := fixtures.Open("fixtures/square.svg")
	require.NoError(t, err)
	defer fixture.Close()

	_, err = LoadSVG(fixture)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `triangle "square": want 3 points, got 4`)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yml")
	require.NoError(t, os.WriteFile(path, []byte(demoYAML), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Triangles, 4)

	_, err = LoadFile(filepath.Join(dir, "scene.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "scene.txt")
	require.NoError(t, os.WriteFile(bad, []byte(demoYAML), 0o644))
	_, err = LoadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scene format")
}

func TestEvaluate(t *testing.T) {
	s, err := LoadYAML(strings.NewReader(demoYAML))
	require.NoError(t, err)

	report, err := s.Evaluate(s.CollisionOptions())
	require.NoError(t, err)

	require.Len(t, report.Containment, 8)
	assert.Equal(t, Containment{"inside", "t3", true}, report.Containment[2])
	assert.Equal(t, Containment{"inside", "t4", true}, report.Containment[3])
	assert.Equal(t, Containment{"inside", "t1", false}, report.Containment[0])
	for _, c := range report.Containment[4:] {
		assert.False(t, c.Inside, "%v", c)
	}

	require.Len(t, report.Collisions, 6)
	for _, c := range report.Collisions {
		expected := c.First == "t3" && c.Second == "t4"
		assert.Equal(t, expected, c.Collide, "%v", c)
	}
	assert.True(t, report.Colliding("t3"))
	assert.False(t, report.Colliding("t1"))
}

func TestEvaluate_Pairs(t *testing.T) {
	s, err := LoadYAML(strings.NewReader(demoYAML + `
pairs:
  - [t1, t2]
  - [t3, t4]
  - [t1, t3]
`))
	require.NoError(t, err)

	report, err := s.Evaluate(s.CollisionOptions())
	require.NoError(t, err)
	assert.Equal(t, []Collision{
		{"t1", "t2", false},
		{"t3", "t4", true},
		{"t1", "t3", false},
	}, report.Collisions)
}

func TestEvaluate_BoundaryModes(t *testing.T) {
	s := loadFixture("halves")

	report, err := s.Evaluate(s.CollisionOptions())
	require.NoError(t, err)
	assert.Equal(t, []Collision{
		{"lower", "upper", true},
		{"lower", "apart", false},
		{"upper", "apart", false},
	}, report.Collisions)
	assert.Equal(t, []Containment{
		{"corner", "lower", true},
		{"corner", "upper", false},
		{"corner", "apart", false},
		{"edge", "lower", true},
		{"edge", "upper", true},
		{"edge", "apart", false},
	}, report.Containment)

	opts := s.CollisionOptions()
	opts.OnBoundary = false
	report, err = s.Evaluate(opts)
	require.NoError(t, err)
	assert.False(t, report.Colliding("lower"))
}

func TestEvaluate_WindingError(t *testing.T) {
	s, err := LoadYAML(strings.NewReader(demoYAML))
	require.NoError(t, err)

	opts := s.CollisionOptions()
	opts.AllowReversed = false
	_, err = s.Evaluate(opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, internal.ErrWrongWinding))

	s.Pairs = [][2]string{{"t2", "t1"}}
	_, err = s.Evaluate(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pair t2-t1: first triangle")
}
