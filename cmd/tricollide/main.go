package main

import (
	"embed"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/tricollide/dbg"
	"github.com/osuushi/tricollide/internal"
	"github.com/osuushi/tricollide/render"
	"github.com/osuushi/tricollide/scene"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for scene files. The demo command reproduces the
// classic sample run: three points against one triangle, then three triangle
// pairs.

//go:embed demo
var demoScenes embed.FS

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

type cli struct {
	out    io.Writer
	logger *log.Logger
	au     aurora.Aurora

	noColor       bool
	debug         bool
	epsilon       float64
	epsilonSet    bool
	exclusive     bool
	strictWinding bool

	file    string
	outPath string
	scale   float64
	inline  bool
}

func run(args []string, stdout, stderr io.Writer) error {
	c := &cli{out: stdout}
	c.logger = log.NewWithOptions(stderr, log.Options{Prefix: "tricollide"})

	app := kingpin.New("tricollide", "Point-in-triangle and triangle collision checks.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.Flag("no-color", "Disable colored output.").BoolVar(&c.noColor)
	app.Flag("debug", "Log every triangle and the parsed scene.").BoolVar(&c.debug)

	demo := app.Command("demo", "Run the built in sample checks.")

	eval := app.Command("eval", "Evaluate a YAML or SVG scene.")
	c.sceneFlags(eval)
	eval.Arg("file", "Scene file (.yaml, .yml or .svg).").Required().ExistingFileVar(&c.file)

	draw := app.Command("render", "Render a scene to PNG.")
	c.sceneFlags(draw)
	draw.Arg("file", "Scene file (.yaml, .yml or .svg).").Required().ExistingFileVar(&c.file)
	draw.Flag("out", "Output PNG path.").Short('o').Default("scene.png").StringVar(&c.outPath)
	draw.Flag("scale", "Pixels per scene unit.").Default("40").Float64Var(&c.scale)
	draw.Flag("imgcat", "Also print the image inline (iTerm only).").BoolVar(&c.inline)

	convert := app.Command("convert", "Print a scene as YAML.")
	convert.Arg("file", "Scene file (.yaml, .yml or .svg).").Required().ExistingFileVar(&c.file)

	command, err := app.Parse(args)
	if err != nil {
		c.logger.Error("invalid arguments", "err", err)
		return err
	}

	c.au = aurora.NewAurora(!c.noColor)
	if c.debug {
		c.logger.SetLevel(log.DebugLevel)
	}

	switch command {
	case demo.FullCommand():
		err = c.runDemo()
	case eval.FullCommand():
		err = c.runEval()
	case draw.FullCommand():
		err = c.runRender()
	case convert.FullCommand():
		err = c.runConvert()
	}
	if err != nil {
		c.logger.Error("failed", "command", command, "err", err)
	}
	return err
}

func (c *cli) sceneFlags(cmd *kingpin.CmdClause) {
	cmd.Flag("epsilon", "Boundary tolerance for collisions. Overrides the scene.").
		Action(func(*kingpin.ParseContext) error {
			c.epsilonSet = true
			return nil
		}).
		Float64Var(&c.epsilon)
	cmd.Flag("exclusive", "Treat touching triangles as separate.").BoolVar(&c.exclusive)
	cmd.Flag("strict-winding", "Reject clockwise triangles instead of reversing them.").BoolVar(&c.strictWinding)
}

// Scene options, overridden by whatever flags were given.
func (c *cli) options(s *scene.Scene) internal.CollisionOptions {
	opts := s.CollisionOptions()
	if c.epsilonSet {
		opts.Epsilon = c.epsilon
	}
	if c.exclusive {
		opts.OnBoundary = false
	}
	if c.strictWinding {
		opts.AllowReversed = false
	}
	return opts
}

func (c *cli) load(path string) (*scene.Scene, error) {
	s, err := scene.LoadFile(path)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("loaded scene", "path", path, "scene", pretty.Sprint(s))
	for _, t := range s.Triangles {
		tri := t.Triangle()
		c.logger.Debug("triangle",
			"name", t.Name,
			"debug", dbg.Name(tri),
			"signedArea", tri.SignedArea(),
			"ccw", internal.IsCCW(tri),
		)
	}
	return s, nil
}

func (c *cli) evaluate(s *scene.Scene, opts internal.CollisionOptions) (*scene.Report, error) {
	c.logger.Debug("evaluating",
		"epsilon", opts.Epsilon,
		"allowReversed", opts.AllowReversed,
		"onBoundary", opts.OnBoundary,
	)
	return s.Evaluate(opts)
}

func (c *cli) runDemo() error {
	for _, name := range []string{"demo/points.yaml", "demo/collisions.yaml"} {
		f, err := demoScenes.Open(name)
		if err != nil {
			return errors.Wrap(err, "opening demo scene")
		}
		s, err := scene.LoadYAML(f)
		f.Close()
		if err != nil {
			return errors.Wrapf(err, "loading %s", name)
		}
		report, err := c.evaluate(s, s.CollisionOptions())
		if err != nil {
			return err
		}
		c.printReport(report)
	}
	return nil
}

func (c *cli) runEval() error {
	s, err := c.load(c.file)
	if err != nil {
		return err
	}
	report, err := c.evaluate(s, c.options(s))
	if err != nil {
		return err
	}
	c.printReport(report)
	return nil
}

func (c *cli) runRender() error {
	s, err := c.load(c.file)
	if err != nil {
		return err
	}
	report, err := c.evaluate(s, c.options(s))
	if err != nil {
		return err
	}
	if err := render.SavePNG(render.Draw(s, report, c.scale), c.outPath); err != nil {
		return err
	}
	c.logger.Info("wrote image", "path", c.outPath)
	if c.inline {
		render.Cat(c.outPath, c.out)
	}
	return nil
}

func (c *cli) runConvert() error {
	s, err := c.load(c.file)
	if err != nil {
		return err
	}
	return s.WriteYAML(c.out)
}

func (c *cli) printReport(report *scene.Report) {
	for _, r := range report.Containment {
		verdict := c.au.Red("is not")
		if r.Inside {
			verdict = c.au.Green("is")
		}
		fmt.Fprintf(c.out, "Point %s %s in triangle %s\n", r.Point, verdict, r.Triangle)
	}
	for _, r := range report.Collisions {
		verdict := c.au.Red("do not")
		if r.Collide {
			verdict = c.au.Green("do")
		}
		fmt.Fprintf(c.out, "Triangles %s and %s %s collide\n", r.First, r.Second, verdict)
	}
}
