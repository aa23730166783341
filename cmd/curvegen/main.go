// curvegen samples a parametric curve over a generated control point set
// and writes the result as YAML.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/hoopshot/internal/logger"
	"github.com/Faultbox/hoopshot/pkg/curve"
	"github.com/Faultbox/hoopshot/pkg/math"
)

// output is the YAML document written to stdout.
type output struct {
	Family        string      `yaml:"family"`
	Quadratic     bool        `yaml:"quadratic,omitempty"`
	ControlPoints []math.Vec3 `yaml:"control_points"`
	Samples       []math.Vec3 `yaml:"samples"`
	Walk          []math.Vec3 `yaml:"walk,omitempty"`
}

// Endpoints of the drift path.
var (
	driftStart = math.Vec3{X: -50, Y: 20, Z: -8}
	driftEnd   = math.Vec3{X: 50, Y: -20, Z: -4}
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("curvegen", flag.ContinueOnError)
	family := fs.String("family", "bezier", "Curve family: bezier, catmull-rom or hermite")
	quadratic := fs.Bool("quadratic", false, "Generate quadratic segments (bezier only)")
	shape := fs.String("shape", "circle", "Control points: circle, drift or random")
	points := fs.Int("points", 12, "Number of control points")
	radius := fs.Float64("radius", 0.5, "Circle radius or random extent")
	samples := fs.Int("samples", 20, "Samples per segment")
	seed := fs.Uint64("seed", 1, "Random seed")
	walk := fs.Int("walk", 0, "Also emit N positions of a wrapping walk along the curve")
	debug := fs.Bool("debug", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := "warn"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		return err
	}
	defer logger.Sync()

	fam, err := curve.ParseFamily(*family)
	if err != nil {
		return err
	}

	cp, err := controlPoints(*shape, *points, float32(*radius), *seed)
	if err != nil {
		return err
	}

	c := curve.New(fam)
	c.SetControlPoints(cp)
	if *quadratic {
		err = c.GenerateQuadraticCurve(*samples)
	} else {
		err = c.GenerateCurve(*samples)
	}
	if err != nil {
		return err
	}
	logger.Debug("curve generated",
		zap.Stringer("family", fam),
		zap.Int("controlPoints", len(cp)),
		zap.Int("samples", c.NumPoints()))

	out := output{
		Family:        fam.String(),
		Quadratic:     *quadratic,
		ControlPoints: cp,
		Samples:       c.Points(),
	}

	if *walk > 0 && c.NumPoints() > 0 {
		f := curve.NewFollower(c)
		for i := 0; i < *walk; i++ {
			p, err := f.Next()
			if err != nil {
				return err
			}
			out.Walk = append(out.Walk, p)
		}
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

func controlPoints(shape string, n int, radius float32, seed uint64) ([]math.Vec3, error) {
	if n < 0 {
		return nil, fmt.Errorf("-points must not be negative, got %d", n)
	}
	switch shape {
	case "circle":
		return curve.Circle(n, radius), nil
	case "drift":
		return curve.Drift(driftStart, driftEnd, n), nil
	case "random":
		if radius <= 0 {
			return nil, fmt.Errorf("random shape needs a positive -radius, got %v", radius)
		}
		return curve.Random(n, radius, rand.New(rand.NewPCG(seed, seed)))
	}
	return nil, fmt.Errorf("unknown shape %q", shape)
}
