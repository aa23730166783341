// Package curve generates dense polylines from parametric spline control points.
//
// A Curve evaluates its family's basis matrix segment by segment: cubic
// families consume four control points per segment and advance by three, so
// consecutive segments share an endpoint. Bezier curves can also be generated
// as quadratic segments of three points advancing by two.
//
// Control sets too short for a single segment produce an empty curve, not an
// error.
package curve

import (
	"errors"
	"fmt"

	"github.com/Faultbox/hoopshot/pkg/math"
)

var (
	// ErrIndexOutOfRange is returned when a sample index is outside [0, NumPoints).
	ErrIndexOutOfRange = errors.New("curve point index out of range")

	// ErrInvalidSampleCount is returned when samples per segment is below 1.
	ErrInvalidSampleCount = errors.New("samples per segment must be at least 1")

	// ErrQuadraticUnsupported is returned by GenerateQuadraticCurve on non-Bezier curves.
	ErrQuadraticUnsupported = errors.New("quadratic generation is only defined for bezier curves")
)

// Curve holds a control-point set and the samples generated from it.
type Curve struct {
	family        Family
	basis         Basis
	controlPoints []math.Vec3
	points        []math.Vec3
}

// New creates an empty curve of the given family.
func New(family Family) *Curve {
	return &Curve{
		family: family,
		basis:  family.Basis(),
	}
}

// Family returns the curve family.
func (c *Curve) Family() Family {
	return c.family
}

// SetControlPoints replaces the control points. The slice is copied.
// Existing samples are kept until the next generate call.
func (c *Curve) SetControlPoints(points []math.Vec3) {
	c.controlPoints = append(c.controlPoints[:0], points...)
}

// ControlPoints returns a copy of the control points.
func (c *Curve) ControlPoints() []math.Vec3 {
	return append([]math.Vec3(nil), c.controlPoints...)
}

// CubicSegments returns how many cubic segments n control points produce.
func CubicSegments(n int) int {
	if n < 4 {
		return 0
	}
	return (n-4)/3 + 1
}

// QuadraticSegments returns how many quadratic segments n control points produce.
func QuadraticSegments(n int) int {
	if n < 3 {
		return 0
	}
	return (n-3)/2 + 1
}

// GenerateCurve samples every cubic segment at t = k/samplesPerSegment for
// k = 0..samplesPerSegment, replacing any previous samples.
func (c *Curve) GenerateCurve(samplesPerSegment int) error {
	if samplesPerSegment < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleCount, samplesPerSegment)
	}

	cp := c.controlPoints
	c.points = make([]math.Vec3, 0, CubicSegments(len(cp))*(samplesPerSegment+1))

	for i := 0; i < len(cp)-3; i += 3 {
		g := c.family.geometry(cp, i)
		for k := 0; k <= samplesPerSegment; k++ {
			t := float32(k) / float32(samplesPerSegment)
			p := Evaluate(c.basis, g, t)
			if c.family == CatmullRom {
				p = p.Scale(0.5)
			}
			c.points = append(c.points, p)
		}
	}
	return nil
}

// GenerateQuadraticCurve samples quadratic Bezier segments of three control
// points (start, control, end) advancing two points per segment. Previous
// samples are replaced.
func (c *Curve) GenerateQuadraticCurve(samplesPerSegment int) error {
	if c.family != Bezier {
		return fmt.Errorf("%w: family %s", ErrQuadraticUnsupported, c.family)
	}
	if samplesPerSegment < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleCount, samplesPerSegment)
	}

	cp := c.controlPoints
	c.points = make([]math.Vec3, 0, QuadraticSegments(len(cp))*(samplesPerSegment+1))

	for i := 0; i < len(cp)-2; i += 2 {
		p0, p1, p2 := cp[i], cp[i+1], cp[i+2]
		for k := 0; k <= samplesPerSegment; k++ {
			t := float32(k) / float32(samplesPerSegment)
			c.points = append(c.points, Quadratic(p0, p1, p2, t))
		}
	}
	return nil
}

// Quadratic evaluates (1-t)²·p0 + 2(1-t)t·p1 + t²·p2.
func Quadratic(p0, p1, p2 math.Vec3, t float32) math.Vec3 {
	u := 1 - t
	return p0.Scale(u * u).Add(p1.Scale(2 * u * t)).Add(p2.Scale(t * t))
}

// NumPoints returns the number of generated samples (0 before generation).
func (c *Curve) NumPoints() int {
	return len(c.points)
}

// Point returns sample i.
func (c *Curve) Point(i int) (math.Vec3, error) {
	if i < 0 || i >= len(c.points) {
		return math.Vec3{}, fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, i, len(c.points))
	}
	return c.points[i], nil
}

// Points returns a copy of all samples.
func (c *Curve) Points() []math.Vec3 {
	return append([]math.Vec3(nil), c.points...)
}
