package curve

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hoopshot/pkg/math"
)

// Family selects the spline family a Curve evaluates.
type Family uint8

const (
	Bezier Family = iota
	CatmullRom
	Hermite
)

var familyNames = [...]string{
	Bezier:     "bezier",
	CatmullRom: "catmull-rom",
	Hermite:    "hermite",
}

func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", uint8(f))
}

// ParseFamily returns the family with the given name (case-insensitive).
func ParseFamily(name string) (Family, error) {
	for i, n := range familyNames {
		if strings.EqualFold(name, n) {
			return Family(i), nil
		}
	}
	return 0, fmt.Errorf("unknown curve family %q", name)
}

// Basis is the 4x4 coefficient matrix of a curve family, column-major.
// Column c holds the coefficients applied to the c-th power term of
// [t³, t², t, 1]; row r is the blending weight of geometry column r.
type Basis struct {
	M mgl32.Mat4
}

var (
	bezierBasis = Basis{mgl32.Mat4{
		-1, 3, -3, 1,
		3, -6, 3, 0,
		-3, 3, 0, 0,
		1, 0, 0, 0,
	}}

	// Twice the textbook Catmull-Rom matrix; Curve halves every sample.
	catmullRomBasis = Basis{mgl32.Mat4{
		-1, 3, -3, 1,
		2, -5, 4, -1,
		-1, 0, 1, 0,
		0, 2, 0, 0,
	}}

	hermiteBasis = Basis{mgl32.Mat4{
		2, -2, 1, 1,
		-3, 3, -2, -1,
		0, 0, 1, 0,
		1, 0, 0, 0,
	}}
)

// Basis returns the coefficient matrix for f.
func (f Family) Basis() Basis {
	switch f {
	case CatmullRom:
		return catmullRomBasis
	case Hermite:
		return hermiteBasis
	default:
		return bezierBasis
	}
}

// Weights returns M·[t³, t², t, 1]ᵀ, the blending weight of each geometry column.
func (b Basis) Weights(t float32) mgl32.Vec4 {
	return b.M.Mul4x1(mgl32.Vec4{t * t * t, t * t, t, 1})
}

// Evaluate returns G·M·[t³, t², t, 1]ᵀ where G packs g as columns.
func Evaluate(b Basis, g [4]math.Vec3, t float32) math.Vec3 {
	G := mgl32.Mat3x4{
		g[0].X, g[0].Y, g[0].Z,
		g[1].X, g[1].Y, g[1].Z,
		g[2].X, g[2].Y, g[2].Z,
		g[3].X, g[3].Y, g[3].Z,
	}
	return math.FromMGL(G.Mul4x1(b.Weights(t)))
}

// geometry packs the four columns a segment starting at i blends.
func (f Family) geometry(cp []math.Vec3, i int) [4]math.Vec3 {
	if f == Hermite {
		p0, p1 := cp[i], cp[i+3]
		return [4]math.Vec3{p0, p1, cp[i+1].Sub(p0), cp[i+2].Sub(p1)}
	}
	return [4]math.Vec3{cp[i], cp[i+1], cp[i+2], cp[i+3]}
}
