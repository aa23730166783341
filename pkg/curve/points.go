package curve

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/Faultbox/hoopshot/pkg/math"
)

// Circle returns n control points evenly spaced on a circle of the given
// radius in the XY plane, starting on +X.
func Circle(n int, radius float32) []math.Vec3 {
	points := make([]math.Vec3, 0, max(n, 0))
	for i := 0; i < n; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(n)
		points = append(points, math.Vec3{
			X: radius * math32.Cos(angle),
			Y: radius * math32.Sin(angle),
		})
	}
	return points
}

// Drift returns n points strictly between start and end, bowed upward by
// up to 2 units and pushed out in Z by a cosine of amplitude 1.
func Drift(start, end math.Vec3, n int) []math.Vec3 {
	points := make([]math.Vec3, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		t := float32(i) / float32(n+1)
		p := start.Lerp(end, t)
		p.Y += math32.Sin(t*math32.Pi) * 2
		p.Z += math32.Cos(t * math32.Pi)
		points = append(points, p)
	}
	return points
}

// randomAttempts bounds the draws per requested point in Random.
const randomAttempts = 64

// ErrTooFewDistinct is returned by Random when the extent cannot yield the
// requested number of distinct points.
var ErrTooFewDistinct = errors.New("extent too small for distinct random points")

// Random returns n distinct points with X and Y uniform in [-extent, extent)
// and Z = 0. It gives up with ErrTooFewDistinct after 64 draws per point.
func Random(n int, extent float32, rng *rand.Rand) ([]math.Vec3, error) {
	points := make([]math.Vec3, 0, max(n, 0))
	seen := make(map[math.Vec3]struct{}, max(n, 0))
	for draws := 0; len(points) < n; draws++ {
		if draws >= n*randomAttempts {
			return nil, fmt.Errorf("%w: %d of %d within %v", ErrTooFewDistinct, len(points), n, extent)
		}
		p := math.Vec3{
			X: (rng.Float32()*2 - 1) * extent,
			Y: (rng.Float32()*2 - 1) * extent,
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, p)
	}
	return points, nil
}
