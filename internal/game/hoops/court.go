package hoops

import (
	"github.com/Faultbox/hoopshot/internal/engine/collision"
	"github.com/Faultbox/hoopshot/pkg/math"
)

// Layout places the hoop on the court.
type Layout struct {
	HoopBase math.Vec3 `yaml:"hoop_base"`
}

// DefaultLayout puts the hoop on the floor in front of the starting camera.
func DefaultLayout() Layout {
	return Layout{
		HoopBase: math.Vec3{X: 0, Y: -10, Z: -15},
	}
}

// Volume is a named obstacle with the normal used to reflect the ball.
type Volume struct {
	Name   string
	Box    collision.AABB
	Normal math.Vec3
}

// Court holds the hoop collision volumes in world space.
type Court struct {
	Backboard collision.AABB
	Rim       collision.AABB
	Pole      collision.AABB
	ScoreZone collision.AABB
}

// Offsets from the hoop base, matched to the hoop model.
var (
	backboardLo = math.Vec3{X: -4.2, Y: 13, Z: 4}
	backboardHi = math.Vec3{X: 3, Y: 18.2, Z: 4}
	rimLo       = math.Vec3{X: -0.2, Y: 13.5, Z: 7}
	rimHi       = math.Vec3{X: 0.2, Y: 13.5, Z: 7}
	poleLo      = math.Vec3{X: -1, Y: 0, Z: 3}
	poleHi      = math.Vec3{X: 1, Y: 13, Z: 3.1}
	zoneLo      = math.Vec3{X: -1, Y: 15, Z: 3}
	zoneHi      = math.Vec3{X: -0.9, Y: 15, Z: 3.2}
)

// obstacleNormal is shared by every obstacle: the hoop faces +Z.
var obstacleNormal = math.Vec3{X: 0, Y: 0, Z: 1}

// NewCourt builds the court volumes for a layout.
func NewCourt(l Layout) Court {
	return Court{
		Backboard: collision.Offset(l.HoopBase, backboardLo, backboardHi),
		Rim:       collision.Offset(l.HoopBase, rimLo, rimHi),
		Pole:      collision.Offset(l.HoopBase, poleLo, poleHi),
		ScoreZone: collision.Offset(l.HoopBase, zoneLo, zoneHi),
	}
}

// HoopCenter is the target of assisted throws.
func (c Court) HoopCenter() math.Vec3 {
	return c.ScoreZone.Center()
}

// Obstacles returns the volumes the ball bounces off, in test order.
func (c Court) Obstacles() []Volume {
	return []Volume{
		{Name: "backboard", Box: c.Backboard, Normal: obstacleNormal},
		{Name: "rim", Box: c.Rim, Normal: obstacleNormal},
		{Name: "pole", Box: c.Pole, Normal: obstacleNormal},
	}
}
