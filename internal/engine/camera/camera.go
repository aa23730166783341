// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/hoopshot/pkg/math"
)

// Movement is a keyboard walk direction.
type Movement uint8

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

func (m Movement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Config holds first-person camera settings.
type Config struct {
	Position    math.Vec3 `yaml:"position"`
	Yaw         float32   `yaml:"yaw"`   // degrees; -90 looks down -Z
	Pitch       float32   `yaml:"pitch"` // degrees
	Speed       float32   `yaml:"speed"`
	Sensitivity float32   `yaml:"sensitivity"`

	// Walk bounds relative to the starting position.
	WalkRadius float32 `yaml:"walk_radius"` // X and Z
	WalkDown   float32 `yaml:"walk_down"`
	WalkUp     float32 `yaml:"walk_up"`

	// Where a held ball sits relative to the eye.
	HoldDistance float32 `yaml:"hold_distance"`
	HoldDrop     float32 `yaml:"hold_drop"`
}

// DefaultConfig returns the court-side starting camera.
func DefaultConfig() Config {
	return Config{
		Position:     math.Vec3{X: 0, Y: 5, Z: 10},
		Yaw:          -90,
		Pitch:        0,
		Speed:        1,
		Sensitivity:  0.1,
		WalkRadius:   10,
		WalkDown:     2,
		WalkUp:       5,
		HoldDistance: 2,
		HoldDrop:     0.5,
	}
}

const maxPitch = 89

// FirstPerson is a fly camera confined to a box around its start point.
type FirstPerson struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3
	Right    math.Vec3
	WorldUp  math.Vec3

	// Euler angles in degrees
	Yaw   float32
	Pitch float32

	cfg     Config
	initial math.Vec3
}

// NewFirstPerson creates a camera at cfg.Position.
func NewFirstPerson(cfg Config) *FirstPerson {
	c := &FirstPerson{
		Position: cfg.Position,
		WorldUp:  math.Vec3{X: 0, Y: 1, Z: 0},
		Yaw:      cfg.Yaw,
		Pitch:    math32.Max(-maxPitch, math32.Min(maxPitch, cfg.Pitch)),
		cfg:      cfg,
		initial:  cfg.Position,
	}
	c.updateVectors()
	return c
}

// updateVectors recomputes the basis from the Euler angles.
func (c *FirstPerson) updateVectors() {
	yaw := math.Radians(c.Yaw)
	pitch := math.Radians(c.Pitch)
	front := math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// Move walks the camera for dt seconds, clamped to the walk box.
func (c *FirstPerson) Move(dir Movement, dt float32) {
	step := c.cfg.Speed * dt
	p := c.Position

	switch dir {
	case Forward:
		p = p.Add(c.Front.Scale(step))
	case Backward:
		p = p.Sub(c.Front.Scale(step))
	case Left:
		p = p.Sub(c.Right.Scale(step))
	case Right:
		p = p.Add(c.Right.Scale(step))
	}

	lo := math.Vec3{X: -c.cfg.WalkRadius, Y: -c.cfg.WalkDown, Z: -c.cfg.WalkRadius}
	hi := math.Vec3{X: c.cfg.WalkRadius, Y: c.cfg.WalkUp, Z: c.cfg.WalkRadius}
	c.Position = p.Clamp(c.initial.Add(lo), c.initial.Add(hi))
}

// Look turns the camera by a mouse delta in pixels. Positive dy looks up.
func (c *FirstPerson) Look(dx, dy float32) {
	c.Yaw += dx * c.cfg.Sensitivity
	c.Pitch += dy * c.cfg.Sensitivity
	c.Pitch = math32.Max(-maxPitch, math32.Min(maxPitch, c.Pitch))
	c.updateVectors()
}

// HoldPosition returns where a ball carried by the player sits.
func (c *FirstPerson) HoldPosition() math.Vec3 {
	return c.Position.Add(c.Front.Scale(c.cfg.HoldDistance)).Sub(c.Up.Scale(c.cfg.HoldDrop))
}

// LaunchDirection returns the unit throw direction: front tilted up by lift.
func (c *FirstPerson) LaunchDirection(lift float32) math.Vec3 {
	return c.Front.Add(c.Up.Scale(lift)).Normalize()
}
