package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/hoopshot/pkg/math"
)

const eps = 1e-5

func TestNewFirstPersonFacesNegativeZ(t *testing.T) {
	c := NewFirstPerson(DefaultConfig())

	assert.True(t, c.Front.ApproxEqual(math.Vec3{Z: -1}, eps), "front %v", c.Front)
	assert.True(t, c.Right.ApproxEqual(math.Vec3{X: 1}, eps), "right %v", c.Right)
	assert.True(t, c.Up.ApproxEqual(math.Vec3{Y: 1}, eps), "up %v", c.Up)
}

func TestHoldPosition(t *testing.T) {
	c := NewFirstPerson(DefaultConfig())

	got := c.HoldPosition()
	assert.True(t, got.ApproxEqual(math.Vec3{X: 0, Y: 4.5, Z: 8}, eps), "hold %v", got)
}

func TestLaunchDirection(t *testing.T) {
	c := NewFirstPerson(DefaultConfig())

	got := c.LaunchDirection(0.25)
	assert.InDelta(t, 1, got.Length(), eps)
	assert.Greater(t, got.Y, float32(0))
	assert.Less(t, got.Z, float32(0))
	assert.InDelta(t, 0.25, got.Y/-got.Z, eps)
}

func TestMoveIsClamped(t *testing.T) {
	c := NewFirstPerson(DefaultConfig())

	c.Move(Forward, 3)
	assert.True(t, c.Position.ApproxEqual(math.Vec3{X: 0, Y: 5, Z: 7}, eps), "after forward %v", c.Position)

	for i := 0; i < 50; i++ {
		c.Move(Forward, 1)
		c.Move(Right, 1)
	}
	assert.True(t, c.Position.ApproxEqual(math.Vec3{X: 10, Y: 5, Z: 0}, eps), "clamped %v", c.Position)

	for i := 0; i < 50; i++ {
		c.Move(Backward, 1)
		c.Move(Left, 1)
	}
	assert.True(t, c.Position.ApproxEqual(math.Vec3{X: -10, Y: 5, Z: 20}, eps), "clamped %v", c.Position)
}

func TestMoveVerticalBounds(t *testing.T) {
	c := NewFirstPerson(DefaultConfig())
	c.Look(0, 890) // straight up

	c.Move(Forward, 100)
	assert.InDelta(t, 10, c.Position.Y, 1e-3, "walk up is capped at +5")

	c.Move(Backward, 100)
	assert.InDelta(t, 3, c.Position.Y, 1e-3, "walk down is capped at -2")
}

func TestLookClampsPitch(t *testing.T) {
	c := NewFirstPerson(DefaultConfig())

	c.Look(0, 5000)
	assert.Equal(t, float32(89), c.Pitch)
	c.Look(0, -10000)
	assert.Equal(t, float32(-89), c.Pitch)

	c.Look(900, 890) // +90 yaw, back to level
	assert.InDelta(t, 0, c.Yaw, 1e-4)
	assert.True(t, c.Front.ApproxEqual(math.Vec3{X: 1}, eps), "front %v", c.Front)
}

func TestMovementString(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "unknown", Movement(42).String())
}
