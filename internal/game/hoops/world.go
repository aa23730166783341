package hoops

import (
	"github.com/Faultbox/hoopshot/internal/engine/camera"
	"github.com/Faultbox/hoopshot/internal/engine/input"
	"github.com/Faultbox/hoopshot/pkg/math"
)

// Guide configures the aiming curve drawn from the held ball to the hoop.
type Guide struct {
	Enabled bool    `yaml:"enabled"`
	Lift    float32 `yaml:"lift"`
	Samples int     `yaml:"samples"`
}

// DefaultGuide returns a shallow aiming curve, disabled.
func DefaultGuide() Guide {
	return Guide{
		Enabled: false,
		Lift:    3,
		Samples: 30,
	}
}

// Frame reports what happened during one GameState step.
type Frame struct {
	Index    int
	Ball     Snapshot
	Thrown   bool
	Assisted bool
	Scored   bool
	Collided bool
	Obstacle string
	Won      bool
	Score    int
	Flash    bool
	Guide    []math.Vec3 // nil unless the guide is enabled
}

// GameState is the complete mini-game state.
type GameState struct {
	Tuning Tuning
	Court  Court
	Guide  Guide
	Camera *camera.FirstPerson
	Ball   Projectile
	Score  ScoreState
	Flash  FlashState

	frame int
}

// NewGameState creates a game with the ball held in front of cam.
func NewGameState(t Tuning, layout Layout, guide Guide, cam *camera.FirstPerson) *GameState {
	g := &GameState{
		Tuning: t,
		Court:  NewCourt(layout),
		Guide:  guide,
		Camera: cam,
		Ball:   NewProjectile(t),
	}
	g.Ball.Hold(cam.HoldPosition())
	return g
}

// Step applies the frame's events in order, then advances the ball,
// scoring, obstacles, the win threshold and the flash by dt seconds.
func (g *GameState) Step(dt float32, events []input.Event) Frame {
	f := Frame{Index: g.frame}
	g.frame++

	for _, ev := range events {
		switch ev.Type {
		case input.EventMove:
			g.Camera.Move(ev.Direction, dt)
		case input.EventLook:
			g.Camera.Look(ev.DX, ev.DY)
		case input.EventThrow, input.EventAssistedThrow:
			g.Ball.Hold(g.Camera.HoldPosition())
			assisted := ev.Type == input.EventAssistedThrow
			if g.Ball.BeginThrow(assisted, g.Camera.HoldPosition(),
				g.Camera.LaunchDirection(g.Tuning.LaunchLift), g.Court.HoopCenter()) {
				f.Thrown = true
				f.Assisted = assisted
			}
		}
	}

	if g.Ball.Phase != PhaseAtRest {
		f.Ball = g.Ball.Step(dt)
		if g.Ball.Phase != PhaseAtRest {
			if f.Scored = g.Score.Check(&g.Ball, g.Court.ScoreZone); f.Scored {
				g.Ball.ApplySoftening(dt)
			}
			if v, hit := g.Ball.CheckCollision(g.Court.Obstacles()); hit {
				f.Collided = true
				f.Obstacle = v.Name
			}
		}
	}
	g.Ball.Hold(g.Camera.HoldPosition())

	if g.Score.Points >= g.Tuning.WinScore {
		g.Score.Reset()
		g.Flash.Start()
		f.Won = true
	}
	g.Flash.Advance(dt, g.Tuning.FlashDuration)

	landed, bounced := f.Ball.Landed, f.Ball.Bounced
	f.Ball = g.Ball.Snapshot()
	f.Ball.Landed, f.Ball.Bounced = landed, bounced
	f.Score = g.Score.Points
	f.Flash = g.Flash.Visible(g.Tuning.FlashRate)

	if g.Guide.Enabled {
		f.Guide = g.AimGuide()
	}
	return f
}

// AimGuide samples the aiming curve from the ball to the hoop.
func (g *GameState) AimGuide() []math.Vec3 {
	return guidedArc(g.Ball.Position, g.Court.HoopCenter(), g.Guide.Lift, g.Guide.Samples)
}

// FrameCount returns the number of steps taken.
func (g *GameState) FrameCount() int {
	return g.frame
}
