// Package hoops implements the basketball mini-game simulation: a single
// ball thrown from the player's camera, either freely under gravity or
// along a guided Bezier arc toward the hoop, bouncing off the floor and
// the hoop structure, and scoring when it drops through the score zone.
//
// All state lives in GameState and advances once per frame with an
// explicit time step and the frame's input events.
package hoops

import (
	"errors"
	"fmt"
)

// Tuning holds the physical and gameplay constants of a session.
// Values are fixed for the lifetime of a GameState.
type Tuning struct {
	Gravity     float32 `yaml:"gravity"`
	LaunchSpeed float32 `yaml:"launch_speed"`
	LaunchLift  float32 `yaml:"launch_lift"`
	BallRadius  float32 `yaml:"ball_radius"`

	GroundY        float32 `yaml:"ground_y"`
	GroundBounce   float32 `yaml:"ground_bounce"`
	GroundFriction float32 `yaml:"ground_friction"`
	RestSpeed      float32 `yaml:"rest_speed"`

	ObstacleDamping float32 `yaml:"obstacle_damping"`
	ObstacleNudge   float32 `yaml:"obstacle_nudge"`

	ArcSpeed       float32 `yaml:"arc_speed"` // progress per second
	ArcLift        float32 `yaml:"arc_lift"`
	ArcSamples     int     `yaml:"arc_samples"`
	ArcExitDamping float32 `yaml:"arc_exit_damping"`

	SoftenFactor   float32 `yaml:"soften_factor"`
	SoftenDuration float32 `yaml:"soften_duration"` // seconds

	WinScore      int     `yaml:"win_score"`
	FlashDuration float32 `yaml:"flash_duration"` // seconds
	FlashRate     float32 `yaml:"flash_rate"`
}

// DefaultTuning returns the stock game feel.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:     4.81,
		LaunchSpeed: 15,
		LaunchLift:  0.25,
		BallRadius:  0.5,

		GroundY:        -10,
		GroundBounce:   0.6,
		GroundFriction: 0.95,
		RestSpeed:      10.5,

		ObstacleDamping: 0.7,
		ObstacleNudge:   0.03,

		ArcSpeed:       0.5,
		ArcLift:        8,
		ArcSamples:     30,
		ArcExitDamping: 0.6,

		SoftenFactor:   0.5,
		SoftenDuration: 0.5,

		WinScore:      3,
		FlashDuration: 0.7,
		FlashRate:     10,
	}
}

var ErrInvalidTuning = errors.New("invalid tuning")

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.BallRadius <= 0:
		return fmt.Errorf("%w: ball_radius must be positive, got %v", ErrInvalidTuning, t.BallRadius)
	case t.ArcSamples < 1:
		return fmt.Errorf("%w: arc_samples must be at least 1, got %d", ErrInvalidTuning, t.ArcSamples)
	case t.ArcSpeed <= 0:
		return fmt.Errorf("%w: arc_speed must be positive, got %v", ErrInvalidTuning, t.ArcSpeed)
	case t.WinScore < 1:
		return fmt.Errorf("%w: win_score must be at least 1, got %d", ErrInvalidTuning, t.WinScore)
	}
	return nil
}
