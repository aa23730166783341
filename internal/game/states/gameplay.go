package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hoopshot/internal/engine/input"
	"github.com/Faultbox/hoopshot/internal/game/hoops"
	"github.com/Faultbox/hoopshot/internal/logger"
)

// GameplayState runs the shooting game.
type GameplayState struct {
	Ball  string
	World *hoops.GameState

	pending []input.Event
	last    hoops.Frame
	onFrame func(hoops.Frame)
}

// NewGameplayState creates the gameplay scene. onFrame, if set, receives
// every frame result.
func NewGameplayState(ball string, world *hoops.GameState, onFrame func(hoops.Frame)) *GameplayState {
	return &GameplayState{
		Ball:    ball,
		World:   world,
		onFrame: onFrame,
	}
}

// Enter is called when entering this state.
func (s *GameplayState) Enter() error {
	s.pending = s.pending[:0]
	logger.Info("entering gameplay",
		zap.String("ball", s.Ball),
		logger.Vec3("hoop", s.World.Court.HoopCenter()))
	return nil
}

// Exit is called when leaving this state.
func (s *GameplayState) Exit() error {
	return nil
}

// HandleInput queues an event for the next Update.
func (s *GameplayState) HandleInput(event input.Event) error {
	s.pending = append(s.pending, event)
	return nil
}

// Update steps the game with the events received since the last frame.
func (s *GameplayState) Update(dt float64) error {
	s.last = s.World.Step(float32(dt), s.pending)
	s.pending = s.pending[:0]

	if s.onFrame != nil {
		s.onFrame(s.last)
	}
	return nil
}

// LastFrame returns the result of the most recent Update.
func (s *GameplayState) LastFrame() hoops.Frame {
	return s.last
}
