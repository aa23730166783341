package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hoopshot/internal/engine/input"
	"github.com/Faultbox/hoopshot/internal/logger"
)

// Balls are the selectable ball models, indexed by the number keys.
var Balls = []string{"basketball", "orange", "pumpkin"}

// SelectionState lets the player pick a ball before playing.
type SelectionState struct {
	manager *Manager
	play    func(ball string) State

	Selected  int
	Confirmed bool
}

// NewSelectionState creates the selection scene. On confirm it switches
// the manager to the state returned by play for the chosen ball.
func NewSelectionState(manager *Manager, play func(ball string) State) *SelectionState {
	return &SelectionState{
		manager: manager,
		play:    play,
	}
}

// Enter is called when entering this state.
func (s *SelectionState) Enter() error {
	s.Confirmed = false
	logger.Debug("ball selection", zap.Strings("balls", Balls))
	return nil
}

// Exit is called when leaving this state.
func (s *SelectionState) Exit() error {
	return nil
}

// Update is called every frame.
func (s *SelectionState) Update(dt float64) error {
	return nil
}

// HandleInput processes input events.
func (s *SelectionState) HandleInput(event input.Event) error {
	if s.Confirmed {
		return nil
	}

	switch event.Type {
	case input.EventSelectBall:
		if event.Ball < 0 || event.Ball >= len(Balls) {
			logger.Debug("ignoring ball selection", zap.Int("ball", event.Ball))
			return nil
		}
		s.Selected = event.Ball
	case input.EventConfirm:
		s.Confirmed = true
		logger.Info("ball selected", zap.String("ball", s.Ball()))
		s.manager.Change(s.play(s.Ball()))
	}
	return nil
}

// Ball returns the name of the selected ball.
func (s *SelectionState) Ball() string {
	return Balls[s.Selected]
}
