// Package states implements game state management.
package states

import "github.com/Faultbox/hoopshot/internal/engine/input"

// State represents a game scene (ball selection, gameplay).
type State interface {
	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame, after the frame's input.
	Update(dt float64) error

	// HandleInput processes one input event.
	HandleInput(event input.Event) error
}

// Manager manages game state transitions.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change. It takes effect on the next Update, so
// the rest of the current frame's input still goes to the old state.
func (m *Manager) Change(next State) {
	m.next = next
}

// HandleInput forwards an event to the current state.
func (m *Manager) HandleInput(event input.Event) error {
	if m.current == nil {
		return nil
	}
	return m.current.HandleInput(event)
}

// Update processes state changes and updates current state.
func (m *Manager) Update(dt float64) error {
	// Handle state transition
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	// Update current state
	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}
