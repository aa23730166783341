// Package input turns player actions into per-frame events.
//
// Producers (window callbacks, scripts) push events onto a Queue; the
// simulation drains it once per frame and applies the events in order.
package input

import (
	"sync"

	"github.com/Faultbox/hoopshot/internal/engine/camera"
)

// Event types for game use
type EventType uint8

const (
	EventNone EventType = iota
	EventSelectBall
	EventConfirm
	EventMove
	EventLook
	EventThrow
	EventAssistedThrow
	EventQuit
)

var eventNames = map[EventType]string{
	EventNone:          "none",
	EventSelectBall:    "select_ball",
	EventConfirm:       "confirm",
	EventMove:          "move",
	EventLook:          "look",
	EventThrow:         "throw",
	EventAssistedThrow: "assisted_throw",
	EventQuit:          "quit",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event represents a processed input event.
type Event struct {
	Type EventType

	// EventSelectBall
	Ball int

	// EventMove
	Direction camera.Movement

	// EventLook, in pixels
	DX, DY float32
}

// Queue collects events between frames. Safe for concurrent Push.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		events: make([]Event, 0, 16),
	}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Drain returns the pending events in push order and empties the queue.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
