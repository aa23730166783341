package input

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/hoopshot/internal/engine/camera"
)

var (
	ErrUnknownEvent     = errors.New("unknown event type")
	ErrUnknownDirection = errors.New("unknown move direction")
	ErrInvalidFrame     = errors.New("invalid frame")
)

// scriptEntry is one line of a YAML input script.
type scriptEntry struct {
	Frame     int     `yaml:"frame"`
	Type      string  `yaml:"type"`
	Ball      int     `yaml:"ball,omitempty"`
	Direction string  `yaml:"direction,omitempty"`
	DX        float32 `yaml:"dx,omitempty"`
	DY        float32 `yaml:"dy,omitempty"`
	Repeat    int     `yaml:"repeat,omitempty"` // emit on this many consecutive frames
}

type scriptFile struct {
	Events []scriptEntry `yaml:"events"`
}

// Script is a replayable list of frame-stamped events.
type Script struct {
	byFrame map[int][]Event
	last    int
}

// LoadScript reads a YAML script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes a YAML script:
//
//	events:
//	  - {frame: 0, type: select_ball, ball: 2}
//	  - {frame: 1, type: confirm}
//	  - {frame: 5, type: move, direction: forward, repeat: 30}
//	  - {frame: 40, type: look, dx: 12, dy: -4}
//	  - {frame: 60, type: assisted_throw}
func ParseScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	s := &Script{byFrame: make(map[int][]Event), last: -1}
	for i, entry := range f.Events {
		if entry.Frame < 0 {
			return nil, fmt.Errorf("event %d: %w: %d", i, ErrInvalidFrame, entry.Frame)
		}
		ev, err := entry.event()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}

		repeat := max(entry.Repeat, 1)
		for r := 0; r < repeat; r++ {
			s.add(entry.Frame+r, ev)
		}
	}
	return s, nil
}

func (e scriptEntry) event() (Event, error) {
	typ, err := ParseEventType(e.Type)
	if err != nil {
		return Event{}, err
	}

	ev := Event{Type: typ}
	switch typ {
	case EventSelectBall:
		ev.Ball = e.Ball
	case EventMove:
		ev.Direction, err = ParseDirection(e.Direction)
		if err != nil {
			return Event{}, err
		}
	case EventLook:
		ev.DX, ev.DY = e.DX, e.DY
	}
	return ev, nil
}

func (s *Script) add(frame int, ev Event) {
	s.byFrame[frame] = append(s.byFrame[frame], ev)
	s.last = max(s.last, frame)
}

// EventsAt returns the events scheduled for frame, in script order.
func (s *Script) EventsAt(frame int) []Event {
	if s == nil {
		return nil
	}
	return s.byFrame[frame]
}

// LastFrame returns the highest frame with an event, or -1 when empty.
func (s *Script) LastFrame() int {
	if s == nil {
		return -1
	}
	return s.last
}

// ParseEventType parses a script event name such as "assisted_throw".
func ParseEventType(name string) (EventType, error) {
	for typ, n := range eventNames {
		if typ != EventNone && strings.EqualFold(n, name) {
			return typ, nil
		}
	}
	return EventNone, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
}

// ParseDirection parses a move direction such as "left".
func ParseDirection(name string) (camera.Movement, error) {
	for _, m := range []camera.Movement{camera.Forward, camera.Backward, camera.Left, camera.Right} {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}
