// Package input handles SDL2 input events, the keyboard movement state
// machine and the mouse-capture session used for first-person look.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventFocusLost
	EventKeyDown
	EventKeyUp
	EventMouseMotion
	EventMouseDown
)

// Event represents a processed input event. Mouse motion carries the
// relative deltas SDL reports in relative-mouse mode.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	XRel   int
	YRel   int
	Button uint8
}

// Pump polls SDL events and converts them to game events once per frame.
type Pump struct {
	events []Event
}

// NewPump creates a new event pump.
func NewPump() *Pump {
	return &Pump{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the game should quit. Key repeats are dropped so a
// held key produces exactly one down edge.
func (p *Pump) Update() bool {
	p.events = p.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			p.events = append(p.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED:
				p.events = append(p.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				p.events = append(p.events, Event{Type: EventFocusLost})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				p.events = append(p.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			} else if e.Type == sdl.KEYUP {
				p.events = append(p.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			p.events = append(p.events, Event{
				Type: EventMouseMotion,
				XRel: int(e.XRel),
				YRel: int(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				p.events = append(p.events, Event{
					Type:   EventMouseDown,
					Button: e.Button,
				})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (p *Pump) Events() []Event {
	return p.events
}
