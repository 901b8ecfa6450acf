package core

import "strings"

// Key is a semantic game key, abstracted from physical key presses.
// Backends map terminal keys onto these.
type Key int

const (
	KeyNone  Key = iota
	KeyUp        // W, Up arrow
	KeyDown      // S, Down arrow
	KeyLeft      // A, Left arrow
	KeyRight     // D, Right arrow
	KeyFire      // Space
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// ParseKey converts a configuration key name such as "fire" to a Key.
// Returns false for unknown names and for "none".
func ParseKey(s string) (Key, bool) {
	for k := KeyUp; k <= KeyFire; k++ {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, true
		}
	}
	return KeyNone, false
}

// EventType distinguishes the discrete events an input source delivers.
type EventType int

const (
	EventQuit EventType = iota
	EventKeyDown
	EventKeyUp
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	default:
		return "Unknown"
	}
}

// Event is one entry in an input source's queue.
// Key is KeyNone for EventQuit.
type Event struct {
	Type EventType
	Key  Key
}

// QuitEvent returns a quit request.
func QuitEvent() Event {
	return Event{Type: EventQuit}
}

// KeyDownEvent returns a press of k.
func KeyDownEvent(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// KeyUpEvent returns a release of k.
func KeyUpEvent(k Key) Event {
	return Event{Type: EventKeyUp, Key: k}
}
