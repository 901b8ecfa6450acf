package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/devmabbott/Invaders/internal/core"
)

// mapKey translates a tcell key event to a raw game event.
// Returns false for keys the game does not use.
func mapKey(ev *tcell.EventKey) (core.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.QuitEvent(), true
	case tcell.KeyUp:
		return core.KeyDownEvent(core.KeyUp), true
	case tcell.KeyDown:
		return core.KeyDownEvent(core.KeyDown), true
	case tcell.KeyLeft:
		return core.KeyDownEvent(core.KeyLeft), true
	case tcell.KeyRight:
		return core.KeyDownEvent(core.KeyRight), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return core.QuitEvent(), true
		case 'w', 'W':
			return core.KeyDownEvent(core.KeyUp), true
		case 's', 'S':
			return core.KeyDownEvent(core.KeyDown), true
		case 'a', 'A':
			return core.KeyDownEvent(core.KeyLeft), true
		case 'd', 'D':
			return core.KeyDownEvent(core.KeyRight), true
		case ' ':
			return core.KeyDownEvent(core.KeyFire), true
		}
	}
	return core.Event{}, false
}

// pushFunc receives every mapped event.
type pushFunc func(core.Event) bool

// pump forwards key events from screen until PollEvent returns nil, which
// happens once the screen is finalized.
func pump(screen tcell.Screen, push pushFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			if e, ok := mapKey(key); ok {
				push(e)
			}
		}
	}
}
