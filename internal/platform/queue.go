package platform

import (
	"sync/atomic"
	"time"

	"github.com/devmabbott/Invaders/internal/core"
)

// Queue is the input source the backends' event pumps feed.
// Push may be called from any goroutine; Poll belongs to the loop goroutine.
type Queue struct {
	events  chan core.Event
	quit    atomic.Bool
	dropped atomic.Int64
	hold    *HoldTracker
}

// NewQueue creates a queue buffering up to size raw events.
// Presses are held for hold after their last repeat; taps for one poll.
func NewQueue(size int, hold time.Duration, taps ...core.Key) *Queue {
	return &Queue{
		events: make(chan core.Event, size),
		hold:   NewHoldTracker(hold, taps...),
	}
}

// Push enqueues a raw event without blocking. Key events are dropped when the
// buffer is full; a quit is never lost.
func (q *Queue) Push(ev core.Event) bool {
	if ev.Type == core.EventQuit {
		q.quit.Store(true)
		return true
	}
	select {
	case q.events <- ev:
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

// Dropped returns how many key events did not fit in the buffer.
func (q *Queue) Dropped() int64 {
	return q.dropped.Load()
}

// Poll drains every queued event and returns what the game should see at now:
// the first press of each key, releases for keys that stopped repeating, and a
// quit if one was pushed.
func (q *Queue) Poll(now time.Time) []core.Event {
	var out []core.Event
	for {
		select {
		case ev := <-q.events:
			switch ev.Type {
			case core.EventKeyDown:
				if down, ok := q.hold.Press(ev.Key, now); ok {
					out = append(out, down)
				}
			case core.EventKeyUp:
				if up, ok := q.hold.Release(ev.Key); ok {
					out = append(out, up)
				}
			}
			continue
		default:
		}
		break
	}

	out = append(out, q.hold.Expire(now)...)
	if q.quit.Load() {
		out = append(out, core.QuitEvent())
	}
	return out
}
