// Package platform holds what the terminal backends share: the input queue
// their event pumps feed, press-to-hold synthesis and the terminal size check.
package platform

import (
	"sort"
	"time"

	"github.com/devmabbott/Invaders/internal/core"
)

type press struct {
	at   time.Time
	poll uint64
}

// HoldTracker turns press-only terminal input into press and release events.
// A key is held from its first press until no repeat has arrived for the
// hold duration. Tap keys are held for a single poll instead, unless a repeat
// arrives before the next one.
type HoldTracker struct {
	hold  time.Duration
	taps  map[core.Key]bool
	last  map[core.Key]press
	polls uint64
}

// NewHoldTracker creates a tracker that releases keys after hold without a
// repeat, and taps after one Expire.
func NewHoldTracker(hold time.Duration, taps ...core.Key) *HoldTracker {
	h := &HoldTracker{
		hold: hold,
		taps: make(map[core.Key]bool, len(taps)),
		last: make(map[core.Key]press),
	}
	for _, k := range taps {
		h.taps[k] = true
	}
	return h
}

// Press records a press of k at now. It returns a KeyDown event only when k
// was not already held.
func (h *HoldTracker) Press(k core.Key, now time.Time) (core.Event, bool) {
	_, held := h.last[k]
	h.last[k] = press{at: now, poll: h.polls}
	if held {
		return core.Event{}, false
	}
	return core.KeyDownEvent(k), true
}

// Release forgets k and returns a KeyUp event if it was held.
func (h *HoldTracker) Release(k core.Key) (core.Event, bool) {
	if _, held := h.last[k]; !held {
		return core.Event{}, false
	}
	delete(h.last, k)
	return core.KeyUpEvent(k), true
}

// Expire releases every key whose last press is at least the hold duration
// before now, and every tap pressed before the previous Expire, in key order.
func (h *HoldTracker) Expire(now time.Time) []core.Event {
	var expired []core.Key
	for k, p := range h.last {
		if (h.taps[k] && p.poll < h.polls) || now.Sub(p.at) >= h.hold {
			expired = append(expired, k)
		}
	}
	h.polls++
	sort.Slice(expired, func(i, j int) bool { return expired[i] < expired[j] })

	events := make([]core.Event, 0, len(expired))
	for _, k := range expired {
		delete(h.last, k)
		events = append(events, core.KeyUpEvent(k))
	}
	return events
}

// Held reports whether k is currently held.
func (h *HoldTracker) Held(k core.Key) bool {
	_, ok := h.last[k]
	return ok
}
