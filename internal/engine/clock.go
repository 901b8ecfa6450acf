package engine

import (
	"sync"
	"time"
)

// Clock is the loop's source of time.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep pauses the calling goroutine for d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// ManualClock is a controllable time source for tests.
// Sleep advances it instead of blocking.
type ManualClock struct {
	mu    sync.RWMutex
	now   time.Time
	slept time.Duration
}

// NewManualClock creates a manual clock set to start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current mocked time.
func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward by d.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Sleep advances the clock by d and records it.
func (m *ManualClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	m.slept += d
}

// Slept returns the total duration passed to Sleep.
func (m *ManualClock) Slept() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.slept
}
