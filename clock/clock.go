// Package clock provides the time the scenes run on: an injectable monotonic clock for pacing
// the control loop, and a network-disciplined wall clock reduced to the current minute.
package clock

import (
	"sync"
	"time"
)

// Clock paces the control loop. Tests substitute Manual so no real time passes.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// System is the real clock.
type System struct{}

func (System) Now() time.Time        { return time.Now() }
func (System) Sleep(d time.Duration) { time.Sleep(d) }

// Manual is a controllable clock. Sleep advances it instantly.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Sleep(d time.Duration) { m.Advance(d) }

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Set jumps the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}
