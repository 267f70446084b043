// Package tickertest provides a manually advanced clock for countdown tests.
package tickertest

import (
	"sync"
	"time"

	"studyhub/internal/core/ticker"
)

// ManualClock only moves when Advance is called.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	pollers []*manualPoller
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (clock *ManualClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

// NewPoller registers a poller that fires on every Advance.
func (clock *ManualClock) NewPoller(time.Duration) ticker.Poller {
	poller := &manualPoller{ch: make(chan time.Time, 1), clock: clock}
	clock.mu.Lock()
	clock.pollers = append(clock.pollers, poller)
	clock.mu.Unlock()
	return poller
}

// Advance moves time forward and fires one poll on every active poller.
// Advance(0) fires a poll without moving time.
func (clock *ManualClock) Advance(delta time.Duration) {
	clock.mu.Lock()
	clock.now = clock.now.Add(delta)
	now := clock.now
	pollers := append([]*manualPoller(nil), clock.pollers...)
	clock.mu.Unlock()

	for _, poller := range pollers {
		select {
		case poller.ch <- now:
		default:
		}
	}
}

// ActivePollers reports how many pollers have not been stopped.
func (clock *ManualClock) ActivePollers() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return len(clock.pollers)
}

func (clock *ManualClock) remove(target *manualPoller) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	for i, poller := range clock.pollers {
		if poller == target {
			clock.pollers = append(clock.pollers[:i], clock.pollers[i+1:]...)
			return
		}
	}
}

type manualPoller struct {
	ch    chan time.Time
	clock *ManualClock
}

func (poller *manualPoller) C() <-chan time.Time {
	return poller.ch
}

func (poller *manualPoller) Stop() {
	poller.clock.remove(poller)
}
