// Package ticker runs a single countdown on its own goroutine and reports the
// remaining time to its owner through notifications.
//
// The owner talks to the countdown only through commands (Start, Pause,
// Resume, Stop) and reads Tick/Done notifications from Notifications(). The
// remaining time is always derived from the wall clock, never from a
// decrementing counter, so late or missed polls do not accumulate drift.
package ticker

import (
	"context"
	"time"
)

// DefaultInterval is finer than the one second display resolution.
const DefaultInterval = 250 * time.Millisecond

// Options contains runtime options for Ticker.
type Options struct {
	Interval time.Duration
	Clock    Clock
}

// Ticker owns one countdown at a time.
type Ticker struct {
	options       Options
	commands      chan command
	notifications chan Notification
	closed        chan struct{}
}

// New creates a Ticker. Call Run to start its loop.
func New(options Options) *Ticker {
	if options.Interval <= 0 {
		options.Interval = DefaultInterval
	}
	if options.Clock == nil {
		options.Clock = SystemClock{}
	}
	return &Ticker{
		options:       options,
		commands:      make(chan command),
		notifications: make(chan Notification),
		closed:        make(chan struct{}),
	}
}

// Notifications returns the channel carrying Tick and Done in production order.
func (ticker *Ticker) Notifications() <-chan Notification {
	return ticker.notifications
}

// Start begins a fresh countdown, replacing any running one.
func (ticker *Ticker) Start(duration time.Duration) {
	ticker.send(command{Type: commandStart, Duration: duration})
}

// Pause cancels polling and freezes the remaining time reported by the owner.
func (ticker *Ticker) Pause(remaining time.Duration) {
	ticker.send(command{Type: commandPause, Duration: remaining})
}

// Resume restarts polling with remaining as the new baseline.
func (ticker *Ticker) Resume(remaining time.Duration) {
	ticker.send(command{Type: commandResume, Duration: remaining})
}

// Stop cancels the active countdown.
func (ticker *Ticker) Stop() {
	ticker.send(command{Type: commandStop})
}

func (ticker *Ticker) send(cmd command) {
	select {
	case ticker.commands <- cmd:
	case <-ticker.closed:
	}
}

// Run processes commands and polls until ctx is cancelled.
func (ticker *Ticker) Run(ctx context.Context) {
	defer close(ticker.closed)

	loop := &countdown{clock: ticker.options.Clock, interval: ticker.options.Interval}
	defer loop.cancel()

	for {
		var out chan<- Notification
		var next Notification
		if len(loop.outbox) > 0 {
			out = ticker.notifications
			next = loop.outbox[0]
		}

		select {
		case <-ctx.Done():
			return
		case cmd := <-ticker.commands:
			loop.apply(cmd)
		case <-loop.pollC:
			loop.poll()
		case out <- next:
			loop.outbox = loop.outbox[1:]
		}
	}
}

// countdown is the loop-owned state of the active countdown.
type countdown struct {
	clock    Clock
	interval time.Duration

	poller    Poller
	pollC     <-chan time.Time
	baseline  time.Duration
	startedAt time.Time
	outbox    []Notification
}

func (loop *countdown) apply(cmd command) {
	switch cmd.Type {
	case commandStart, commandResume:
		loop.cancel()
		loop.begin(cmd.Duration)
	case commandPause, commandStop:
		// Safe when idle. The owner passes the remaining time back on Resume.
		loop.cancel()
	}
}

func (loop *countdown) begin(duration time.Duration) {
	loop.baseline = clampLeft(duration)
	loop.startedAt = loop.clock.Now()
	loop.poller = loop.clock.NewPoller(loop.interval)
	loop.pollC = loop.poller.C()
}

// cancel stops polling and discards notifications of the countdown that
// have not been delivered yet.
func (loop *countdown) cancel() {
	if loop.poller != nil {
		loop.poller.Stop()
	}
	loop.poller = nil
	loop.pollC = nil
	loop.outbox = nil
}

func (loop *countdown) poll() {
	elapsed := loop.clock.Now().Sub(loop.startedAt)
	left := clampLeft(loop.baseline - elapsed)
	loop.pushTick(left)
	if left > 0 {
		return
	}

	loop.outbox = append(loop.outbox, Notification{Type: NotificationDone})
	if loop.poller != nil {
		loop.poller.Stop()
	}
	loop.poller = nil
	loop.pollC = nil
}

// pushTick queues a tick, replacing an undelivered older tick.
func (loop *countdown) pushTick(left time.Duration) {
	tick := Notification{Type: NotificationTick, Left: left}
	if last := len(loop.outbox) - 1; last >= 0 && loop.outbox[last].Type == NotificationTick {
		loop.outbox[last] = tick
		return
	}
	loop.outbox = append(loop.outbox, tick)
}

func clampLeft(left time.Duration) time.Duration {
	if left < 0 {
		return 0
	}
	return left
}
