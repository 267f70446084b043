package ticker

import "time"

// Clock supplies wall-clock time and periodic polls.
type Clock interface {
	Now() time.Time
	NewPoller(interval time.Duration) Poller
}

// Poller delivers periodic poll times until stopped.
type Poller interface {
	C() <-chan time.Time
	Stop()
}

// SystemClock is the real wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// NewPoller wraps time.Ticker.
func (SystemClock) NewPoller(interval time.Duration) Poller {
	return systemPoller{ticker: time.NewTicker(interval)}
}

type systemPoller struct {
	ticker *time.Ticker
}

func (poller systemPoller) C() <-chan time.Time {
	return poller.ticker.C
}

func (poller systemPoller) Stop() {
	poller.ticker.Stop()
}
