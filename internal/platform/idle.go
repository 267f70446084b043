package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"
)

// ErrIdleUnsupported indicates idle detection is not available on this system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// IdleProvider returns the duration since last user input.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

// NewIdleProvider returns a platform-specific idle provider.
func NewIdleProvider() IdleProvider {
	return newIdleProvider()
}

// IdleWatchOptions configures WatchIdle.
type IdleWatchOptions struct {
	// Interval between idle checks. Defaults to 5 seconds.
	Interval time.Duration
	// Threshold reports the idle duration that triggers OnIdle and whether
	// watching is currently enabled. It is read at every check.
	Threshold func() (time.Duration, bool)
	// OnIdle runs once per idle period.
	OnIdle func(idle time.Duration)
	Logger *slog.Logger
}

// WatchIdle polls provider until ctx is cancelled and calls OnIdle when the
// user has been inactive for the threshold. It fires again only after input
// resumes. Unsupported platforms end the watch.
func WatchIdle(ctx context.Context, provider IdleProvider, options IdleWatchOptions) {
	if options.Interval <= 0 {
		options.Interval = 5 * time.Second
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ticker := time.NewTicker(options.Interval)
	defer ticker.Stop()

	fired := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		threshold, enabled := options.Threshold()
		if !enabled || threshold <= 0 {
			fired = false
			continue
		}

		idle, err := provider.IdleDuration()
		if err != nil {
			if errors.Is(err, ErrIdleUnsupported) {
				logger.Warn("idle detection unavailable, auto-pause disabled")
				return
			}
			logger.Debug("idle check failed", "err", err)
			continue
		}

		if idle < threshold {
			fired = false
			continue
		}
		if !fired {
			fired = true
			options.OnIdle(idle)
		}
	}
}

var hidIdlePattern = regexp.MustCompile(`"HIDIdleTime"\s*=\s*(\d+)`)

// parseHIDIdleTime extracts the nanosecond HIDIdleTime from ioreg output.
func parseHIDIdleTime(output string) (time.Duration, error) {
	match := hidIdlePattern.FindStringSubmatch(output)
	if match == nil {
		return 0, fmt.Errorf("HIDIdleTime not found: %w", ErrIdleUnsupported)
	}
	nanos, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse HIDIdleTime: %w", err)
	}
	return time.Duration(nanos), nil
}
