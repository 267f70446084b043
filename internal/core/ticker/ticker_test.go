package ticker_test

import (
	"context"
	"testing"
	"time"

	"studyhub/internal/core/ticker"
	"studyhub/internal/core/ticker/tickertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTicker(t *testing.T) (*ticker.Ticker, *tickertest.ManualClock) {
	t.Helper()
	clock := tickertest.NewManualClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	tk := ticker.New(ticker.Options{Clock: clock})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tk.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return tk, clock
}

func waitPollers(t *testing.T, clock *tickertest.ManualClock, want int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return clock.ActivePollers() == want
	}, time.Second, time.Millisecond)
}

func next(t *testing.T, tk *ticker.Ticker) ticker.Notification {
	t.Helper()
	select {
	case notification := <-tk.Notifications():
		return notification
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification")
		return ticker.Notification{}
	}
}

func expectSilence(t *testing.T, tk *ticker.Ticker) {
	t.Helper()
	select {
	case notification := <-tk.Notifications():
		t.Fatalf("unexpected notification %+v", notification)
	case <-time.After(50 * time.Millisecond):
	}
}

func tick(left time.Duration) ticker.Notification {
	return ticker.Notification{Type: ticker.NotificationTick, Left: left}
}

func TestTicker_CountsDownFromWallClock(t *testing.T) {
	tk, clock := newTestTicker(t)

	tk.Start(time.Second)
	waitPollers(t, clock, 1)

	var lefts []time.Duration
	for i := 0; i < 4; i++ {
		clock.Advance(300 * time.Millisecond)
		notification := next(t, tk)
		require.Equal(t, ticker.NotificationTick, notification.Type)
		assert.GreaterOrEqual(t, notification.Left, time.Duration(0))
		assert.LessOrEqual(t, notification.Left, time.Second)
		lefts = append(lefts, notification.Left)
	}

	assert.Equal(t, []time.Duration{700 * time.Millisecond, 400 * time.Millisecond, 100 * time.Millisecond, 0}, lefts)
	assert.Equal(t, ticker.Notification{Type: ticker.NotificationDone}, next(t, tk))
	waitPollers(t, clock, 0)
}

func TestTicker_LatePollDoesNotDrift(t *testing.T) {
	tk, clock := newTestTicker(t)

	tk.Start(10 * time.Second)
	waitPollers(t, clock, 1)

	// A single poll after a long stall reports the true elapsed time.
	clock.Advance(7 * time.Second)
	assert.Equal(t, tick(3*time.Second), next(t, tk))
}

func TestTicker_ResumeExpiresWithSingleDone(t *testing.T) {
	tk, clock := newTestTicker(t)

	tk.Resume(10 * time.Second)
	waitPollers(t, clock, 1)

	clock.Advance(10 * time.Second)
	assert.Equal(t, tick(0), next(t, tk))
	assert.Equal(t, ticker.Notification{Type: ticker.NotificationDone}, next(t, tk))

	waitPollers(t, clock, 0)
	clock.Advance(time.Second)
	expectSilence(t, tk)
}

func TestTicker_PauseResumeDoesNotJump(t *testing.T) {
	tk, clock := newTestTicker(t)

	tk.Start(time.Minute)
	waitPollers(t, clock, 1)
	clock.Advance(10 * time.Second)
	paused := next(t, tk)
	require.Equal(t, tick(50*time.Second), paused)

	tk.Pause(paused.Left)
	waitPollers(t, clock, 0)

	// Time spent paused does not count.
	clock.Advance(30 * time.Second)
	expectSilence(t, tk)

	tk.Resume(paused.Left)
	waitPollers(t, clock, 1)
	clock.Advance(0)
	assert.Equal(t, tick(50*time.Second), next(t, tk))
	clock.Advance(time.Second)
	assert.Equal(t, tick(49*time.Second), next(t, tk))
}

func TestTicker_StopDiscardsCancelledCountdown(t *testing.T) {
	tk, clock := newTestTicker(t)

	tk.Start(30 * time.Second)
	waitPollers(t, clock, 1)
	clock.Advance(time.Second)

	tk.Stop()
	waitPollers(t, clock, 0)
	expectSilence(t, tk)

	tk.Start(time.Minute)
	waitPollers(t, clock, 1)
	clock.Advance(time.Second)
	assert.Equal(t, tick(59*time.Second), next(t, tk))
}

func TestTicker_StopDiscardsPendingDone(t *testing.T) {
	tk, clock := newTestTicker(t)

	tk.Start(time.Second)
	waitPollers(t, clock, 1)
	clock.Advance(2 * time.Second)
	waitPollers(t, clock, 0)

	tk.Stop()
	expectSilence(t, tk)
}

func TestTicker_SecondStartWins(t *testing.T) {
	tk, clock := newTestTicker(t)

	tk.Start(10 * time.Second)
	waitPollers(t, clock, 1)
	clock.Advance(2 * time.Second)
	require.Equal(t, tick(8*time.Second), next(t, tk))

	tk.Start(time.Minute)
	clock.Advance(time.Second)
	// Only the replacement countdown polls.
	waitPollers(t, clock, 1)
	clock.Advance(time.Second)

	notification := next(t, tk)
	assert.Equal(t, ticker.NotificationTick, notification.Type)
	assert.Greater(t, notification.Left, 50*time.Second)
}

func TestTicker_PauseAndStopWhenIdleAreNoops(t *testing.T) {
	tk, clock := newTestTicker(t)

	tk.Pause(5 * time.Second)
	tk.Stop()
	clock.Advance(time.Second)
	expectSilence(t, tk)
	assert.Equal(t, 0, clock.ActivePollers())

	tk.Start(2 * time.Second)
	waitPollers(t, clock, 1)
	clock.Advance(time.Second)
	assert.Equal(t, tick(time.Second), next(t, tk))
}

func TestTicker_CommandsAfterShutdownReturn(t *testing.T) {
	clock := tickertest.NewManualClock(time.Now())
	tk := ticker.New(ticker.Options{Clock: clock})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tk.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	returned := make(chan struct{})
	go func() {
		tk.Start(time.Second)
		tk.Stop()
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("commands blocked after shutdown")
	}
}
