// Package app wires settings, storage, the ticker and the scheduler into a
// runnable timer session shared by the terminal and desktop front ends.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"studyhub/internal/alert"
	"studyhub/internal/config"
	"studyhub/internal/core/model"
	"studyhub/internal/core/scheduler"
	"studyhub/internal/core/ticker"
	"studyhub/internal/platform"
	"studyhub/internal/storage"
)

// Options configures Open. Zero values select production defaults.
type Options struct {
	Clock  ticker.Clock
	Idle   platform.IdleProvider
	Logger *slog.Logger
	// IdleInterval overrides how often idle time is checked.
	IdleInterval time.Duration
}

// Session is one running timer bound to a StudyHub home.
type Session struct {
	Home      string
	Settings  *config.Live
	Scheduler *scheduler.Scheduler

	store  storage.StateStore
	ticker *ticker.Ticker
	idle   platform.IdleProvider
	chime  *alert.Chime
	logger *slog.Logger

	idleInterval time.Duration
	saveMu       sync.Mutex
}

// Open loads settings and the persisted record from home.
func Open(ctx context.Context, home string, options Options) (*Session, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	settings, err := storage.LoadSettings(home)
	if err != nil {
		logger.Warn("load settings failed, using defaults", "err", err)
	}

	store, err := storage.OpenStateStore(home, settings.StateBackend)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	live := config.NewLive(settings)
	countdown := ticker.New(ticker.Options{Clock: options.Clock})
	sched := scheduler.New(ctx, scheduler.Options{
		Countdown: countdown,
		Store:     store,
		Config:    live,
		Logger:    logger.With("component", "scheduler"),
	})

	idle := options.Idle
	if idle == nil {
		idle = platform.NewIdleProvider()
	}

	return &Session{
		Home:         home,
		Settings:     live,
		Scheduler:    sched,
		store:        store,
		ticker:       countdown,
		idle:         idle,
		chime:        alert.NewChime(func() bool { return live.Get().SoundEnabled }, logger),
		logger:       logger,
		idleInterval: options.IdleInterval,
	}, nil
}

// Run drives the timer until ctx is cancelled. Completion alerts go to the
// chime and to sinks.
func (session *Session) Run(ctx context.Context, sinks ...alert.Sink) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	alerts := session.Scheduler.Subscribe(16)
	wg.Add(3)
	go func() {
		defer wg.Done()
		session.ticker.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		alert.Watch(ctx, alerts, append([]alert.Sink{session.chime}, sinks...)...)
	}()
	go func() {
		defer wg.Done()
		platform.WatchIdle(ctx, session.idle, platform.IdleWatchOptions{
			Interval:  session.idleInterval,
			Threshold: session.idleThreshold,
			OnIdle:    session.pauseForIdle,
			Logger:    session.logger,
		})
	}()

	session.Scheduler.Run(ctx)
	return nil
}

func (session *Session) idleThreshold() (time.Duration, bool) {
	settings := session.Settings.Get()
	return settings.IdlePauseAfter, settings.IdlePauseEnabled
}

// pauseForIdle pauses a running focus stage.
func (session *Session) pauseForIdle(idle time.Duration) {
	snapshot := session.Scheduler.Snapshot()
	if !snapshot.Running || snapshot.Stage != model.StageFocus {
		return
	}
	session.logger.Info("pausing focus after inactivity", "idle", idle.Round(time.Second))
	session.Scheduler.Pause()
}

// UpdateSettings validates, persists and applies settings. Stage durations
// apply from the next stage start; a backend change applies on next launch.
func (session *Session) UpdateSettings(settings config.Settings) error {
	session.saveMu.Lock()
	defer session.saveMu.Unlock()

	if err := storage.SaveSettings(session.Home, settings); err != nil {
		return err
	}
	session.Settings.Set(settings)
	return nil
}

// Close releases the state store.
func (session *Session) Close() error {
	return session.store.Close()
}
