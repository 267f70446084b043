// Package scheduler owns the pomodoro stage state machine. It drives a
// background countdown, advances Focus/ShortBreak/LongBreak stages when the
// countdown completes, persists progress and publishes events for the
// presentation layer.
//
// All state changes happen on the goroutine running Run. Public methods only
// enqueue intents for that goroutine.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"studyhub/internal/core/model"
	"studyhub/internal/core/ticker"
)

// Countdown is the background timer the scheduler drives.
type Countdown interface {
	Start(duration time.Duration)
	Pause(remaining time.Duration)
	Resume(remaining time.Duration)
	Stop()
	Notifications() <-chan ticker.Notification
}

// Store persists the scheduler record.
type Store interface {
	Load(ctx context.Context) (model.Record, error)
	Save(ctx context.Context, record model.Record) error
}

// ConfigSource supplies the stage configuration. It is read every time a
// stage starts, so edits apply to the next stage.
type ConfigSource interface {
	StageConfig() model.StageConfig
}

// ConfigFunc adapts a function to ConfigSource.
type ConfigFunc func() model.StageConfig

// StageConfig calls fn.
func (fn ConfigFunc) StageConfig() model.StageConfig {
	return fn()
}

// Options wires a Scheduler.
type Options struct {
	Countdown Countdown
	Store     Store
	Config    ConfigSource
	Logger    *slog.Logger
}

type intentType int

const (
	intentStart intentType = iota
	intentPause
	intentResume
	intentReset
	intentSkip
)

// Scheduler is the pomodoro stage state machine.
type Scheduler struct {
	countdown Countdown
	store     Store
	config    ConfigSource
	logger    *slog.Logger

	intents chan intentType
	closed  chan struct{}

	mu          sync.Mutex
	subscribers []chan Event
	published   Snapshot

	// owned by the Run goroutine
	state Snapshot
}

// New creates a Scheduler hydrated from the store. An absent or malformed
// record yields the first-run defaults.
func New(ctx context.Context, options Options) *Scheduler {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	scheduler := &Scheduler{
		countdown: options.Countdown,
		store:     options.Store,
		config:    options.Config,
		logger:    logger,
		intents:   make(chan intentType, 16),
		closed:    make(chan struct{}),
	}

	record := scheduler.loadRecord(ctx)
	scheduler.state = Snapshot{
		Stage:               record.CurrentStage,
		CompletedFocusCount: record.CompletedFocusCount,
	}
	scheduler.publish()
	return scheduler
}

func (scheduler *Scheduler) loadRecord(ctx context.Context) model.Record {
	if scheduler.store == nil {
		return model.DefaultRecord()
	}
	record, err := scheduler.store.Load(ctx)
	if err != nil {
		scheduler.logger.Warn("load pomodoro record failed, using defaults", "err", err)
		return model.DefaultRecord()
	}
	if err := record.Validate(); err != nil {
		scheduler.logger.Warn("discarding pomodoro record", "err", err)
		return model.DefaultRecord()
	}
	return record
}

// Subscribe registers a new observer channel. Events are dropped for
// observers whose buffer is full. Channels are closed when Run returns.
func (scheduler *Scheduler) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	scheduler.mu.Lock()
	scheduler.subscribers = append(scheduler.subscribers, ch)
	scheduler.mu.Unlock()
	return ch
}

// Snapshot returns the most recently published state.
func (scheduler *Scheduler) Snapshot() Snapshot {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.published
}

// Start begins the current stage from its full duration.
func (scheduler *Scheduler) Start() { scheduler.enqueue(intentStart) }

// Pause freezes the countdown at the last observed remaining time.
func (scheduler *Scheduler) Pause() { scheduler.enqueue(intentPause) }

// Resume continues a paused countdown.
func (scheduler *Scheduler) Resume() { scheduler.enqueue(intentResume) }

// Reset stops the countdown and clears the remaining time.
func (scheduler *Scheduler) Reset() { scheduler.enqueue(intentReset) }

// Skip completes the current stage immediately.
func (scheduler *Scheduler) Skip() { scheduler.enqueue(intentSkip) }

func (scheduler *Scheduler) enqueue(intent intentType) {
	select {
	case scheduler.intents <- intent:
	case <-scheduler.closed:
	}
}

// Run serializes intents and countdown notifications until ctx is cancelled.
func (scheduler *Scheduler) Run(ctx context.Context) {
	defer scheduler.shutdown()

	notifications := scheduler.countdown.Notifications()
	for {
		select {
		case <-ctx.Done():
			return
		case intent := <-scheduler.intents:
			scheduler.handleIntent(ctx, intent)
		case notification := <-notifications:
			scheduler.handleNotification(ctx, notification)
		}
	}
}

func (scheduler *Scheduler) shutdown() {
	close(scheduler.closed)

	scheduler.mu.Lock()
	subscribers := scheduler.subscribers
	scheduler.subscribers = nil
	scheduler.mu.Unlock()

	for _, ch := range subscribers {
		close(ch)
	}
}

func (scheduler *Scheduler) handleIntent(ctx context.Context, intent intentType) {
	switch intent {
	case intentStart:
		scheduler.start()
	case intentPause:
		scheduler.pause(ctx)
	case intentResume:
		scheduler.resume()
	case intentReset:
		scheduler.reset()
	case intentSkip:
		scheduler.countdown.Stop()
		scheduler.complete(ctx)
	}
}

func (scheduler *Scheduler) handleNotification(ctx context.Context, notification ticker.Notification) {
	if !scheduler.state.Running {
		return
	}
	switch notification.Type {
	case ticker.NotificationTick:
		scheduler.onTick(notification.Left)
	case ticker.NotificationDone:
		scheduler.complete(ctx)
	}
}

func (scheduler *Scheduler) start() {
	config := scheduler.currentConfig()
	if err := config.Validate(); err != nil {
		scheduler.logger.Error("refusing to start stage", "stage", scheduler.state.Stage, "err", err)
		return
	}

	duration := config.Duration(scheduler.state.Stage)
	scheduler.countdown.Start(duration)
	scheduler.state.StageDuration = duration
	scheduler.state.Remaining = duration
	scheduler.state.Running = true
	scheduler.publish()
	scheduler.emit(EventStageStarted)
}

// pause stops the countdown where it is. A stage that already reported zero
// left is finished instead, since the ticker drops its pending done on pause.
func (scheduler *Scheduler) pause(ctx context.Context) {
	if !scheduler.state.Running {
		return
	}
	if scheduler.state.Remaining <= 0 {
		scheduler.countdown.Stop()
		scheduler.complete(ctx)
		return
	}
	scheduler.countdown.Pause(scheduler.state.Remaining)
	scheduler.state.Running = false
	scheduler.publish()
	scheduler.emit(EventRunningChanged)
}

func (scheduler *Scheduler) resume() {
	if scheduler.state.Running {
		return
	}
	if scheduler.state.Remaining <= 0 {
		scheduler.start()
		return
	}
	scheduler.countdown.Resume(scheduler.state.Remaining)
	scheduler.state.Running = true
	scheduler.publish()
	scheduler.emit(EventRunningChanged)
}

func (scheduler *Scheduler) reset() {
	scheduler.countdown.Stop()
	scheduler.state.Running = false
	scheduler.state.Remaining = 0
	scheduler.publish()
	scheduler.emit(EventRunningChanged)
}

func (scheduler *Scheduler) onTick(left time.Duration) {
	if left < 0 {
		left = 0
	}
	if left > scheduler.state.StageDuration {
		left = scheduler.state.StageDuration
	}
	scheduler.state.Remaining = left
	scheduler.publish()
	scheduler.emit(EventTickUpdate)
}

// complete finishes the current stage, advances the state machine, persists
// the record and chains straight into the next stage.
func (scheduler *Scheduler) complete(ctx context.Context) {
	scheduler.state.Running = false
	scheduler.publish()
	scheduler.emit(EventStageCompleted)

	config := scheduler.currentConfig()
	scheduler.state.Stage, scheduler.state.CompletedFocusCount = model.Next(
		scheduler.state.Stage,
		scheduler.state.CompletedFocusCount,
		config.CyclesBeforeLongBreak,
	)
	scheduler.state.Remaining = 0
	scheduler.publish()
	scheduler.persist(ctx)
	scheduler.emit(EventStageChanged)

	scheduler.start()
}

func (scheduler *Scheduler) persist(ctx context.Context) {
	if scheduler.store == nil {
		return
	}
	record := model.Record{
		CompletedFocusCount: scheduler.state.CompletedFocusCount,
		CurrentStage:        scheduler.state.Stage,
	}
	if err := scheduler.store.Save(ctx, record); err != nil {
		scheduler.logger.Error("persist pomodoro record failed", "stage", record.CurrentStage, "completed", record.CompletedFocusCount, "err", err)
	}
}

func (scheduler *Scheduler) currentConfig() model.StageConfig {
	if scheduler.config == nil {
		return model.DefaultStageConfig()
	}
	return scheduler.config.StageConfig()
}

func (scheduler *Scheduler) publish() {
	scheduler.mu.Lock()
	scheduler.published = scheduler.state
	scheduler.mu.Unlock()
}

func (scheduler *Scheduler) emit(eventType EventType) {
	event := Event{
		Type:                eventType,
		Stage:               scheduler.state.Stage,
		Remaining:           scheduler.state.Remaining,
		Progress:            scheduler.state.Progress(),
		Running:             scheduler.state.Running,
		CompletedFocusCount: scheduler.state.CompletedFocusCount,
		At:                  time.Now(),
	}

	scheduler.mu.Lock()
	subscribers := append([]chan Event(nil), scheduler.subscribers...)
	scheduler.mu.Unlock()

	for _, ch := range subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
