// Package animation swaps icon frames on a schedule, used to draw attention to
// the tray when a stage finishes.
package animation

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Config contains animation timing values.
type Config struct {
	// FrameDuration is how long each frame stays visible.
	FrameDuration time.Duration
	// PulseDuration bounds a pulse; the rest frame is restored afterwards.
	PulseDuration time.Duration
}

// DefaultConfig returns the default pulse timing.
func DefaultConfig() Config {
	return Config{
		FrameDuration: 400 * time.Millisecond,
		PulseDuration: 4 * time.Second,
	}
}

// PulseSpec defines the frames of one pulse.
type PulseSpec struct {
	Frames []fyne.Resource
	// Rest is shown when the pulse ends or is stopped.
	Rest fyne.Resource
}

// Engine runs at most one pulse at a time.
type Engine struct {
	mu           sync.Mutex
	config       Config
	updateSprite func(fyne.Resource)
	cancel       context.CancelFunc
	done         chan struct{}
}

// New creates a new animation engine. updateSprite is called from the
// animation goroutine.
func New(config Config, updateSprite func(fyne.Resource)) *Engine {
	defaults := DefaultConfig()
	if config.FrameDuration <= 0 {
		config.FrameDuration = defaults.FrameDuration
	}
	if config.PulseDuration <= 0 {
		config.PulseDuration = defaults.PulseDuration
	}
	return &Engine{
		config:       config,
		updateSprite: updateSprite,
	}
}

// Pulse cycles through pulse.Frames until the pulse duration elapses, ctx is
// cancelled or another pulse starts, then shows pulse.Rest.
func (engine *Engine) Pulse(ctx context.Context, pulse PulseSpec) {
	if len(pulse.Frames) == 0 {
		return
	}
	engine.start(ctx, func(runCtx context.Context) {
		defer engine.rest(pulse.Rest)

		deadline := time.Now().Add(engine.config.PulseDuration)
		for index := 0; time.Now().Before(deadline); index++ {
			engine.updateSprite(pulse.Frames[index%len(pulse.Frames)])
			if !sleepWithContext(runCtx, engine.config.FrameDuration) {
				return
			}
		}
	})
}

// Stop terminates any active animation and waits for it to restore its rest
// frame.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	cancel, done := engine.cancel, engine.done
	engine.cancel, engine.done = nil, nil
	engine.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.Stop()

	runCtx, cancel := context.WithCancel(parent)
	done := make(chan struct{})

	engine.mu.Lock()
	engine.cancel = cancel
	engine.done = done
	engine.mu.Unlock()

	go func() {
		defer close(done)
		run(runCtx)
	}()
}

func (engine *Engine) rest(resource fyne.Resource) {
	if resource != nil {
		engine.updateSprite(resource)
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
