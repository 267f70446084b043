package alert

import (
	"log/slog"
	"sync"
	"time"

	"studyhub/internal/core/model"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const chimeSampleRate = beep.SampleRate(44100)

type note struct {
	frequency float64
	length    time.Duration
}

// Chime plays a short synthesized tone when a stage finishes.
type Chime struct {
	enabled func() bool
	logger  *slog.Logger

	initOnce sync.Once
	initErr  error
	lock     sync.Mutex
}

// NewChime creates a chime that plays only while enabled reports true.
func NewChime(enabled func() bool, logger *slog.Logger) *Chime {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chime{enabled: enabled, logger: logger}
}

// Notify plays the chime for the finished stage.
func (chime *Chime) Notify(alert Alert) {
	if chime.enabled != nil && !chime.enabled() {
		return
	}

	chime.initOnce.Do(func() {
		chime.initErr = speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10))
		if chime.initErr != nil {
			chime.logger.Warn("audio disabled: failed to initialize speaker", "err", chime.initErr)
		}
	})
	if chime.initErr != nil {
		return
	}

	streamer, err := melody(chimeSampleRate, chimeNotes(alert.Finished))
	if err != nil {
		chime.logger.Warn("build chime failed", "err", err)
		return
	}

	chime.lock.Lock()
	defer chime.lock.Unlock()
	speaker.Play(&effects.Volume{Streamer: streamer, Base: 2, Volume: -2})
}

// chimeNotes rises after a focus stage and falls after a break.
func chimeNotes(finished model.StageKind) []note {
	if finished == model.StageFocus {
		return []note{{660, 180 * time.Millisecond}, {880, 260 * time.Millisecond}}
	}
	return []note{{880, 180 * time.Millisecond}, {660, 180 * time.Millisecond}, {523.25, 260 * time.Millisecond}}
}

func melody(sampleRate beep.SampleRate, notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes)*2)
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.frequency)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.length), tone), beep.Silence(sampleRate.N(40*time.Millisecond)))
	}
	return beep.Seq(parts...), nil
}
