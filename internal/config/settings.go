package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"studyhub/internal/core/model"
)

// State store backends.
const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

// ErrInvalidSettings indicates settings that must not reach the scheduler.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings defines editable user preferences.
type Settings struct {
	Stages model.StageConfig

	SoundEnabled     bool
	IdlePauseEnabled bool
	IdlePauseAfter   time.Duration

	StateBackend string
}

// DefaultSettings returns default settings for StudyHub.
func DefaultSettings() Settings {
	return Settings{
		Stages:           model.DefaultStageConfig(),
		SoundEnabled:     true,
		IdlePauseEnabled: false,
		IdlePauseAfter:   5 * time.Minute,
		StateBackend:     BackendYAML,
	}
}

// Validate checks the settings at the UI boundary.
func (settings Settings) Validate() error {
	if err := settings.Stages.Validate(); err != nil {
		return err
	}
	if settings.IdlePauseAfter <= 0 {
		return fmt.Errorf("%w: idle pause delay must be positive", ErrInvalidSettings)
	}
	switch settings.StateBackend {
	case BackendYAML, BackendSQLite, BackendBadger:
		return nil
	}
	return fmt.Errorf("%w: unknown state backend %q", ErrInvalidSettings, settings.StateBackend)
}

// Live holds the current settings for concurrent readers. The scheduler reads
// the stage configuration from it at every stage start.
type Live struct {
	mu       sync.RWMutex
	settings Settings
}

// NewLive wraps the initial settings.
func NewLive(settings Settings) *Live {
	return &Live{settings: settings}
}

// Get returns a copy of the current settings.
func (live *Live) Get() Settings {
	live.mu.RLock()
	defer live.mu.RUnlock()
	return live.settings
}

// Set replaces the current settings.
func (live *Live) Set(settings Settings) {
	live.mu.Lock()
	live.settings = settings
	live.mu.Unlock()
}

// StageConfig returns the current stage configuration.
func (live *Live) StageConfig() model.StageConfig {
	return live.Get().Stages
}
