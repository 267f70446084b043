package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig indicates a non-positive stage duration or cycle count.
var ErrInvalidConfig = errors.New("invalid stage config")

// StageConfig holds the user-editable stage lengths in whole minutes and the
// number of focus stages between long breaks.
type StageConfig struct {
	FocusMinutes          int
	ShortBreakMinutes     int
	LongBreakMinutes      int
	CyclesBeforeLongBreak int
}

// DefaultStageConfig returns the classic 25/5/15 schedule with a long break
// every fourth focus stage.
func DefaultStageConfig() StageConfig {
	return StageConfig{
		FocusMinutes:          25,
		ShortBreakMinutes:     5,
		LongBreakMinutes:      15,
		CyclesBeforeLongBreak: 4,
	}
}

// Validate reports the first field that is not a positive integer.
func (config StageConfig) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"focus minutes", config.FocusMinutes},
		{"short break minutes", config.ShortBreakMinutes},
		{"long break minutes", config.LongBreakMinutes},
		{"cycles before long break", config.CyclesBeforeLongBreak},
	}
	for _, field := range fields {
		if field.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, field.name, field.value)
		}
	}
	return nil
}

// Duration returns the configured length of the given stage.
func (config StageConfig) Duration(stage StageKind) time.Duration {
	switch stage {
	case StageShortBreak:
		return time.Duration(config.ShortBreakMinutes) * time.Minute
	case StageLongBreak:
		return time.Duration(config.LongBreakMinutes) * time.Minute
	default:
		return time.Duration(config.FocusMinutes) * time.Minute
	}
}
