package model

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord indicates a persisted record that cannot be trusted.
var ErrMalformedRecord = errors.New("malformed pomodoro record")

// StageKind identifies a pomodoro stage. The string value is the persisted
// spelling.
type StageKind string

const (
	StageFocus      StageKind = "Focus"
	StageShortBreak StageKind = "ShortBreak"
	StageLongBreak  StageKind = "LongBreak"
)

// ParseStage converts a persisted stage name.
func ParseStage(value string) (StageKind, error) {
	switch stage := StageKind(value); stage {
	case StageFocus, StageShortBreak, StageLongBreak:
		return stage, nil
	}
	return "", fmt.Errorf("%w: unknown stage %q", ErrMalformedRecord, value)
}

// Label returns the English display label of the stage.
func (stage StageKind) Label() string {
	switch stage {
	case StageShortBreak:
		return "Break"
	case StageLongBreak:
		return "Long Break"
	default:
		return "Focus"
	}
}

// Next applies the stage transition that happens when a stage completes.
// Completing a focus stage counts it; every cycles-th completed focus stage is
// followed by a long break. Breaks always return to focus.
func Next(stage StageKind, completed, cycles int) (StageKind, int) {
	if stage != StageFocus {
		return StageFocus, completed
	}
	completed++
	if cycles > 0 && completed%cycles == 0 {
		return StageLongBreak, completed
	}
	return StageShortBreak, completed
}

// Record is the persisted scheduler progress.
type Record struct {
	CompletedFocusCount int
	CurrentStage        StageKind
}

// DefaultRecord is the state of a first-ever run.
func DefaultRecord() Record {
	return Record{CurrentStage: StageFocus}
}

// Validate rejects negative counters and unknown stages.
func (record Record) Validate() error {
	if record.CompletedFocusCount < 0 {
		return fmt.Errorf("%w: negative completed focus count %d", ErrMalformedRecord, record.CompletedFocusCount)
	}
	if _, err := ParseStage(string(record.CurrentStage)); err != nil {
		return err
	}
	return nil
}
