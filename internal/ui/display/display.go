// Package display holds presentation rules shared by the terminal and
// desktop front ends.
package display

import (
	"fmt"
	"time"

	"studyhub/internal/core/model"
	"studyhub/internal/core/scheduler"
	"studyhub/internal/i18n"
)

// Clock renders a remaining duration as mm:ss, rounding partial seconds up so
// the display reaches 00:00 only when the stage is over.
func Clock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int64((remaining + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// StageLabel returns the localized stage label.
func StageLabel(stage model.StageKind) string {
	return i18n.T(stage.Label())
}

// Controls reports which actions are currently available.
type Controls struct {
	Start bool
	Pause bool
	Reset bool
	Skip  bool
	// Resumable is set when Start would continue a paused countdown.
	Resumable bool
}

// ControlsFor derives button availability from a snapshot.
func ControlsFor(snapshot scheduler.Snapshot) Controls {
	return Controls{
		Start:     !snapshot.Running,
		Pause:     snapshot.Running,
		Reset:     snapshot.Running || snapshot.Remaining > 0,
		Skip:      !snapshot.Running,
		Resumable: !snapshot.Running && snapshot.Remaining > 0,
	}
}

// StartLabel names the start action for the current state.
func (controls Controls) StartLabel() string {
	if controls.Resumable {
		return i18n.T("Resume")
	}
	return i18n.T("Start")
}

// Shown returns the remaining time to display. An idle stage shows its full
// configured duration.
func Shown(snapshot scheduler.Snapshot, config model.StageConfig) time.Duration {
	if snapshot.Running || snapshot.Remaining > 0 {
		return snapshot.Remaining
	}
	return config.Duration(snapshot.Stage)
}

// Actions is the subset of the scheduler the front ends drive.
type Actions interface {
	Start()
	Pause()
	Resume()
	Reset()
	Skip()
}

// Activate runs the start action: resume when a countdown is paused,
// otherwise start the stage from its full duration.
func Activate(actions Actions, snapshot scheduler.Snapshot) {
	controls := ControlsFor(snapshot)
	if !controls.Start {
		return
	}
	if controls.Resumable {
		actions.Resume()
		return
	}
	actions.Start()
}
