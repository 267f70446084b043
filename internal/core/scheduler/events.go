package scheduler

import (
	"time"

	"studyhub/internal/core/model"
)

// EventType defines the type of Scheduler event.
type EventType string

const (
	EventStageStarted   EventType = "stage_started"
	EventTickUpdate     EventType = "tick_update"
	EventStageCompleted EventType = "stage_completed"
	EventStageChanged   EventType = "stage_changed"
	EventRunningChanged EventType = "running_changed"
)

// Event represents a Scheduler update for the presentation layer.
type Event struct {
	Type                EventType
	Stage               model.StageKind
	Remaining           time.Duration
	Progress            float64
	Running             bool
	CompletedFocusCount int
	At                  time.Time
}

// Snapshot is a consistent copy of the scheduler state.
type Snapshot struct {
	Stage               model.StageKind
	CompletedFocusCount int
	Remaining           time.Duration
	StageDuration       time.Duration
	Running             bool
}

// Progress returns the completed fraction of the current stage in [0,1].
func (snapshot Snapshot) Progress() float64 {
	return progress(snapshot.Remaining, snapshot.StageDuration)
}

func progress(remaining, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	value := 1 - float64(remaining)/float64(total)
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
