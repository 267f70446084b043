package display

import (
	"testing"
	"time"

	"studyhub/internal/core/model"
	"studyhub/internal/core/scheduler"
	"studyhub/internal/i18n"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	tests := []struct {
		remaining time.Duration
		want      string
	}{
		{25 * time.Minute, "25:00"},
		{24*time.Minute + 59*time.Second + 1, "25:00"},
		{61 * time.Second, "01:01"},
		{1500 * time.Millisecond, "00:02"},
		{time.Millisecond, "00:01"},
		{0, "00:00"},
		{-time.Second, "00:00"},
		{100 * time.Minute, "100:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Clock(tt.remaining), tt.remaining.String())
	}
}

func TestControlsFor(t *testing.T) {
	tests := map[string]struct {
		snapshot scheduler.Snapshot
		want     Controls
	}{
		"idle": {
			snapshot: scheduler.Snapshot{},
			want:     Controls{Start: true, Skip: true},
		},
		"running": {
			snapshot: scheduler.Snapshot{Running: true, Remaining: time.Minute},
			want:     Controls{Pause: true, Reset: true},
		},
		"paused": {
			snapshot: scheduler.Snapshot{Remaining: time.Minute},
			want:     Controls{Start: true, Reset: true, Skip: true, Resumable: true},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ControlsFor(tt.snapshot))
		})
	}
}

func TestStartLabel(t *testing.T) {
	i18n.SetLang("en")
	assert.Equal(t, "Start", Controls{Start: true}.StartLabel())
	assert.Equal(t, "Resume", Controls{Start: true, Resumable: true}.StartLabel())
}

func TestShown(t *testing.T) {
	config := model.DefaultStageConfig()
	assert.Equal(t, 5*time.Minute, Shown(scheduler.Snapshot{Stage: model.StageShortBreak}, config))
	assert.Equal(t, 42*time.Second, Shown(scheduler.Snapshot{Stage: model.StageFocus, Remaining: 42 * time.Second}, config))
	assert.Equal(t, time.Duration(0), Shown(scheduler.Snapshot{Stage: model.StageFocus, Running: true}, config))
}

type recordedActions struct {
	calls []string
}

func (actions *recordedActions) Start()  { actions.calls = append(actions.calls, "start") }
func (actions *recordedActions) Pause()  { actions.calls = append(actions.calls, "pause") }
func (actions *recordedActions) Resume() { actions.calls = append(actions.calls, "resume") }
func (actions *recordedActions) Reset()  { actions.calls = append(actions.calls, "reset") }
func (actions *recordedActions) Skip()   { actions.calls = append(actions.calls, "skip") }

func TestActivate(t *testing.T) {
	actions := &recordedActions{}

	Activate(actions, scheduler.Snapshot{})
	Activate(actions, scheduler.Snapshot{Remaining: time.Minute})
	Activate(actions, scheduler.Snapshot{Running: true, Remaining: time.Minute})

	assert.Equal(t, []string{"start", "resume"}, actions.calls)
}
