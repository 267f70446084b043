package alert

import (
	"context"
	"testing"
	"time"

	"studyhub/internal/core/model"
	"studyhub/internal/core/scheduler"
	"studyhub/internal/i18n"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchPairsCompletionWithNextStage(t *testing.T) {
	events := make(chan scheduler.Event, 8)
	received := make(chan Alert, 4)
	sink := SinkFunc(func(alert Alert) { received <- alert })

	done := make(chan struct{})
	go func() {
		defer close(done)
		Watch(context.Background(), events, sink)
	}()

	events <- scheduler.Event{Type: scheduler.EventStageChanged, Stage: model.StageFocus}
	events <- scheduler.Event{Type: scheduler.EventTickUpdate, Stage: model.StageFocus}
	events <- scheduler.Event{Type: scheduler.EventStageCompleted, Stage: model.StageFocus}
	events <- scheduler.Event{Type: scheduler.EventStageChanged, Stage: model.StageLongBreak, CompletedFocusCount: 4}
	close(events)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after events closed")
	}

	require.Len(t, received, 1, "unpaired stage change must not alert")
	alert := <-received
	assert.Equal(t, Alert{Finished: model.StageFocus, Next: model.StageLongBreak, CompletedFocusCount: 4}, alert)
}

func TestWatchStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		Watch(ctx, make(chan scheduler.Event))
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestAlertText(t *testing.T) {
	i18n.SetLang("en")
	alert := Alert{Finished: model.StageShortBreak, Next: model.StageFocus}
	assert.Equal(t, "Break finished", alert.Title())
	assert.Equal(t, "Up next: Focus", alert.Body())
}

func TestChimeDisabledDoesNothing(t *testing.T) {
	chime := NewChime(func() bool { return false }, nil)
	chime.Notify(Alert{Finished: model.StageFocus, Next: model.StageShortBreak})
	assert.NoError(t, chime.initErr)
}

func TestMelodyLength(t *testing.T) {
	sampleRate := beep.SampleRate(4000)
	notes := chimeNotes(model.StageFocus)
	streamer, err := melody(sampleRate, notes)
	require.NoError(t, err)

	want := 0
	for _, n := range notes {
		want += sampleRate.N(n.length) + sampleRate.N(40*time.Millisecond)
	}

	samples := make([][2]float64, 256)
	total := 0
	for {
		n, ok := streamer.Stream(samples)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, want, total)
}
