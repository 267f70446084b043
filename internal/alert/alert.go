// Package alert turns stage completions into user-facing alerts.
package alert

import (
	"context"
	"fmt"

	"studyhub/internal/core/model"
	"studyhub/internal/core/scheduler"
	"studyhub/internal/i18n"
)

// Alert describes a finished stage and the stage that follows it.
type Alert struct {
	Finished            model.StageKind
	Next                model.StageKind
	CompletedFocusCount int
}

// Title is the headline shown to the user.
func (alert Alert) Title() string {
	return fmt.Sprintf(i18n.T("%s finished"), i18n.T(alert.Finished.Label()))
}

// Body names the upcoming stage.
func (alert Alert) Body() string {
	return fmt.Sprintf(i18n.T("Up next: %s"), i18n.T(alert.Next.Label()))
}

// Sink receives alerts.
type Sink interface {
	Notify(alert Alert)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(alert Alert)

// Notify calls fn.
func (fn SinkFunc) Notify(alert Alert) {
	fn(alert)
}

// Watch pairs every StageCompleted event with the following StageChanged
// event and forwards the result to sinks. It returns when ctx is cancelled or
// events is closed.
func Watch(ctx context.Context, events <-chan scheduler.Event, sinks ...Sink) {
	var (
		finished model.StageKind
		pending  bool
	)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			switch event.Type {
			case scheduler.EventStageCompleted:
				finished = event.Stage
				pending = true
			case scheduler.EventStageChanged:
				if !pending {
					continue
				}
				pending = false
				alert := Alert{
					Finished:            finished,
					Next:                event.Stage,
					CompletedFocusCount: event.CompletedFocusCount,
				}
				for _, sink := range sinks {
					sink.Notify(alert)
				}
			}
		}
	}
}
