package desktop

import (
	"testing"
	"time"

	"studyhub/internal/core/model"
	"studyhub/internal/core/scheduler"
	"studyhub/resources"

	"github.com/stretchr/testify/assert"
)

func TestIconFor(t *testing.T) {
	tests := map[string]struct {
		snapshot scheduler.Snapshot
		want     string
	}{
		"idle focus":    {scheduler.Snapshot{Stage: model.StageFocus}, resources.IconFocus},
		"running break": {scheduler.Snapshot{Stage: model.StageShortBreak, Running: true}, resources.IconBreak},
		"long break":    {scheduler.Snapshot{Stage: model.StageLongBreak}, resources.IconBreak},
		"paused focus":  {scheduler.Snapshot{Stage: model.StageFocus, Remaining: time.Minute}, resources.IconPaused},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Same(t, resources.MustLogo(tt.want), iconFor(tt.snapshot))
		})
	}
}
