package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_FourCycleSequence(t *testing.T) {
	stage, completed := StageFocus, 0
	var got []StageKind
	for i := 0; i < 8; i++ {
		stage, completed = Next(stage, completed, 4)
		got = append(got, stage)
	}

	assert.Equal(t, []StageKind{
		StageShortBreak, StageFocus,
		StageShortBreak, StageFocus,
		StageShortBreak, StageFocus,
		StageLongBreak, StageFocus,
	}, got)
	assert.Equal(t, 4, completed)
}

func TestNext_BreaksDoNotCount(t *testing.T) {
	tests := []struct {
		name  string
		stage StageKind
	}{
		{"short break", StageShortBreak},
		{"long break", StageLongBreak},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, completed := Next(tt.stage, 7, 4)
			assert.Equal(t, StageFocus, next)
			assert.Equal(t, 7, completed)
		})
	}
}

func TestNext_SingleCycleAlwaysLongBreak(t *testing.T) {
	next, completed := Next(StageFocus, 0, 1)
	assert.Equal(t, StageLongBreak, next)
	assert.Equal(t, 1, completed)
}

func TestParseStage(t *testing.T) {
	stage, err := ParseStage("LongBreak")
	require.NoError(t, err)
	assert.Equal(t, StageLongBreak, stage)

	_, err = ParseStage("Lunch")
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestRecord_Validate(t *testing.T) {
	assert.NoError(t, DefaultRecord().Validate())
	assert.ErrorIs(t, Record{CompletedFocusCount: -1, CurrentStage: StageFocus}.Validate(), ErrMalformedRecord)
	assert.ErrorIs(t, Record{CurrentStage: ""}.Validate(), ErrMalformedRecord)
}

func TestStageConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultStageConfig().Validate())

	config := DefaultStageConfig()
	config.CyclesBeforeLongBreak = 0
	err := config.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "cycles before long break")

	config = DefaultStageConfig()
	config.ShortBreakMinutes = -5
	assert.ErrorIs(t, config.Validate(), ErrInvalidConfig)
}

func TestStageConfig_Duration(t *testing.T) {
	config := DefaultStageConfig()
	assert.Equal(t, 25*time.Minute, config.Duration(StageFocus))
	assert.Equal(t, 5*time.Minute, config.Duration(StageShortBreak))
	assert.Equal(t, 15*time.Minute, config.Duration(StageLongBreak))
}

func TestStageKind_Label(t *testing.T) {
	assert.Equal(t, "Focus", StageFocus.Label())
	assert.Equal(t, "Break", StageShortBreak.Label())
	assert.Equal(t, "Long Break", StageLongBreak.Label())
}
