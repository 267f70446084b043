package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"studyhub/internal/config"
	"studyhub/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), settings)
}

func TestSaveAndLoadSettings(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	want := config.Settings{
		Stages: model.StageConfig{
			FocusMinutes:          50,
			ShortBreakMinutes:     10,
			LongBreakMinutes:      30,
			CyclesBeforeLongBreak: 3,
		},
		SoundEnabled:     false,
		IdlePauseEnabled: true,
		IdlePauseAfter:   7 * time.Minute,
		StateBackend:     config.BackendSQLite,
	}

	require.NoError(t, SaveSettings(home, want))

	got, err := LoadSettings(home)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveSettingsRejectsInvalid(t *testing.T) {
	home := t.TempDir()
	settings := config.DefaultSettings()
	settings.Stages.FocusMinutes = 0

	err := SaveSettings(home, settings)
	require.ErrorIs(t, err, model.ErrInvalidConfig)

	_, statErr := os.Stat(filepath.Join(home, settingsFileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoadSettingsKeepsDefaultsForBadValues(t *testing.T) {
	home := t.TempDir()
	content := "focus_minutes: -5\nshort_break_minutes: 0\nlong_break_minutes: 20\nstate_backend: mongo\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, settingsFileName), []byte(content), 0o644))

	settings, err := LoadSettings(home)
	require.NoError(t, err)

	defaults := config.DefaultSettings()
	assert.Equal(t, defaults.Stages.FocusMinutes, settings.Stages.FocusMinutes)
	assert.Equal(t, defaults.Stages.ShortBreakMinutes, settings.Stages.ShortBreakMinutes)
	assert.Equal(t, 20, settings.Stages.LongBreakMinutes)
	assert.Equal(t, config.BackendYAML, settings.StateBackend)
	assert.True(t, settings.SoundEnabled, "absent sound flag keeps default")
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, settingsFileName), []byte("focus_minutes: [\n"), 0o644))

	settings, err := LoadSettings(home)
	require.Error(t, err)
	assert.Equal(t, config.DefaultSettings(), settings)
}
