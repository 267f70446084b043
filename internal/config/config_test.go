package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"studyhub/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithHome_HomeFrom(t *testing.T) {
	ctx := context.Background()
	_, ok := HomeFrom(ctx)
	assert.False(t, ok)

	ctx = WithHome(ctx, "/study/home")
	home, ok := HomeFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "/study/home", home)
	assert.Equal(t, "/study/home", MustHomeFrom(ctx))
}

func TestMustHomeFrom_Panics(t *testing.T) {
	assert.Panics(t, func() { MustHomeFrom(context.Background()) })
}

func TestResolveHome(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		home, err := ResolveHome("/custom/home/")
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean("/custom/home"), home)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv(HomeEnv, "/env/home")
		home, err := ResolveHome("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Clean("/env/home"), home)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(HomeEnv, "")
		configDir, err := os.UserConfigDir()
		if err != nil {
			t.Skipf("UserConfigDir: %v", err)
		}
		home, err := ResolveHome("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(configDir, AppName), home)
	})
}

func TestSettings_Validate(t *testing.T) {
	assert.NoError(t, DefaultSettings().Validate())

	settings := DefaultSettings()
	settings.Stages.FocusMinutes = 0
	assert.ErrorIs(t, settings.Validate(), model.ErrInvalidConfig)

	settings = DefaultSettings()
	settings.StateBackend = "floppy"
	assert.ErrorIs(t, settings.Validate(), ErrInvalidSettings)

	settings = DefaultSettings()
	settings.IdlePauseAfter = -time.Second
	assert.ErrorIs(t, settings.Validate(), ErrInvalidSettings)
}

func TestLive_StageConfigFollowsSet(t *testing.T) {
	live := NewLive(DefaultSettings())
	assert.Equal(t, 25, live.StageConfig().FocusMinutes)

	updated := DefaultSettings()
	updated.Stages.FocusMinutes = 50
	live.Set(updated)
	assert.Equal(t, 50, live.StageConfig().FocusMinutes)
	assert.Equal(t, updated, live.Get())
}
