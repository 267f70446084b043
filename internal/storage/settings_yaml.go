package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"studyhub/internal/config"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusMinutes          int    `yaml:"focus_minutes"`
	ShortBreakMinutes     int    `yaml:"short_break_minutes"`
	LongBreakMinutes      int    `yaml:"long_break_minutes"`
	CyclesBeforeLongBreak int    `yaml:"cycles_before_long_break"`
	SoundEnabled          *bool  `yaml:"sound_enabled"`
	IdlePauseEnabled      bool   `yaml:"idle_pause_enabled"`
	IdlePauseAfterMinutes int    `yaml:"idle_pause_after_minutes"`
	StateBackend          string `yaml:"state_backend"`
}

// LoadSettings reads user preferences from YAML in home.
// If the settings file does not exist, default settings are returned.
// Non-positive or unknown values keep their defaults.
func LoadSettings(home string) (config.Settings, error) {
	settings := config.DefaultSettings()

	rawData, err := os.ReadFile(settingsPath(home))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings validates and writes user preferences to YAML in home.
func SaveSettings(home string, settings config.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	path := settingsPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	soundEnabled := settings.SoundEnabled
	fileData := yamlSettings{
		FocusMinutes:          settings.Stages.FocusMinutes,
		ShortBreakMinutes:     settings.Stages.ShortBreakMinutes,
		LongBreakMinutes:      settings.Stages.LongBreakMinutes,
		CyclesBeforeLongBreak: settings.Stages.CyclesBeforeLongBreak,
		SoundEnabled:          &soundEnabled,
		IdlePauseEnabled:      settings.IdlePauseEnabled,
		IdlePauseAfterMinutes: int(settings.IdlePauseAfter / time.Minute),
		StateBackend:          settings.StateBackend,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := writeFileAtomic(path, serialized); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func settingsPath(home string) string {
	return filepath.Join(home, settingsFileName)
}

func applyYamlSettings(settings *config.Settings, fileData yamlSettings) {
	if fileData.FocusMinutes > 0 {
		settings.Stages.FocusMinutes = fileData.FocusMinutes
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.Stages.ShortBreakMinutes = fileData.ShortBreakMinutes
	}
	if fileData.LongBreakMinutes > 0 {
		settings.Stages.LongBreakMinutes = fileData.LongBreakMinutes
	}
	if fileData.CyclesBeforeLongBreak > 0 {
		settings.Stages.CyclesBeforeLongBreak = fileData.CyclesBeforeLongBreak
	}
	if fileData.IdlePauseAfterMinutes > 0 {
		settings.IdlePauseAfter = time.Duration(fileData.IdlePauseAfterMinutes) * time.Minute
	}

	switch fileData.StateBackend {
	case config.BackendYAML, config.BackendSQLite, config.BackendBadger:
		settings.StateBackend = fileData.StateBackend
	}

	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	settings.IdlePauseEnabled = fileData.IdlePauseEnabled
}

// writeFileAtomic replaces path so readers never see a partial file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
