package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"studyhub/internal/config"
)

// FormValues holds the raw text of the preferences form.
type FormValues struct {
	FocusMinutes      string
	ShortBreakMinutes string
	LongBreakMinutes  string
	Cycles            string
	IdleMinutes       string

	SoundEnabled bool
	IdleEnabled  bool
	StateBackend string
}

// ValuesFrom renders settings into form values.
func ValuesFrom(settings config.Settings) FormValues {
	return FormValues{
		FocusMinutes:      strconv.Itoa(settings.Stages.FocusMinutes),
		ShortBreakMinutes: strconv.Itoa(settings.Stages.ShortBreakMinutes),
		LongBreakMinutes:  strconv.Itoa(settings.Stages.LongBreakMinutes),
		Cycles:            strconv.Itoa(settings.Stages.CyclesBeforeLongBreak),
		IdleMinutes:       strconv.Itoa(int(settings.IdlePauseAfter / time.Minute)),
		SoundEnabled:      settings.SoundEnabled,
		IdleEnabled:       settings.IdlePauseEnabled,
		StateBackend:      settings.StateBackend,
	}
}

// Apply parses values on top of base. Any unparsable or non-positive number
// rejects the whole form so the previous settings stay in effect.
func (values FormValues) Apply(base config.Settings) (config.Settings, error) {
	settings := base

	fields := []struct {
		name   string
		text   string
		target *int
	}{
		{"focus minutes", values.FocusMinutes, &settings.Stages.FocusMinutes},
		{"short break minutes", values.ShortBreakMinutes, &settings.Stages.ShortBreakMinutes},
		{"long break minutes", values.LongBreakMinutes, &settings.Stages.LongBreakMinutes},
		{"cycles before long break", values.Cycles, &settings.Stages.CyclesBeforeLongBreak},
	}
	for _, field := range fields {
		parsed, ok := parsePositiveInt(field.text)
		if !ok {
			return base, fmt.Errorf("%w: %s must be a positive whole number", config.ErrInvalidSettings, field.name)
		}
		*field.target = parsed
	}

	idleMinutes, ok := parsePositiveInt(values.IdleMinutes)
	if !ok {
		return base, fmt.Errorf("%w: idle minutes must be a positive whole number", config.ErrInvalidSettings)
	}
	settings.IdlePauseAfter = time.Duration(idleMinutes) * time.Minute

	settings.SoundEnabled = values.SoundEnabled
	settings.IdlePauseEnabled = values.IdleEnabled
	if values.StateBackend != "" {
		settings.StateBackend = values.StateBackend
	}

	if err := settings.Validate(); err != nil {
		return base, err
	}
	return settings, nil
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
