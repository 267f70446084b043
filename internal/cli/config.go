package cli

import (
	"fmt"
	"strconv"
	"time"

	"studyhub/internal/config"
	"studyhub/internal/storage"

	"github.com/spf13/cobra"
)

// settingKeys lists editable keys in display order; names match settings.yaml.
var settingKeys = []string{
	"focus_minutes",
	"short_break_minutes",
	"long_break_minutes",
	"cycles_before_long_break",
	"sound_enabled",
	"idle_pause_enabled",
	"idle_pause_after_minutes",
	"state_backend",
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := storage.LoadSettings(config.MustHomeFrom(cmd.Context()))
			if err != nil {
				return err
			}
			for _, key := range settingKeys {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, settingValue(settings, key))
			}
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long:  "Change one setting. A running timer picks up new stage lengths when its next stage starts; state_backend applies on next launch.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			home := config.MustHomeFrom(cmd.Context())
			settings, err := storage.LoadSettings(home)
			if err != nil {
				return err
			}
			if err := setSetting(&settings, args[0], args[1]); err != nil {
				return err
			}
			if err := storage.SaveSettings(home, settings); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], settingValue(settings, args[0]))
			return nil
		},
	}
}

func settingValue(settings config.Settings, key string) string {
	switch key {
	case "focus_minutes":
		return strconv.Itoa(settings.Stages.FocusMinutes)
	case "short_break_minutes":
		return strconv.Itoa(settings.Stages.ShortBreakMinutes)
	case "long_break_minutes":
		return strconv.Itoa(settings.Stages.LongBreakMinutes)
	case "cycles_before_long_break":
		return strconv.Itoa(settings.Stages.CyclesBeforeLongBreak)
	case "sound_enabled":
		return strconv.FormatBool(settings.SoundEnabled)
	case "idle_pause_enabled":
		return strconv.FormatBool(settings.IdlePauseEnabled)
	case "idle_pause_after_minutes":
		return strconv.Itoa(int(settings.IdlePauseAfter / time.Minute))
	case "state_backend":
		return settings.StateBackend
	default:
		return ""
	}
}

func setSetting(settings *config.Settings, key, value string) error {
	switch key {
	case "focus_minutes", "short_break_minutes", "long_break_minutes", "cycles_before_long_break", "idle_pause_after_minutes":
		number, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a whole number", config.ErrInvalidSettings, key)
		}
		switch key {
		case "focus_minutes":
			settings.Stages.FocusMinutes = number
		case "short_break_minutes":
			settings.Stages.ShortBreakMinutes = number
		case "long_break_minutes":
			settings.Stages.LongBreakMinutes = number
		case "cycles_before_long_break":
			settings.Stages.CyclesBeforeLongBreak = number
		default:
			settings.IdlePauseAfter = time.Duration(number) * time.Minute
		}
	case "sound_enabled", "idle_pause_enabled":
		flag, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", config.ErrInvalidSettings, key)
		}
		if key == "sound_enabled" {
			settings.SoundEnabled = flag
		} else {
			settings.IdlePauseEnabled = flag
		}
	case "state_backend":
		settings.StateBackend = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return settings.Validate()
}
