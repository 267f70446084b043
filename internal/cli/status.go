package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"studyhub/internal/config"
	"studyhub/internal/core/model"
	"studyhub/internal/platform"
	"studyhub/internal/storage"
	"studyhub/internal/ui/display"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show saved pomodoro progress",
		Long: "Show saved pomodoro progress. The badger backend is locked by a running timer, " +
			"so with state_backend: badger status only reports that a timer is running.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home := config.MustHomeFrom(cmd.Context())
			settings, err := storage.LoadSettings(home)
			if err != nil {
				slog.Warn("load settings failed, using defaults", "err", err)
			}

			running := false
			guard, err := platform.AcquireSingleInstance(config.AppName, home)
			switch {
			case errors.Is(err, platform.ErrAlreadyRunning):
				running = true
			case err != nil:
				return err
			default:
				defer func() {
					_ = guard.Release()
				}()
			}

			out := cmd.OutOrStdout()
			if running && settings.StateBackend == config.BackendBadger {
				_, _ = fmt.Fprintf(out, "A timer is running for %s and holds the badger store; check its window for progress.\n", home)
				return nil
			}

			store, err := storage.OpenStateStore(home, settings.StateBackend)
			if err != nil {
				return err
			}
			defer store.Close()

			record, err := store.Load(cmd.Context())
			if err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "saved progress unreadable (%v), showing defaults\n", err)
				record = model.DefaultRecord()
			}

			next, _ := model.Next(record.CurrentStage, record.CompletedFocusCount, settings.Stages.CyclesBeforeLongBreak)
			_, _ = fmt.Fprintf(out, "Stage:            %s (%s)\n", display.StageLabel(record.CurrentStage), display.Clock(settings.Stages.Duration(record.CurrentStage)))
			_, _ = fmt.Fprintf(out, "Completed focus:  %d\n", record.CompletedFocusCount)
			_, _ = fmt.Fprintf(out, "Then:             %s\n", display.StageLabel(next))
			_, _ = fmt.Fprintf(out, "Storage:          %s in %s\n", settings.StateBackend, home)
			if running {
				_, _ = fmt.Fprintln(out, "A timer is running; progress of the current stage is not saved yet.")
			}
			return nil
		},
	}
	return cmd
}
