package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"studyhub/internal/alert"
	"studyhub/internal/app"
	"studyhub/internal/config"
	"studyhub/internal/platform"
	"studyhub/internal/ui/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const logFileName = "studyhub.log"

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}
}

func runTUI(cmd *cobra.Command) error {
	home := config.MustHomeFrom(cmd.Context())

	guard, err := acquireInstance(home)
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	// The terminal is owned by the program, so logs go to a file.
	logger, closeLog, err := fileLogger(home)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	session, err := app.Open(ctx, home, app.Options{Logger: logger})
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error("close state store", "err", err)
		}
	}()

	events := session.Scheduler.Subscribe(64)
	program := tea.NewProgram(
		tui.New(session.Scheduler, events, session.Settings.StageConfig),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	runDone := make(chan error, 1)
	go func() {
		runDone <- session.Run(ctx, alert.SinkFunc(func(a alert.Alert) {
			program.Send(tui.AlertMsg(a))
		}))
	}()

	_, runErr := program.Run()
	cancel()
	if err := <-runDone; err != nil {
		return err
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal ui: %w", runErr)
	}
	return nil
}

func acquireInstance(home string) (*platform.InstanceGuard, error) {
	guard, err := platform.AcquireSingleInstance(config.AppName, home)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		return nil, fmt.Errorf("a StudyHub timer is already running for %s", home)
	}
	return guard, err
}

func fileLogger(home string) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(home, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create home: %w", err)
	}
	file, err := os.OpenFile(filepath.Join(home, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	level := slog.LevelInfo
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = file.Close() }, nil
}
