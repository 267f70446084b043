package cli

import (
	"log/slog"

	"studyhub/internal/app"
	"studyhub/internal/config"
	"studyhub/internal/ui/desktop"

	"github.com/spf13/cobra"
)

func newDesktopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "desktop",
		Short: "Run the timer with a tray icon and timer window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home := config.MustHomeFrom(cmd.Context())

			guard, err := acquireInstance(home)
			if err != nil {
				return err
			}
			defer func() {
				_ = guard.Release()
			}()

			session, err := app.Open(cmd.Context(), home, app.Options{})
			if err != nil {
				return err
			}
			defer func() {
				if err := session.Close(); err != nil {
					slog.Error("close state store", "err", err)
				}
			}()

			return desktop.Run(cmd.Context(), session, slog.Default())
		},
	}
}
