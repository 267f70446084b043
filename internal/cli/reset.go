package cli

import (
	"fmt"

	"studyhub/internal/config"
	"studyhub/internal/storage"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget saved progress and start over from the first focus session",
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

			settings, err := storage.LoadSettings(home)
			if err != nil {
				return err
			}
			store, err := storage.OpenStateStore(home, settings.StateBackend)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Progress cleared")
			return nil
		},
	}
}
