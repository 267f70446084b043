package cli

import (
	"fmt"
	"os"

	"studyhub/internal/config"
	"studyhub/internal/platform"

	"github.com/spf13/cobra"
)

func newAutostartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Launch the desktop timer at login",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "enable",
		Short: "Start the desktop timer at login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			execPath, err := os.Executable()
			if err != nil {
				return fmt.Errorf("locate executable: %w", err)
			}
			home := config.MustHomeFrom(cmd.Context())
			if err := platform.NewService().EnableAutostart(config.AppName, execPath, "--home", home, "desktop"); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Autostart enabled")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Stop starting the desktop timer at login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := platform.NewService().DisableAutostart(config.AppName); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Autostart disabled")
			return nil
		},
	})

	return cmd
}
