// Package cli implements the studyhub command line.
package cli

import (
	"log/slog"
	"os"

	"studyhub/internal/config"
	"studyhub/internal/i18n"

	"github.com/spf13/cobra"
)

func NewRootCmd(version string) *cobra.Command {
	var (
		homeOverride string
		debug        bool
	)

	cmd := &cobra.Command{
		Use:          "studyhub",
		Short:        "StudyHub pomodoro timer",
		Long:         "StudyHub alternates focus sessions with short and long breaks and remembers your progress between runs.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			home, err := config.ResolveHome(homeOverride)
			if err != nil {
				return err
			}
			if debug {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			i18n.Detect()
			cmd.SetContext(config.WithHome(cmd.Context(), home))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&homeOverride, "home", "", "Override StudyHub home directory (default: <config dir>/StudyHub, env: STUDYHUB_HOME)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newTUICmd())
	cmd.AddCommand(newDesktopCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newResetCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newAutostartCmd())

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.SetVersionTemplate("{{.Version}}\n")
	if version != "" {
		cmd.Version = version
	} else {
		cmd.Version = "dev"
	}

	return cmd
}
