package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vytor/powerdrill/internal/config"
	"github.com/vytor/powerdrill/internal/logger"
	"github.com/vytor/powerdrill/internal/ui"
)

const Version = "0.1.0"

var cfg config.Config

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "powerdrill",
		Short:         "Timed squares and cubes drill",
		Long:          "Power Drill is a timed mental arithmetic game for squares, cubes and their roots, with a persistent high score board.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Load()
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			logger.SetDefault(logger.New(
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
				logger.WithColors(true),
			))
			return nil
		},
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.AddCommand(
		newPlayCmd(),
		newScoresCmd(),
		newResetCmd(),
		newServeCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
