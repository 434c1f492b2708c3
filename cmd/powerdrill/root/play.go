package root

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/vytor/powerdrill/internal/drill"
	"github.com/vytor/powerdrill/internal/logger"
	"github.com/vytor/powerdrill/internal/repository/memory"
	"github.com/vytor/powerdrill/internal/tui"
)

func newPlayCmd() *cobra.Command {
	var (
		minutes int
		delayMS int
		noSound bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start the drill in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("minutes") {
				minutes = cfg.DefaultDurationMinutes
			}
			if !cmd.Flags().Changed("feedback-delay") {
				delayMS = cfg.FeedbackDelayMS
			}

			// The terminal belongs to the game, so logs go to a file.
			log, closer, err := logger.OpenFile(cfg.LogFile, logger.ParseLevel(cfg.LogLevel))
			if err != nil {
				return err
			}
			defer closer.Close()
			logger.SetDefault(log)
			ctx := logger.NewContext(context.Background(), log)

			repo, _, cleanup, err := openScores()
			if err != nil {
				return err
			}
			defer cleanup()

			board := drill.NewScoreBoard(repo)
			if err := board.Load(ctx); err != nil {
				return err
			}
			game := drill.NewGame(board, memory.NewCustomRangeRepository(), drill.WithLogger(log))

			log.Info("play session opened: minutes=%d, feedback_delay_ms=%d", minutes, delayMS)
			return tui.RunPlay(ctx, game, tui.Options{
				FeedbackDelay:   time.Duration(delayMS) * time.Millisecond,
				Sound:           cfg.Sound && !noSound,
				DurationMinutes: minutes,
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 1, "initial game duration in minutes (1-60)")
	cmd.Flags().IntVar(&delayMS, "feedback-delay", 500, "pause after a correct answer in milliseconds")
	cmd.Flags().BoolVar(&noSound, "no-sound", false, "disable the terminal bell on correct answers")
	return cmd
}
