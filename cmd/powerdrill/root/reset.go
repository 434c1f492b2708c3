package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vytor/powerdrill/internal/models"
	"github.com/vytor/powerdrill/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset-scores [square|cube]",
		Short: "Clear the high score boards",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to clear scores without --yes")
			}
			var variants []models.Variant
			if len(args) == 1 {
				v, err := models.ParseVariant(args[0])
				if err != nil {
					return err
				}
				variants = append(variants, v)
			}

			_, svc, cleanup, err := openScores()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Reset(context.Background(), variants...); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconCheck+" high scores cleared"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm clearing the scores")
	return cmd
}
