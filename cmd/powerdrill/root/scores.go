package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vytor/powerdrill/internal/models"
	"github.com/vytor/powerdrill/internal/services"
	"github.com/vytor/powerdrill/internal/ui"
)

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores [square|cube]",
		Short: "Show the high score boards",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			variants := models.Variants
			if len(args) == 1 {
				v, err := models.ParseVariant(args[0])
				if err != nil {
					return err
				}
				variants = []models.Variant{v}
			}

			_, svc, cleanup, err := openScores()
			if err != nil {
				return err
			}
			defer cleanup()

			return printScores(ctx, cmd.OutOrStdout(), svc, variants)
		},
	}
	return cmd
}

func printScores(ctx context.Context, out io.Writer, svc services.ScoreService, variants []models.Variant) error {
	for i, v := range variants {
		entries, err := svc.TopScores(ctx, v)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, ui.Heading(ui.IconTrophy, v.Label()+" High Scores"))
		if len(entries) == 0 {
			fmt.Fprintln(out, ui.Muted.Render("  No scores yet"))
			continue
		}
		for rank, e := range entries {
			fmt.Fprintln(out, "  "+ui.ScoreLine(rank+1, e))
		}
	}
	return nil
}
