package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mathclash/internal/domain"
	reviewsvc "mathclash/internal/services/review"
)

// review --player <name>: answer missed questions, oldest first.
func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Retry previously missed questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			username := domain.Username(player)
			out := cmd.OutOrStdout()
			in := newLineReader(cmd.InOrStdin())
			defer in.Close()

			fmt.Fprintf(out, "Type %q to drop a question, or an empty line to stop.\n", domain.SkipSentinel)
			for {
				pending, err := appCtx.Review.Pending(username)
				if err != nil {
					return err
				}
				if len(pending) == 0 {
					fmt.Fprintln(out, "No missed questions left.")
					return nil
				}
				fmt.Fprintf(out, "\n[%d left] %s = ", len(pending), pending[0].Expression)

				line, err := in.ReadLine(context.Background())
				if errors.Is(err, io.EOF) || (err == nil && strings.TrimSpace(line) == "") {
					fmt.Fprintln(out)
					return nil
				}
				if err != nil {
					return err
				}

				res, err := appCtx.Review.Answer(username, line)
				if errors.Is(err, reviewsvc.ErrNothingToReview) {
					return nil
				}
				if err != nil {
					return err
				}
				switch res.Verdict {
				case domain.VerdictCorrect:
					fmt.Fprintf(out, "Correct! %+d\n", res.ScoreDelta)
				case domain.VerdictSkipped:
					fmt.Fprintf(out, "Dropped. The answer was %s.\n", formatAnswer(res.Question.Answer))
				default:
					fmt.Fprintln(out, "Not quite, try again.")
				}
			}
		},
	}
	cmd.Flags().StringVar(&player, "player", "", "player name")
	_ = cmd.MarkFlagRequired("player")
	return cmd
}
