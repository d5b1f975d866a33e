package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mathclash/internal/domain"
)

// play --player <name>: run one timed game of three levels.
func playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a timed three-level game",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := appCtx.Game.Start(domain.Username(player))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			in := newLineReader(cmd.InOrStdin())
			defer in.Close()

			fmt.Fprintf(out, "Answer with a number or a fraction like 7/2. Type %q to skip.\n", domain.SkipSentinel)
			for {
				round, ok := g.Next()
				if !ok {
					break
				}
				fmt.Fprintf(out, "\nLevel %d (%s)\n%s = ", round.Level, round.TimeLimit, round.Question.Expression)

				ctx, cancel := context.WithTimeout(cmd.Context(), round.TimeLimit)
				line, err := in.ReadLine(ctx)
				cancel()

				var res domain.RoundResult
				switch {
				case errors.Is(err, context.DeadlineExceeded):
					fmt.Fprintln(out)
					res, err = g.Expire()
				case errors.Is(err, io.EOF):
					return errors.New("input closed before the game finished")
				case err != nil:
					return err
				default:
					res, err = g.Submit(line)
				}
				if err != nil {
					return err
				}
				printRoundResult(out, res)

				if res.Verdict == domain.VerdictTimedOut && !g.Done() {
					if err := waitForEnter(cmd.Context(), out, in); err != nil {
						return err
					}
				}
			}

			sum, _ := g.Summary()
			verdict := "LEVEL FAILED!"
			if sum.Passed {
				verdict = "LEVEL PASSED!"
			}
			fmt.Fprintf(out, "\n%s Score gained: %d points\n", verdict, sum.LevelScore)
			fmt.Fprintf(out, "Total score: %d\n", sum.Profile.TotalScore)
			return nil
		},
	}
	cmd.Flags().StringVar(&player, "player", "", "player name")
	_ = cmd.MarkFlagRequired("player")
	return cmd
}

// waitForEnter drops answers typed after the deadline and holds the next
// question until the player presses Enter.
func waitForEnter(ctx context.Context, out io.Writer, in *lineReader) error {
	in.Discard()
	fmt.Fprint(out, "Press Enter for the next level.")
	_, err := in.ReadLine(ctx)
	if errors.Is(err, io.EOF) {
		return errors.New("input closed before the game finished")
	}
	return err
}

func printRoundResult(out io.Writer, res domain.RoundResult) {
	answer := formatAnswer(res.Question.Answer)
	switch res.Verdict {
	case domain.VerdictCorrect:
		fmt.Fprintf(out, "Correct! %+d\n", res.ScoreDelta)
	case domain.VerdictSkipped:
		fmt.Fprintf(out, "Skipped. The answer was %s. %+d\n", answer, res.ScoreDelta)
	case domain.VerdictTimedOut:
		fmt.Fprintf(out, "Time's up! The answer was %s. %+d\n", answer, res.ScoreDelta)
	default:
		fmt.Fprintf(out, "Wrong. The answer was %s. %+d\n", answer, res.ScoreDelta)
	}
}
