package commands

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mathclash/internal/domain"
	"mathclash/internal/expr"
)

// question: print generated questions with their answers.
func questionCmd() *cobra.Command {
	var (
		tier   int
		count  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Print generated questions for a tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := domain.Tier(tier)
			if !t.Valid() {
				return fmt.Errorf("tier must be between %d and %d", domain.MinTier, domain.MaxTier)
			}
			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for i := 0; i < count; i++ {
				q := appCtx.Generator.Generate(t)
				if asJSON {
					if err := enc.Encode(q); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintf(out, "%s = %s\n", q.Expression, formatAnswer(q.Answer))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&tier, "tier", "t", 1, "difficulty tier (1-3)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of questions")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per line")
	return cmd
}

// eval <expression>: evaluate an expression; words are joined with spaces.
func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an arithmetic expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := expr.Evaluate(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatAnswer(v))
			return nil
		},
	}
}

// check <answer> <reference>: report whether answer matches reference.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <answer> <reference>",
		Short: "Check an answer against a reference value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := strconv.ParseFloat(args[1], 64)
			if err != nil || math.IsNaN(ref) {
				return fmt.Errorf("invalid reference %q", args[1])
			}
			verdict := "incorrect"
			if appCtx.Checker.IsCorrect(args[0], ref) {
				verdict = "correct"
			}
			fmt.Fprintln(cmd.OutOrStdout(), verdict)
			return nil
		},
	}
}
