package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mathclash/internal/domain"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show a player's dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := appCtx.Stats.Dashboard(domain.Username(player))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Player:       %s\n", d.Username)
			fmt.Fprintf(out, "Total score:  %d\n", d.TotalScore)
			fmt.Fprintf(out, "Games played: %d\n", d.GamesPlayed)
			fmt.Fprintf(out, "Won / lost:   %d / %d\n", d.GamesWon, d.GamesLost)
			fmt.Fprintf(out, "Win rate:     %.1f%%\n", d.WinRate)
			fmt.Fprintf(out, "To review:    %d\n", d.Missed)
			return nil
		},
	}
	cmd.Flags().StringVar(&player, "player", "", "player name")
	_ = cmd.MarkFlagRequired("player")
	return cmd
}

func leaderboardCmd() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank players by total score",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := appCtx.Stats.Leaderboard(top)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No players yet.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%3d. %-32s %6d\n", e.Rank, e.Username, e.TotalScore)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "number of players to show (0 = all)")
	return cmd
}
