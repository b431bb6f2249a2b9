package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/leaderboard"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the persisted leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd, "")
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc := leaderboard.NewService(st.LeaderboardStore(), leaderboard.DefaultSize)
		entries, err := svc.Top(cmd.Context())
		if err != nil {
			return fmt.Errorf("load leaderboard: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-4s %-20s %-6s %-20s %s\n", "#", "Name", "Score", "Subject", "Date")
		fmt.Println(strings.Repeat("─", 68))
		for i, e := range entries {
			fmt.Printf("%-4d %-20s %-6d %-20s %s\n",
				i+1, e.Name, e.Score, e.Subject, e.TakenAt.Local().Format("02 Jan 2006 15:04"))
		}
		return nil
	},
}
