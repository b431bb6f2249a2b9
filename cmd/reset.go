package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/leaderboard"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the leaderboard and attempt history",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("This deletes the leaderboard and all attempt history. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, err := openStore(cmd, "")
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		svc := leaderboard.NewService(st.LeaderboardStore(), leaderboard.DefaultSize)
		if err := svc.Clear(ctx); err != nil {
			return fmt.Errorf("clear leaderboard: %w", err)
		}
		if _, err := st.DB().ExecContext(ctx, `DELETE FROM attempts`); err != nil {
			return fmt.Errorf("clear attempts: %w", err)
		}

		fmt.Println("Leaderboard and attempt history cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
