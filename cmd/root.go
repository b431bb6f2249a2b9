package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepdeck",
	Short: "Terminal mock-test trainer",
	Long:  "PrepDeck runs AI-generated mock tests with a countdown, scoring, and a local leaderboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPDECK_DB env var)")

	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path: the --db flag wins, then an
// explicit config file value, then PREPDECK_DB, then the default XDG
// path. cfgPath is empty for subcommands that run without app config.
func resolveDBPath(cmd *cobra.Command, cfgPath string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfgPath != "" {
		return cfgPath, store.EnsureDir(cfgPath)
	}
	return store.DefaultDBPath()
}

// openStore resolves the path and opens the local database.
func openStore(cmd *cobra.Command, cfgPath string) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfgPath)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
