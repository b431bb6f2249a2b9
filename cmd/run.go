package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdeck/internal/app"
	"github.com/abhisek/prepdeck/internal/certificate"
	"github.com/abhisek/prepdeck/internal/config"
	"github.com/abhisek/prepdeck/internal/leaderboard"
	"github.com/abhisek/prepdeck/internal/llm"
	"github.com/abhisek/prepdeck/internal/questiongen"
)

// runApp loads config, opens the store, builds dependencies, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	st, err := openStore(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set ANTHROPIC_API_KEY, OPENAI_API_KEY, or GEMINI_API_KEY and retry.")
		return err
	}

	certs, err := certificate.NewRenderer(cfg.CertDir)
	if err != nil {
		return fmt.Errorf("certificate renderer: %w", err)
	}

	return app.Run(app.Options{
		Config:      cfg,
		Generator:   questiongen.New(provider, questiongen.DefaultConfig()),
		Board:       leaderboard.NewService(st.LeaderboardStore(), cfg.Leaderboard.Size),
		Attempts:    st.AttemptRepo(),
		Certificate: certs,
	})
}
