package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/quizclash/internal/llm"
	"github.com/abhisek/quizclash/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizclash",
	Short: "Trivia battles against an AI benchmark",
	Long:  "QuizClash — terminal trivia game that adapts question difficulty to your skill and pits your score against a simulated AI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return playCmd.RunE(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZCLASH_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZCLASH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database honoring the --db flag.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// buildProvider constructs the LLM provider from explicit QUIZCLASH_*
// configuration, falling back to probing standard API key env vars.
// Returns nil when no provider is configured; AI tiers degrade locally.
func buildProvider(cmd *cobra.Command, events store.EventRepo) llm.Provider {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "No LLM provider configured; playing from the local question bank only.")
			return nil
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
		return nil
	}
	return provider
}
