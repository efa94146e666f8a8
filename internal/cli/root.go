package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var configPath string
	var port int

	rootCmd := &cobra.Command{
		Use:   "triviad",
		Short: "Daily trivia game server",
		Long: `triviad serves the daily trivia game JSON API: per-player scores,
daily-play streaks, a question bank with generated word puzzles, and a
leaderboard. State is a single JSON document on disk, in memory or in Redis.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().IntVar(&port, "port", 0, "Listen port (overrides config)")

	rootCmd.AddCommand(newServeCmd(&configPath, &port))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
