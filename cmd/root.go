package cmd

import (
	"github.com/abhisek/prepwise/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prepwise",
	Short: "AI study companion for exam prep",
	Long:  "Prepwise — AI-native terminal companion that turns an exam goal into a day-by-day study plan with material, quizzes, and doubt solving.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPWISE_DB env var)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(doubtCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PREPWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
