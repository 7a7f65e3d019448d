package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ssantos/wordkids/internal/repo"
)

var rootCmd = &cobra.Command{
	Use:   "wordkids",
	Short: "English vocabulary trainer for kids",
	Long:  "WordKids — terminal app that teaches Brazilian kids English words through flashcards, games and pronunciation practice.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// Local overrides (API keys, DB path) may live in a .env file.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDKIDS_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WORDKIDS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, repo.EnsureDir(p)
	}
	return repo.DefaultDBPath()
}

// openStore opens the SQLite store at the resolved path.
func openStore(cmd *cobra.Command) (*repo.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return repo.Open("sqlite", dbPath)
}
