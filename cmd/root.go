package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bashlore/bashlore/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "bashlore",
	Short: "Learn the shell from your own command history",
	Long: "Bashlore mines the bash commands you have actually run, groups them\n" +
		"into learning categories, and quizzes you on the ones you use most.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BASHLORE_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the CLI logger; core packages never log.
func newLogger(cmd *cobra.Command) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BASHLORE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
