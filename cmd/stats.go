package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bashlore/bashlore/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz history and weak spots",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		st, err := s.Stats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}
		if st.Runs == 0 {
			fmt.Println("No quiz history yet. Play one with: bashlore quiz")
			return nil
		}

		fmt.Printf("Runs:     %d\n", st.Runs)
		fmt.Printf("Answered: %d (%d correct", st.Attempts, st.Correct)
		if st.Attempts > 0 {
			fmt.Printf(", %.0f%%", 100*float64(st.Correct)/float64(st.Attempts))
		}
		fmt.Println(")")

		if len(st.ByType) > 0 {
			fmt.Println()
			fmt.Println("By question type")
			fmt.Println(strings.Repeat("─", 44))
			types := make([]string, 0, len(st.ByType))
			for t := range st.ByType {
				types = append(types, t)
			}
			sort.Strings(types)
			for _, t := range types {
				ts := st.ByType[t]
				fmt.Printf("%-22s  %4d / %-4d", t, ts.Correct, ts.Attempts)
				if ts.Attempts > 0 {
					fmt.Printf("  %3.0f%%", 100*float64(ts.Correct)/float64(ts.Attempts))
				}
				fmt.Println()
			}
		}

		if len(st.WeakCommands) > 0 {
			fmt.Println()
			fmt.Println("Commands to revisit: " + strings.Join(st.WeakCommands, ", "))
		}

		runs, err := s.RecentRuns(ctx, 5)
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
		if len(runs) > 0 {
			fmt.Println()
			fmt.Println("Recent runs")
			fmt.Println(strings.Repeat("─", 44))
			for _, r := range runs {
				fmt.Printf("%s  %2d / %-2d\n",
					r.StartedAt.Local().Format("2006-01-02 15:04"), r.Correct, r.Questions)
			}
		}
		return nil
	},
}
