package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bashlore/bashlore/internal/analyzer"
	"github.com/bashlore/bashlore/internal/extract"
	"github.com/bashlore/bashlore/internal/knowledge"
	"github.com/bashlore/bashlore/internal/quiz"
	"github.com/bashlore/bashlore/internal/report"
	"github.com/bashlore/bashlore/internal/shellsplit"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze session history and write a learning report",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		data, err := runPipeline(cmd, logger)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		if err := report.WriteHTML(f, *data); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("report written", "path", output)

		fmt.Println(report.Summary(*data))
		return nil
	},
}

func init() {
	addPipelineFlags(analyzeCmd)
	analyzeCmd.Flags().StringP("output", "o", "bashlore-report.html", "HTML report output path")
}

// addPipelineFlags registers the flags shared by analyze and quiz.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().String("sessions", "", "Sessions directory (default ~/.claude/projects)")
	cmd.Flags().String("project", "", "Only read sessions whose project directory matches this substring")
	cmd.Flags().IntP("limit", "n", 0, "Max session files to read, newest first (0 = all)")
	cmd.Flags().Int("questions", quiz.DefaultCount, "Number of quiz questions to generate")
	cmd.Flags().Int64("seed", 0, "Quiz random seed (0 = time-based)")
	cmd.Flags().String("overlay", "", "Knowledge overlay JSON path (default next to the database)")
}

// runPipeline runs extract, split, analyze, and quiz generation with
// the shared flag set. Degradations surface as report warnings, not
// errors.
func runPipeline(cmd *cobra.Command, logger *log.Logger) (*report.Data, error) {
	sessionsDir, err := resolveSessionsDir(cmd)
	if err != nil {
		return nil, err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	count, _ := cmd.Flags().GetInt("questions")
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Info("quiz seed chosen", "seed", seed)
	}

	logger.Debug("reading sessions", "dir", sessionsDir, "limit", limit)
	sessions, err := extract.FromDir(sessionsDir, limit)
	if err != nil {
		return nil, fmt.Errorf("read sessions: %w", err)
	}
	logger.Info("sessions read", "count", len(sessions))

	lookup, err := loadLookup(cmd, logger)
	if err != nil {
		return nil, err
	}

	a := analyzer.New(lookup)
	var warnings []string
	for _, s := range sessions {
		for _, c := range s.Commands {
			result := shellsplit.Split(c.Command)
			warnings = append(warnings, result.Warnings...)
			a.Ingest(result.Atoms)
		}
	}
	warnings = append(warnings, a.Warnings()...)
	cmds := a.Result()
	logger.Info("commands analyzed", "distinct", len(cmds), "total", a.Total())

	set, err := quiz.Generate(cmds, lookup, quiz.Options{Count: count, Seed: seed})
	if err != nil {
		return nil, fmt.Errorf("generate quiz: %w", err)
	}
	warnings = append(warnings, set.Warnings...)
	if set.Shortfall > 0 {
		logger.Warn("quiz shortfall", "requested", set.Requested, "generated", len(set.Questions))
	}

	for _, w := range warnings {
		logger.Debug("pipeline warning", "detail", w)
	}

	data := &report.Data{
		GeneratedAt:      time.Now(),
		SessionCount:     len(sessions),
		Seed:             seed,
		TotalOccurrences: a.Total(),
		Commands:         cmds,
		Quiz:             set,
		Warnings:         warnings,
	}
	return data, nil
}

// loadLookup merges the base knowledge with the enrichment overlay
// when one exists on disk.
func loadLookup(cmd *cobra.Command, logger *log.Logger) (knowledge.Lookup, error) {
	path, err := resolveOverlayPath(cmd)
	if err != nil {
		return nil, err
	}
	overlay, err := knowledge.LoadOverlay(path)
	if err != nil {
		return nil, fmt.Errorf("load overlay: %w", err)
	}
	if len(overlay.Entries) > 0 {
		logger.Debug("overlay loaded", "path", path, "entries", len(overlay.Entries))
	}
	return knowledge.Merged(knowledge.Base(), overlay), nil
}

func resolveSessionsDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("sessions")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".claude", "projects")
	}

	project, _ := cmd.Flags().GetString("project")
	if project == "" {
		return dir, nil
	}

	// Project directories carry path-encoded names; match by substring.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read sessions dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() && strings.Contains(e.Name(), project) {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("no project directory matching %q under %s", project, dir)
}

// resolveOverlayPath returns the overlay file path: --overlay flag,
// then BASHLORE_OVERLAY, then the default next to the database.
func resolveOverlayPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("overlay"); p != "" {
		return p, nil
	}
	if p := os.Getenv("BASHLORE_OVERLAY"); p != "" {
		return p, nil
	}
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(dbPath), "overlay.json"), nil
}
