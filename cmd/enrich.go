package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bashlore/bashlore/internal/enrich"
	"github.com/bashlore/bashlore/internal/knowledge"
	"github.com/bashlore/bashlore/internal/llm"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Categorize unknown commands with an LLM and save the results",
	Long: "Enrich asks an LLM to describe and categorize the commands the\n" +
		"built-in knowledge base does not recognize. Results are written to\n" +
		"an overlay file that later analyze and quiz runs pick up.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)
		ctx := cmd.Context()

		provider, err := buildProvider(cmd, logger)
		if err != nil {
			return err
		}

		data, err := runPipeline(cmd, logger)
		if err != nil {
			return err
		}

		service := enrich.NewService(provider)
		overlay, warnings := service.Enrich(ctx, data.Commands)
		for _, w := range warnings {
			logger.Warn("enrichment", "detail", w)
		}
		if len(overlay.Entries) == 0 {
			fmt.Println("Nothing to enrich; every command is already categorized.")
			return nil
		}

		path, err := resolveOverlayPath(cmd)
		if err != nil {
			return err
		}
		existing, err := knowledge.LoadOverlay(path)
		if err != nil {
			return fmt.Errorf("load overlay: %w", err)
		}
		for _, e := range overlay.Entries {
			existing.Add(e)
		}
		if err := existing.Save(path); err != nil {
			return fmt.Errorf("save overlay: %w", err)
		}

		fmt.Printf("Enriched %d commands. Overlay saved to %s\n", len(overlay.Entries), path)
		return nil
	},
}

func init() {
	addPipelineFlags(enrichCmd)
}

// buildProvider constructs the LLM provider from BASHLORE_* env vars,
// falling back to standard provider API key discovery.
func buildProvider(cmd *cobra.Command, logger *log.Logger) (llm.Provider, error) {
	ctx := cmd.Context()

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no LLM provider configured: %w", err)
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}
	logger.Debug("llm provider ready", "provider", cfg.Provider, "model", provider.ModelID())
	return provider, nil
}
