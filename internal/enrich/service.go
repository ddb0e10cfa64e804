// Package enrich fills knowledge-base gaps: for commands the built-in
// data can't categorize, it asks an LLM for a reference entry and
// collects the results into an overlay the rest of the tool can layer
// over the base lookup.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/bashlore/bashlore/internal/analyzer"
	"github.com/bashlore/bashlore/internal/knowledge"
	"github.com/bashlore/bashlore/internal/llm"
)

// Service generates knowledge entries for unknown commands.
type Service struct {
	provider llm.Provider
}

// NewService creates an enrichment service on the given provider.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// maxObserved caps how many sample invocations go into one prompt.
const maxObserved = 5

// Enrich requests an entry for every uncategorized command in cmds and
// returns them as an overlay. Per-command failures become warnings, not
// errors; the returned overlay holds whatever succeeded.
func (s *Service) Enrich(ctx context.Context, cmds []analyzer.Command) (*knowledge.Overlay, []string) {
	targets := collectTargets(cmds)

	overlay := &knowledge.Overlay{}
	var warnings []string
	for _, t := range targets {
		entry, err := s.enrichOne(ctx, t.name, t.observed)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("enrich %s: %v", t.name, err))
			continue
		}
		overlay.Add(entry)
	}
	return overlay, warnings
}

type target struct {
	name     string
	observed []string
}

// collectTargets gathers uncategorized base commands with sample
// invocations, ordered by name for stable prompts across runs.
func collectTargets(cmds []analyzer.Command) []target {
	byName := make(map[string]*target)
	for _, c := range cmds {
		if c.Category != knowledge.CategoryUncategorized || c.Base == "" {
			continue
		}
		t, ok := byName[c.Base]
		if !ok {
			t = &target{name: c.Base}
			byName[c.Base] = t
		}
		if len(t.observed) < maxObserved {
			t.observed = append(t.observed, c.FirstSeen)
		}
	}
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]target, 0, len(names))
	for _, n := range names {
		out = append(out, *byName[n])
	}
	return out
}

func (s *Service) enrichOne(ctx context.Context, name string, observed []string) (knowledge.Entry, error) {
	ctx = llm.WithPurpose(ctx, "enrich")

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(name, observed),
		Schema:      EntrySchema,
		MaxTokens:   1024,
		Temperature: 0.2,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return knowledge.Entry{}, err
	}
	if resp.Truncated {
		return knowledge.Entry{}, &llm.ErrMaxTokensExceeded{Content: resp.Content}
	}

	var entry knowledge.Entry
	if err := json.Unmarshal(resp.Content, &entry); err != nil {
		return knowledge.Entry{}, fmt.Errorf("decode entry: %w", err)
	}
	// The model sometimes renames the command; the overlay is keyed by
	// what the user actually typed.
	entry.Name = name
	if !validCategory(entry.Category) {
		return knowledge.Entry{}, fmt.Errorf("invalid category %q", entry.Category)
	}
	if entry.Description == "" {
		return knowledge.Entry{}, fmt.Errorf("empty description")
	}
	return entry, nil
}

func validCategory(cat string) bool {
	for _, c := range knowledge.CategoryNames() {
		if c == cat {
			return true
		}
	}
	return false
}
