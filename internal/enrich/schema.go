package enrich

import (
	"github.com/bashlore/bashlore/internal/knowledge"
	"github.com/bashlore/bashlore/internal/llm"
)

// EntrySchema defines the JSON schema for a generated knowledge entry.
// The category enum pins the LLM to the fixed category set.
var EntrySchema = buildEntrySchema()

func buildEntrySchema() *llm.Schema {
	categories := make([]any, 0, 11)
	for _, c := range knowledge.CategoryNames() {
		categories = append(categories, c)
	}
	return &llm.Schema{
		Name:        "knowledge-entry",
		Description: "Reference entry describing a shell command: what it does, its common flags, and example usage",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "The base command name, exactly as typed",
				},
				"category": map[string]any{
					"type": "string",
					"enum": categories,
				},
				"description": map[string]any{
					"type":        "string",
					"description": "One sentence describing what the command does",
				},
				"flags": map[string]any{
					"type":                 "object",
					"additionalProperties": map[string]any{"type": "string"},
					"description":          "Common flags mapped to short descriptions (3-8 flags)",
				},
				"patterns": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "1-3 realistic example invocations",
				},
			},
			"required":             []any{"name", "category", "description"},
			"additionalProperties": false,
		},
	}
}
