// Package llm abstracts the hosted model APIs behind one Provider
// interface. The tool's only LLM consumer is knowledge enrichment,
// which sends a single prompt and expects one schema-shaped JSON
// object back, so the interface is built around exactly that.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is one configured model endpoint.
type Provider interface {
	// Generate runs one prompt and returns the model's output. When
	// the request carries a Schema the content is validated against it
	// before being returned.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the resolved model identifier.
	ModelID() string
}

// Request is a single-turn generation request. There is no
// conversation history; every enrichment call stands alone.
type Request struct {
	// System sets the model's role.
	System string

	// Prompt is the user-turn text.
	Prompt string

	// Schema, when set, makes the provider use its structured-output
	// mechanism and validate the result. Nil means free text.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means the provider default.
	Temperature float64
}

// Schema names a JSON Schema the response must satisfy.
type Schema struct {
	// Name is the kebab-case identifier, e.g. "knowledge-entry". It
	// doubles as the structured-output name where the API wants one.
	Name string

	// Description tells the model what the object represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output for one request.
type Response struct {
	// Content is schema-validated JSON when the request had a Schema,
	// raw text bytes otherwise.
	Content json.RawMessage

	// Usage is the token count the provider reported.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// Truncated is set when generation stopped on the MaxTokens limit,
	// which usually means Content is cut-off JSON.
	Truncated bool
}

// Usage is the token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
