package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// NewProvider builds the configured provider wrapped in the standard
// middleware stack (retry outermost, then logging). The mock provider
// skips the middleware so tests see every call.
func NewProvider(ctx context.Context, cfg Config, logger *log.Logger) (Provider, error) {
	if cfg.Provider == "mock" {
		return NewMockProvider(), nil
	}

	base, err := newBase(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("llm provider %q: %w", cfg.Provider, err)
	}
	return WithRetry(WithLogging(base, logger), cfg.Retry), nil
}

func newBase(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini)
	default:
		return nil, errors.New("unknown provider")
	}
}
