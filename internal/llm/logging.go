package llm

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LoggingProvider is a decorator that records every LLM request.
type LoggingProvider struct {
	inner  Provider
	logger *log.Logger
}

// WithLogging wraps a Provider with structured request logging. A nil
// logger disables it.
func WithLogging(p Provider, logger *log.Logger) Provider {
	if logger == nil {
		return p
	}
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	fields := []any{
		"purpose", purpose,
		"model", l.inner.ModelID(),
		"latency", time.Since(start).Round(time.Millisecond),
	}
	if resp != nil {
		fields = append(fields,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
		)
		if cost := LookupCost(resp.Model); cost != nil {
			fields = append(fields, "cost_usd",
				cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
		}
	}
	if err != nil {
		l.logger.Warn("llm request failed", append(fields, "err", err)...)
	} else {
		l.logger.Debug("llm request", fields...)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
