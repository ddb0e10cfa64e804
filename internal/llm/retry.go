package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retryDecision classifies a failure for the retry loop.
type retryDecision int

const (
	giveUp retryDecision = iota
	retryOnce
	retryAlways
)

// RetryProvider re-issues failed requests with jittered exponential
// backoff. Schema failures get exactly one extra attempt; rate limits
// and outages get the full budget.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p with the retry policy in cfg.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, cfg: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidBudget := 1

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classify(err) {
		case giveUp:
			return nil, err
		case retryOnce:
			if invalidBudget == 0 {
				return nil, err
			}
			invalidBudget--
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

func classify(err error) retryDecision {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return giveUp
	}

	// Hitting the token cap repeats identically; retrying wastes quota.
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return giveUp
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return retryOnce
	}

	// Rate limits, outages, and plain network errors are transient.
	return retryAlways
}

// wait computes the backoff before the next attempt. A provider-given
// Retry-After wins; otherwise exponential growth capped at MaxWait,
// with ±20% jitter.
func (r *RetryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(r.cfg.InitialWait)
	for i := 0; i < attempt; i++ {
		d *= r.cfg.Multiplier
	}
	if max := float64(r.cfg.MaxWait); d > max {
		d = max
	}
	d *= 1 + 0.2*(2*rand.Float64()-1)
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}
