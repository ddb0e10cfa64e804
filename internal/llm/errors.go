package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// The error types below are the provider failure modes callers branch
// on: retry middleware decides retryability from them and enrichment
// turns them into per-command warnings.

// ErrRateLimit: the provider returned 429. RetryAfter is zero when the
// provider didn't say how long to back off.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse: the model's output was not the JSON the schema
// asked for. Content keeps the offending bytes for diagnostics.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("response did not match schema: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable: the endpoint errored or was unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "provider unavailable"
	}
	return fmt.Sprintf("provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded: generation hit the MaxTokens cap, so Content
// is almost certainly truncated JSON. Raising the cap, not retrying,
// is the fix.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "response truncated at max tokens"
}
