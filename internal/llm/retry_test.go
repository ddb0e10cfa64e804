package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func entryJSON() MockResponse {
	return MockResponse{Content: json.RawMessage(`{"name":"rg","category":"Search & Navigation"}`)}
}

func TestRetryPassesThroughSuccess(t *testing.T) {
	mock := NewMockProvider(entryJSON())
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{Prompt: "rg"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) == "" || mock.CallCount() != 1 {
		t.Errorf("content = %s, calls = %d", resp.Content, mock.CallCount())
	}
}

func TestRetryRecoversFromOutage(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		entryJSON(),
	)
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Request{Prompt: "rg"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d", mock.CallCount())
	}
}

func TestRetryExhaustsBudget(t *testing.T) {
	down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	mock := NewMockProvider(down, down, down, down)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{Prompt: "rg"})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want the full MaxAttempts budget", mock.CallCount())
	}
}

func TestRetryGivesUpOnTruncation(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"name":"r`)}},
		entryJSON(),
	)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{Prompt: "rg"})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, truncation must not be retried", mock.CallCount())
	}
}

func TestRetrySchemaFailureGetsOneExtraAttempt(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`nope`), Err: errors.New("schema")}}
	mock := NewMockProvider(bad, bad, entryJSON())
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{Prompt: "rg"})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want exactly one extra attempt", mock.CallCount())
	}
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		entryJSON(),
	)
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{Prompt: "rg"})
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		entryJSON(),
	)
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Request{Prompt: "rg"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d", mock.CallCount())
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want retryDecision
	}{
		{"canceled context", context.Canceled, giveUp},
		{"deadline", context.DeadlineExceeded, giveUp},
		{"token cap", &ErrMaxTokensExceeded{}, giveUp},
		{"schema mismatch", &ErrInvalidResponse{Err: errors.New("x")}, retryOnce},
		{"rate limit", &ErrRateLimit{}, retryAlways},
		{"outage", &ErrProviderUnavailable{}, retryAlways},
		{"plain error", errors.New("dial tcp: refused"), retryAlways},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.err); got != tt.want {
				t.Errorf("classify(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestWaitBounds(t *testing.T) {
	r := &RetryProvider{cfg: fastRetry()}
	for attempt := 0; attempt < 5; attempt++ {
		d := r.wait(attempt, errors.New("x"))
		if d < 0 || d > 12*time.Millisecond {
			t.Errorf("wait(%d) = %v, outside jittered cap", attempt, d)
		}
	}
	if d := r.wait(0, &ErrRateLimit{RetryAfter: 7 * time.Millisecond}); d != 7*time.Millisecond {
		t.Errorf("wait with Retry-After = %v", d)
	}
}

func TestRetryModelID(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock" {
		t.Errorf("model id = %q", p.ModelID())
	}
}
