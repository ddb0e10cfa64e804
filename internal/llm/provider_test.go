package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockReplaysScriptInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"name":"rsync"}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"name":"scp"}`)},
	)

	first, err := mock.Generate(context.Background(), Request{Prompt: "describe rsync"})
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if string(first.Content) != `{"name":"rsync"}` {
		t.Errorf("first content = %s", first.Content)
	}
	if first.Usage.InputTokens != 10 || first.Usage.TotalTokens != 15 {
		t.Errorf("usage = %+v", first.Usage)
	}
	if first.Truncated {
		t.Error("scripted response should not report truncation")
	}

	second, err := mock.Generate(context.Background(), Request{Prompt: "describe scp"})
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if string(second.Content) != `{"name":"scp"}` {
		t.Errorf("second content = %s", second.Content)
	}
}

func TestMockExhaustedScript(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{Prompt: "anything"})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}
}

func TestMockRecordsRequests(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	_, _ = mock.Generate(context.Background(), Request{
		System: "You are a shell command reference.",
		Prompt: "Describe the zoxide command.",
	})

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d", mock.CallCount())
	}
	got := mock.LastCall()
	if got.System != "You are a shell command reference." {
		t.Errorf("system = %q", got.System)
	}
	if got.Prompt != "Describe the zoxide command." {
		t.Errorf("prompt = %q", got.Prompt)
	}
}

func TestMockScriptedError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{}},
	)
	_, err := mock.Generate(context.Background(), Request{Prompt: "x"})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}
	if mock.ModelID() != "mock" {
		t.Errorf("model id = %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Errorf("bare context purpose = %q", p)
	}
	ctx = WithPurpose(ctx, "enrich")
	if p := PurposeFrom(ctx); p != "enrich" {
		t.Errorf("purpose = %q", p)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llamafile"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a discovered config")
	}
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g-key" {
		t.Errorf("cfg = %+v", cfg)
	}
}
