// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package textgen

import (
	"context"
	"testing"

	"golang.org/x/time/rate"

	"github.com/vinterdal/bloggverk/internal/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		TextProvider:    "anthropic",
		AnthropicAPIKey: "sk-ant-test",
		AnthropicModel:  "claude-sonnet-4-5",
		OpenAIModel:     "gpt-4o",
		ImageModel:      "dall-e-3",
	}
}

func TestNew_AnthropicRequiresKey(t *testing.T) {
	cfg := baseConfig()
	cfg.AnthropicAPIKey = ""
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error without anthropic key")
	}
}

func TestNew_OpenAIRequiresKey(t *testing.T) {
	cfg := baseConfig()
	cfg.TextProvider = "openai"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error without openai key")
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	cfg := baseConfig()
	cfg.TextProvider = "markov-chain"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNew_RateLimitWrapping(t *testing.T) {
	cfg := baseConfig()
	cfg.TextRateLimit = 0.5
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := p.(*limitedProvider); !ok {
		t.Errorf("expected rate-limited provider, got %T", p)
	}

	cfg.TextRateLimit = 0
	p, err = New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := p.(*limitedProvider); ok {
		t.Error("zero rate limit should not wrap the provider")
	}
}

func TestNewImageProvider_DisabledWithoutKey(t *testing.T) {
	cfg := baseConfig()
	if p := NewImageProvider(cfg); p != nil {
		t.Errorf("expected nil provider, got %T", p)
	}
	cfg.OpenAIAPIKey = "sk-test"
	if p := NewImageProvider(cfg); p == nil {
		t.Error("expected image provider with an OpenAI key")
	}
}

type countingProvider struct {
	calls int
}

func (c *countingProvider) Complete(context.Context, string, string) (string, error) {
	c.calls++
	return "ok", nil
}

func TestLimitedProvider_WaitHonorsContext(t *testing.T) {
	inner := &countingProvider{}
	p := &limitedProvider{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(0.001), 1), // one token, ~forever to refill
	}

	// First call consumes the burst token.
	if _, err := p.Complete(context.Background(), "", "x"); err != nil {
		t.Fatalf("first call failed: %v", err)
	}

	// Second call would block; a canceled context must abort it.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Complete(ctx, "", "x"); err == nil {
		t.Fatal("expected error from canceled wait")
	}
	if inner.calls != 1 {
		t.Errorf("inner called %d times, want 1", inner.calls)
	}
}
