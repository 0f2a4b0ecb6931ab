// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package textgen wraps the text- and image-model collaborators behind
// small interfaces the generation pipeline can fake in tests.
package textgen

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/vinterdal/bloggverk/internal/config"
)

const (
	// maxTokens bounds every completion request.
	maxTokens = 4000

	httpTimeout = 120 * time.Second
)

// Provider generates one completion for a system prompt and a user prompt.
type Provider interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// ImageProvider generates one image and returns its URL.
type ImageProvider interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// New builds the configured text provider, rate limited per config.
func New(cfg *config.Config) (Provider, error) {
	var p Provider
	switch cfg.TextProvider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("text provider anthropic selected but BLOGGVERK_ANTHROPIC_API_KEY is empty")
		}
		p = newAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("text provider openai selected but BLOGGVERK_OPENAI_API_KEY is empty")
		}
		p = newOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.ImageModel)
	default:
		return nil, fmt.Errorf("unknown text provider %q", cfg.TextProvider)
	}

	if cfg.TextRateLimit > 0 {
		p = &limitedProvider{
			inner:   p,
			limiter: rate.NewLimiter(rate.Limit(cfg.TextRateLimit), 1),
		}
	}
	return p, nil
}

// NewImageProvider builds the portrait generator, nil when no OpenAI key is
// configured. Callers must treat a nil provider as "images disabled".
func NewImageProvider(cfg *config.Config) ImageProvider {
	if !cfg.ImageEnabled() {
		return nil
	}
	return newOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.ImageModel)
}

// limitedProvider throttles completions with a token bucket.
type limitedProvider struct {
	inner   Provider
	limiter *rate.Limiter
}

func (l *limitedProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}
	return l.inner.Complete(ctx, system, prompt)
}
