// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"BLOGGVERK_DB_PATH" envDefault:"./data/bloggverk.db"`
	ServerHost string `env:"BLOGGVERK_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"BLOGGVERK_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"BLOGGVERK_ENV" envDefault:"development"`
	LogLevel   string `env:"BLOGGVERK_LOG_LEVEL" envDefault:"info"`
	UploadsDir string `env:"BLOGGVERK_UPLOADS_DIR" envDefault:"./uploads"`
	BaseURL    string `env:"BLOGGVERK_BASE_URL"` // external scheme+host for absolute links; derived per request when empty

	// Admin API
	AdminToken string `env:"BLOGGVERK_ADMIN_TOKEN,required"` // bearer token for the admin JSON API

	// Cache configuration
	RedisURL     string `env:"BLOGGVERK_REDIS_URL"`                         // optional Redis URL for distributed caching
	CachePrefix  string `env:"BLOGGVERK_CACHE_PREFIX" envDefault:"bv:"`     // Redis key prefix
	CacheTTL     int    `env:"BLOGGVERK_CACHE_TTL" envDefault:"3600"`       // website resolution TTL in seconds
	CacheMaxSize int    `env:"BLOGGVERK_CACHE_MAX_SIZE" envDefault:"10000"` // max memory cache entries

	// Text-generation collaborator
	TextProvider    string  `env:"BLOGGVERK_TEXT_PROVIDER" envDefault:"anthropic"` // anthropic | openai
	AnthropicAPIKey string  `env:"BLOGGVERK_ANTHROPIC_API_KEY"`
	AnthropicModel  string  `env:"BLOGGVERK_ANTHROPIC_MODEL" envDefault:"claude-sonnet-4-5"`
	OpenAIAPIKey    string  `env:"BLOGGVERK_OPENAI_API_KEY"`
	OpenAIModel     string  `env:"BLOGGVERK_OPENAI_MODEL" envDefault:"gpt-4o"`
	TextRateLimit   float64 `env:"BLOGGVERK_TEXT_RATE_LIMIT" envDefault:"1"` // model calls per second

	// Image-generation collaborator (author portraits); disabled when no key.
	ImageModel string `env:"BLOGGVERK_IMAGE_MODEL" envDefault:"dall-e-3"`

	// Generation options
	GenerateAuthor bool `env:"BLOGGVERK_GENERATE_AUTHOR" envDefault:"true"`

	// Scheduler
	SchedulerEnabled bool `env:"BLOGGVERK_SCHEDULER" envDefault:"true"`
}

// MinAdminTokenLength is the minimum accepted admin token length.
const MinAdminTokenLength = 32

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// ResolveTTL returns the website resolution cache TTL as a duration.
func (c Config) ResolveTTL() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// ImageEnabled reports whether author portrait generation is available.
func (c Config) ImageEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.AdminToken) < MinAdminTokenLength {
		return nil, fmt.Errorf("BLOGGVERK_ADMIN_TOKEN must be at least %d bytes long, got %d; "+
			"generate one with: openssl rand -base64 32",
			MinAdminTokenLength, len(cfg.AdminToken))
	}

	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("BLOGGVERK_CACHE_TTL must be positive, got %d", cfg.CacheTTL)
	}

	switch cfg.TextProvider {
	case "anthropic", "openai":
	default:
		return nil, fmt.Errorf("BLOGGVERK_TEXT_PROVIDER must be anthropic or openai, got %q", cfg.TextProvider)
	}

	return cfg, nil
}
