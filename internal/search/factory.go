package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/cache"
	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/model"
)

// Config holds search provider configuration
type Config struct {
	// Provider name: "gemini", "openai"
	Provider string

	// Model name (provider-specific, empty uses the provider default)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout per upstream request
	Timeout time.Duration

	// RequestsPerSecond limits upstream call rate (0 disables limiting)
	RequestsPerSecond float64

	// Burst for the rate limiter
	Burst int
}

// ConfigFromModel converts model.SearchConfig to search.Config
func ConfigFromModel(cfg model.SearchConfig) Config {
	return Config{
		Provider:          cfg.Provider,
		Model:             cfg.Model,
		APIKey:            cfg.APIKey,
		BaseURL:           cfg.BaseURL,
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	}
}

// NewProvider creates the base search provider named in the configuration
func NewProvider(ctx context.Context, cfg Config, log *zap.Logger) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "gemini":
		return NewGeminiProvider(ctx, cfg, log)
	case "openai":
		return NewOpenAIProvider(cfg, log)
	default:
		return nil, fmt.Errorf("unknown search provider: %s (supported: gemini, openai)", cfg.Provider)
	}
}

// Build assembles the full provider stack: base provider, rate limiting,
// then query caching so cache hits never consume rate budget.
func Build(ctx context.Context, cfg Config, cacheCfg model.CacheConfig, log *zap.Logger) (Provider, error) {
	provider, err := NewProvider(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if cfg.RequestsPerSecond > 0 {
		provider = WithRateLimit(provider, cfg.RequestsPerSecond, cfg.Burst)
	}

	if cacheCfg.Enabled {
		var store cache.Cache
		if cacheCfg.Dir != "" {
			store = cache.NewLayeredCache(cacheCfg.MemoryTTL, cacheCfg.Dir, cacheCfg.DiskTTL)
		} else {
			store = cache.NewMemoryCache(cacheCfg.MemoryTTL)
		}
		provider = WithCache(provider, store, log)
	}

	return provider, nil
}
