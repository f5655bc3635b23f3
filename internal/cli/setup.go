package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/logger"
	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/model"
	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/search"
	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/verify"
)

// loadConfig merges defaults, config file, and environment into one config
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("search.provider"); v != "" {
		cfg.Search.Provider = v
	}
	if v := viper.GetString("search.model"); v != "" {
		cfg.Search.Model = v
	}
	if v := viper.GetString("search.api_key"); v != "" {
		cfg.Search.APIKey = v
	}
	if v := viper.GetString("search.base_url"); v != "" {
		cfg.Search.BaseURL = v
	}
	if viper.IsSet("search.timeout") {
		cfg.Search.Timeout = viper.GetDuration("search.timeout")
	}
	if viper.IsSet("search.requests_per_second") {
		cfg.Search.RequestsPerSecond = viper.GetFloat64("search.requests_per_second")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if v := viper.GetString("cache.dir"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := viper.GetString("server.addr"); v != "" {
		cfg.Server.Addr = v
	}
	if viper.IsSet("server.json_logs") {
		cfg.Server.JSONLogs = viper.GetBool("server.json_logs")
	}
	cfg.Output.Verbose = verbose || viper.GetBool("output.verbose")

	return cfg
}

// resolveAPIKey finds the provider's API key, preferring the conventional
// environment variable over config
func resolveAPIKey(cfg *model.Config) error {
	if cfg.Search.APIKey != "" {
		return nil
	}

	var envVar string
	switch strings.ToLower(cfg.Search.Provider) {
	case "gemini":
		envVar = "GEMINI_API_KEY"
	case "openai":
		envVar = "OPENAI_API_KEY"
	default:
		return fmt.Errorf("unknown search provider: %s", cfg.Search.Provider)
	}

	cfg.Search.APIKey = os.Getenv(envVar)
	if cfg.Search.APIKey == "" {
		return fmt.Errorf("%s environment variable not set", envVar)
	}
	return nil
}

// buildService assembles the provider stack and the verification service
func buildService(ctx context.Context, cfg *model.Config, log *zap.Logger) (*verify.Service, error) {
	provider, err := search.Build(ctx, search.ConfigFromModel(cfg.Search), cfg.Cache, log)
	if err != nil {
		return nil, fmt.Errorf("build search provider: %w", err)
	}

	return verify.New(provider, log), nil
}

// newLogger builds the application logger from config
func newLogger(cfg *model.Config) (*zap.Logger, error) {
	return logger.New(cfg.Server.JSONLogs, cfg.Output.Verbose)
}
