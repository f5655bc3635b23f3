package model

import "time"

// Config holds the complete runtime configuration
type Config struct {
	Search SearchConfig `yaml:"search"`
	Cache  CacheConfig  `yaml:"cache"`
	Server ServerConfig `yaml:"server"`
	Output OutputConfig `yaml:"output"`
}

// SearchConfig configures the upstream search provider
type SearchConfig struct {
	// Provider name: "gemini", "openai"
	Provider string `yaml:"provider"`

	// Model name (provider-specific, empty uses the provider default)
	Model string `yaml:"model"`

	// APIKey for the provider (recommended: env var instead)
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL for custom endpoints
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout per upstream request
	Timeout time.Duration `yaml:"timeout"`

	// RequestsPerSecond limits upstream call rate (0 disables limiting)
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// Burst for the rate limiter
	Burst int `yaml:"burst"`
}

// CacheConfig configures the query result cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir,omitempty"` // Non-empty enables the disk layer
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr     string `yaml:"addr"`
	JSONLogs bool   `yaml:"json_logs"`
}

// OutputConfig configures CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Provider:          "gemini",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 2,
			Burst:             3,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   24 * time.Hour,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8000",
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
