package cli

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfig_EnvOverridesNestedKeys(t *testing.T) {
	// No config file: only defaults and TRUSTSIGNAL_* environment apply
	oldCfgFile := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "config.yaml")
	t.Cleanup(func() {
		cfgFile = oldCfgFile
		viper.Reset()
	})

	t.Setenv("TRUSTSIGNAL_SEARCH_PROVIDER", "openai")
	t.Setenv("TRUSTSIGNAL_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("TRUSTSIGNAL_CACHE_ENABLED", "false")

	initConfig()
	cfg := loadConfig()

	if cfg.Search.Provider != "openai" {
		t.Errorf("search.provider = %q, want %q", cfg.Search.Provider, "openai")
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("server.addr = %q, want %q", cfg.Server.Addr, "127.0.0.1:9000")
	}
	if cfg.Cache.Enabled {
		t.Error("cache.enabled = true, want false from environment")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	oldCfgFile := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "config.yaml")
	t.Cleanup(func() {
		cfgFile = oldCfgFile
		viper.Reset()
	})

	initConfig()
	cfg := loadConfig()

	if cfg.Search.Provider != "gemini" {
		t.Errorf("search.provider = %q, want the gemini default", cfg.Search.Provider)
	}
	if !cfg.Cache.Enabled {
		t.Error("cache.enabled = false, want the enabled default")
	}
}
