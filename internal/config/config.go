// Package config loads KeshoMarket configuration from a YAML file, a .env
// file, and environment variable overrides, in that order of precedence
// (environment wins).
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	LLM     LLMConfig     `yaml:"llm"`
	Catalog CatalogConfig `yaml:"catalog"`
	Logging LoggingConfig `yaml:"logging"`
}

// LLMConfig configures the assistant gateway.
type LLMConfig struct {
	APIKey       string `yaml:"api_key"`
	Model        string `yaml:"model"`
	Timeout      string `yaml:"timeout"`
	WebGrounding bool   `yaml:"web_grounding"`
}

// CatalogConfig configures the catalog provider chain.
type CatalogConfig struct {
	// SeedPath points at a YAML seed inventory; empty means the built-in
	// demo seed.
	SeedPath string `yaml:"seed_path"`
	// DatabasePath, when set, switches the provider to SQLite.
	DatabasePath string `yaml:"database_path"`
	// CacheTTL bounds snapshot staleness, e.g. "30s". Empty disables the
	// cache layer.
	CacheTTL string `yaml:"cache_ttl"`
	// Watch reloads the seed file on change.
	Watch bool `yaml:"watch"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LLM: LLMConfig{
			Model:        "gemini-3-flash-preview",
			Timeout:      "60s",
			WebGrounding: true,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path (skipped when path is empty or missing),
// merges a .env file if one exists, and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env
		case err != nil:
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides config fields from the environment.
func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("KESHO_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("KESHO_LLM_TIMEOUT"); v != "" {
		c.LLM.Timeout = v
	}
	if v := os.Getenv("KESHO_SEED_PATH"); v != "" {
		c.Catalog.SeedPath = v
	}
	if v := os.Getenv("KESHO_DB_PATH"); v != "" {
		c.Catalog.DatabasePath = v
	}
	if v := os.Getenv("KESHO_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// TimeoutDuration parses the LLM timeout, falling back to the default on a
// bad value.
func (l LLMConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(l.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}

// CacheTTLDuration parses the catalog cache TTL; zero means no caching.
func (c CatalogConfig) CacheTTLDuration() time.Duration {
	if c.CacheTTL == "" {
		return 0
	}
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil || d < 0 {
		return 0
	}
	return d
}
