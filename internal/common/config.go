// Package common provides shared utilities for Strata
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Strata
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Cache       CacheConfig   `toml:"cache"`
	Clients     ClientsConfig `toml:"clients"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds the path for the saved-portfolio store.
type StorageConfig struct {
	Path string `toml:"path"`
}

// CacheConfig holds quote cache configuration.
type CacheConfig struct {
	TTL string `toml:"ttl"`
}

// GetTTL parses and returns the cache TTL duration.
func (c *CacheConfig) GetTTL() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Yahoo YahooConfig `toml:"yahoo"`
	LLM   LLMConfig   `toml:"llm"`
}

// YahooConfig holds the market-data client configuration
type YahooConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *YahooConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LLMConfig holds configuration for the AI analysis provider.
// Provider is "groq" or "gemini".
type LLMConfig struct {
	Provider string `toml:"provider"`
	APIKey   string `toml:"api_key"`
	Model    string `toml:"model"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 5000,
		},
		Storage: StorageConfig{
			Path: "data/portfolios",
		},
		Cache: CacheConfig{
			TTL: "300s",
		},
		Clients: ClientsConfig{
			Yahoo: YahooConfig{
				BaseURL:   "https://query1.finance.yahoo.com",
				RateLimit: 5,
				Timeout:   "30s",
			},
			LLM: LLMConfig{
				Provider: "groq",
				Model:    "llama-3.3-70b-versatile",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("STRATA_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("STRATA_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("STRATA_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("STRATA_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("STRATA_DATA_PATH"); path != "" {
		config.Storage.Path = path
	}

	if ttl := os.Getenv("STRATA_CACHE_TTL"); ttl != "" {
		config.Cache.TTL = ttl
	}

	if provider := os.Getenv("STRATA_LLM_PROVIDER"); provider != "" {
		config.Clients.LLM.Provider = strings.ToLower(provider)
	}
}

// ResolveAPIKey resolves the LLM API key from environment or config fallback.
// Environment variables take priority so deployments never need keys on disk.
func ResolveAPIKey(provider string, fallback string) (string, error) {
	providerToEnv := map[string][]string{
		"groq":   {"GROQ_API_KEY", "STRATA_GROQ_API_KEY"},
		"gemini": {"GEMINI_API_KEY", "STRATA_GEMINI_API_KEY", "GOOGLE_API_KEY"},
	}

	if envVarNames, ok := providerToEnv[strings.ToLower(provider)]; ok {
		for _, envVarName := range envVarNames {
			if envValue := os.Getenv(envVarName); envValue != "" {
				return envValue, nil
			}
		}
	}

	if fallback != "" {
		return fallback, nil
	}

	return "", fmt.Errorf("API key for provider '%s' not found in environment or config", provider)
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
