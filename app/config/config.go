package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// Config holds all configuration for the storefront client
type Config struct {
	// API
	APIBaseURL  string        `env:"FRESHMART_API_URL" required:"true"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" default:"30s"`

	// Tokens
	TokenExpirySkew time.Duration `env:"TOKEN_EXPIRY_SKEW" default:"30s"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// State persistence
	StateBackend string `env:"STATE_BACKEND" default:"file"`
	StatePath    string `env:"STATE_PATH" default:".freshmart/state.json"`
	RedisURL     string `env:"REDIS_URL"`
}

// State backends
const (
	StateBackendFile  = "file"
	StateBackendRedis = "redis"
)

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// API configuration
	config.APIBaseURL = os.Getenv("FRESHMART_API_URL")
	if config.APIBaseURL == "" {
		return nil, fmt.Errorf("FRESHMART_API_URL is required")
	}

	var err error
	httpTimeoutStr := getEnvOrDefault("HTTP_TIMEOUT", "30s")
	config.HTTPTimeout, err = time.ParseDuration(httpTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	// Token configuration
	skewStr := getEnvOrDefault("TOKEN_EXPIRY_SKEW", "30s")
	config.TokenExpirySkew, err = time.ParseDuration(skewStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_EXPIRY_SKEW: %w", err)
	}

	// Logging configuration
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// State persistence configuration
	config.StateBackend = strings.ToLower(getEnvOrDefault("STATE_BACKEND", StateBackendFile))
	config.StatePath = getEnvOrDefault("STATE_PATH", ".freshmart/state.json")
	config.RedisURL = os.Getenv("REDIS_URL")

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate API base URL
	parsed, err := url.Parse(c.APIBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid API base URL: %s", c.APIBaseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("API base URL must use http or https: %s", c.APIBaseURL)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate HTTP timeout (minimum 1 second)
	if c.HTTPTimeout < time.Second {
		return fmt.Errorf("HTTP timeout must be at least 1 second, got: %v", c.HTTPTimeout)
	}

	// Skew may be zero but never negative
	if c.TokenExpirySkew < 0 {
		return fmt.Errorf("token expiry skew must not be negative, got: %v", c.TokenExpirySkew)
	}

	// Validate state backend
	switch c.StateBackend {
	case StateBackendFile:
		if c.StatePath == "" {
			return fmt.Errorf("STATE_PATH is required for the file backend")
		}
	case StateBackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis backend")
		}
	default:
		return fmt.Errorf("invalid state backend: %s (must be one of: %s, %s)", c.StateBackend, StateBackendFile, StateBackendRedis)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
