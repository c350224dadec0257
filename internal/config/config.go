package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// WordPress configuration
	WPSiteURL     string
	WPUsername    string
	WPAppPassword string

	// Generator configuration
	GeneratorProvider string
	OpenAIAPIKey      string
	AnthropicAPIKey   string

	// Keyword discovery configuration
	SerpAPIKey  string
	SerpBaseURL string

	// Affiliate configuration
	AffiliateCatalogPath string
	MaxAffiliateLinks    int

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		ReadTimeout:          getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:         getEnvDuration("HTTP_WRITE_TIMEOUT", 2*time.Minute),
		IdleTimeout:          getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		WPSiteURL:            getEnv("WP_SITE_URL", ""),
		WPUsername:           getEnv("WP_USERNAME", ""),
		WPAppPassword:        getEnv("WP_APP_PASSWORD", ""),
		GeneratorProvider:    getEnv("GENERATOR_PROVIDER", "anthropic"),
		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		AnthropicAPIKey:      getEnv("ANTHROPIC_API_KEY", ""),
		SerpAPIKey:           getEnv("SERP_API_KEY", ""),
		SerpBaseURL:          getEnv("SERP_BASE_URL", "https://api.valueserp.com"),
		AffiliateCatalogPath: getEnv("AFFILIATE_CATALOG_PATH", ""),
		MaxAffiliateLinks:    getEnvInt("MAX_AFFILIATE_LINKS", 3),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.WPSiteURL == "" {
		return fmt.Errorf("WP_SITE_URL is required")
	}
	if c.WPUsername == "" {
		return fmt.Errorf("WP_USERNAME is required")
	}
	if c.WPAppPassword == "" {
		return fmt.Errorf("WP_APP_PASSWORD is required")
	}
	switch c.GeneratorProvider {
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when GENERATOR_PROVIDER is anthropic")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when GENERATOR_PROVIDER is openai")
		}
	default:
		return fmt.Errorf("GENERATOR_PROVIDER must be anthropic or openai, got %q", c.GeneratorProvider)
	}
	if c.MaxAffiliateLinks < 1 {
		return fmt.Errorf("MAX_AFFILIATE_LINKS must be at least 1")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
