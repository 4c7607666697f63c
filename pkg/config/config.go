package config

import (
	"os"
)

// Default summarization endpoint; overridable for self-hosted gateways.
const DefaultAPIURL = "https://api.x.ai/v1/chat/completions"

// Config holds application configuration
type Config struct {
	Port   string
	DBPath string
	APIURL string
	APIKey string
	Env    string
}

// Load reads configuration from the environment, using defaults for
// anything unset. XAI_API_KEY has no default; its absence only matters
// when summarization is invoked, never at startup.
func Load() *Config {
	return &Config{
		Port:   getEnv("PORT", "3000"),
		DBPath: getEnv("DB_PATH", "notes.db"),
		APIURL: getEnv("XAI_API_URL", DefaultAPIURL),
		APIKey: os.Getenv("XAI_API_KEY"),
		Env:    getEnv("APP_ENV", "development"),
	}
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}

// IsProduction reports whether error detail should be suppressed in responses
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
