// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, search pipeline, cache, and AI

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Search contains enrichment pipeline configuration
	Search SearchConfig

	// AI contains LLM provider configuration
	AI AIConfig

	// Cache contains cache configuration
	Cache CacheConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// APIKeys are the accepted API keys; empty disables authentication
	APIKeys []string

	// RateLimit is the number of requests allowed per RateWindow per client
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration
}

// SearchConfig holds enrichment pipeline configuration
type SearchConfig struct {
	// SearXNGURL is the base URL of the meta-search aggregator
	SearXNGURL string

	// DefaultResults is the result count when the request omits limit
	DefaultResults int

	// MaxResults bounds the limit query parameter
	MaxResults int

	// MaxContentLength caps extracted body text, in characters
	MaxContentLength int

	// FetchTimeout is the per-URL page fetch budget
	FetchTimeout time.Duration

	// RequestBudget is the aggregate wall-clock budget for one request
	RequestBudget time.Duration

	// MaxConcurrentFetches bounds per-request fan-out
	MaxConcurrentFetches int
}

// AIConfig holds LLM provider configuration
type AIConfig struct {
	// APIKey enables AI features when non-empty
	APIKey string

	// BaseURL overrides the provider endpoint (OpenAI-compatible backends)
	BaseURL string

	// SummaryModel is the chat model used for summaries
	SummaryModel string

	// EmbeddingModel is the model used for embeddings
	EmbeddingModel string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnvOrDefault("PORT", "8000"),
			APIKeys:    splitNonEmpty(os.Getenv("API_KEYS")),
			RateLimit:  getEnvAsIntOrDefault("RATE_LIMIT", 60),
			RateWindow: getEnvAsDurationOrDefault("RATE_WINDOW", time.Minute),
		},
		Search: SearchConfig{
			SearXNGURL:           getEnvOrDefault("SEARXNG_URL", "http://localhost:8080"),
			DefaultResults:       getEnvAsIntOrDefault("DEFAULT_RESULTS", 10),
			MaxResults:           getEnvAsIntOrDefault("MAX_RESULTS", 50),
			MaxContentLength:     getEnvAsIntOrDefault("MAX_CONTENT_LENGTH", 10000),
			FetchTimeout:         getEnvAsDurationOrDefault("FETCH_TIMEOUT", 10*time.Second),
			RequestBudget:        getEnvAsDurationOrDefault("REQUEST_BUDGET", 45*time.Second),
			MaxConcurrentFetches: getEnvAsIntOrDefault("MAX_CONCURRENT_FETCHES", 10),
		},
		AI: AIConfig{
			APIKey:         os.Getenv("OPENAI_API_KEY"),
			BaseURL:        os.Getenv("OPENAI_BASE_URL"),
			SummaryModel:   getEnvOrDefault("OPENAI_SUMMARY_MODEL", "gpt-4o-mini"),
			EmbeddingModel: getEnvOrDefault("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLitePath: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
		},
	}

	return cfg, nil
}

// HasAI reports whether the LLM provider is configured
func (c *Config) HasAI() bool {
	return c.AI.APIKey != ""
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault returns the environment variable as duration
// (accepting Go duration syntax or a bare number of seconds) or a default
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// splitNonEmpty splits a comma-separated list, dropping empty entries
func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Search.SearXNGURL == "" {
		return errors.New("searxng URL cannot be empty")
	}

	if c.Search.MaxResults < 1 {
		return errors.New("max results must be at least 1")
	}

	if c.Search.DefaultResults < 1 || c.Search.DefaultResults > c.Search.MaxResults {
		return errors.New("default results must be between 1 and max results")
	}

	if c.Search.MaxConcurrentFetches < 1 {
		return errors.New("max concurrent fetches must be at least 1")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	return nil
}
