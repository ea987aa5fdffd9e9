// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, source, feed and logging

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Source tunes the in-memory video source
	Source SourceConfig

	// Feed tunes feed controllers
	Feed FeedConfig

	// Log controls logger output
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per client per window; 0 disables limiting
	RateLimit int

	// RateWindowSeconds is the rate limit window
	RateWindowSeconds int

	// ShareBaseURL prefixes share links
	ShareBaseURL string

	// APIBaseURL is where clients such as feedsim reach the API
	APIBaseURL string
}

// RateWindow returns the rate limit window as a duration
func (s ServerConfig) RateWindow() time.Duration {
	return time.Duration(s.RateWindowSeconds) * time.Second
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite cache configuration
	SQLite SQLiteConfig
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

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupSeconds is how often expired entries are purged
	CleanupSeconds int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file; ":memory:" keeps it in process
	Path string
}

// SourceConfig tunes the simulated video source
type SourceConfig struct {
	// LatencyScale multiplies the simulated delays; 0 answers immediately
	LatencyScale float64

	// FailureRate is the probability that a call fails when failure injection is enabled
	FailureRate float64
}

// FeedConfig tunes feed controllers
type FeedConfig struct {
	ActiveThreshold   float64
	LoadMoreThreshold float64
	InitialPageSize   int
	PageSize          int
}

// LogConfig controls logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is json or text
	Format string

	// File, when set, receives rotated log output
	File string

	// MaxSizeMB is the size at which the log file rotates
	MaxSizeMB int

	// MaxBackups is the number of rotated files to keep
	MaxBackups int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnvOrDefault("PORT", "8000"),
			RateLimit:         getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindowSeconds: getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60),
			ShareBaseURL:      getEnvOrDefault("SHARE_BASE_URL", "http://localhost:8000"),
			APIBaseURL:        getEnvOrDefault("API_BASE_URL", "http://localhost:8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				CleanupSeconds: getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP_SECONDS", 600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", ":memory:"),
			},
		},
		Source: SourceConfig{
			LatencyScale: getEnvAsFloatOrDefault("SOURCE_LATENCY_SCALE", 1),
			FailureRate:  getEnvAsFloatOrDefault("SOURCE_FAILURE_RATE", 0.1),
		},
		Feed: FeedConfig{
			ActiveThreshold:   getEnvAsFloatOrDefault("FEED_ACTIVE_THRESHOLD", 0.7),
			LoadMoreThreshold: getEnvAsFloatOrDefault("FEED_LOAD_MORE_THRESHOLD", 0.8),
			InitialPageSize:   getEnvAsIntOrDefault("FEED_INITIAL_PAGE_SIZE", 5),
			PageSize:          getEnvAsIntOrDefault("FEED_PAGE_SIZE", 3),
		},
		Log: LogConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
			File:       getEnvOrDefault("LOG_FILE", ""),
			MaxSizeMB:  getEnvAsIntOrDefault("LOG_MAX_SIZE_MB", 50),
			MaxBackups: getEnvAsIntOrDefault("LOG_MAX_BACKUPS", 3),
		},
	}

	return cfg, nil
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

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.Server.RateLimit > 0 && c.Server.RateWindowSeconds < 1 {
		return errors.New("rate window must be at least 1 second")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Source.LatencyScale < 0 {
		return errors.New("source latency scale cannot be negative")
	}

	if c.Source.FailureRate < 0 || c.Source.FailureRate > 1 {
		return errors.New("source failure rate must be between 0 and 1")
	}

	if c.Feed.ActiveThreshold <= 0 || c.Feed.ActiveThreshold >= 1 {
		return errors.New("feed active threshold must be between 0 and 1")
	}

	if c.Feed.LoadMoreThreshold <= 0 || c.Feed.LoadMoreThreshold >= 1 {
		return errors.New("feed load-more threshold must be between 0 and 1")
	}

	if c.Feed.InitialPageSize < 1 || c.Feed.PageSize < 1 {
		return errors.New("feed page sizes must be at least 1")
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return errors.New("log format must be 'json' or 'text'")
	}

	return nil
}
