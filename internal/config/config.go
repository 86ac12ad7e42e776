package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	SlackAPIBaseURL    string
	DatabaseURL        string
	ServerPort         string
	FrontendURL        string
	RedisURL           string
	RabbitMQURL        string
	RabbitMQPrefetch   int
	AnalysisTimezone   string
	DedupeTTL          time.Duration
	EnableHSTS         bool
	ServerDebugMode    bool
	WorkerDebugMode    bool
	OTELEnabled        bool
	OTELEndpoint       string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackAPIBaseURL:    getEnv("SLACK_API_BASE_URL", ""),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RabbitMQURL:        getEnv("RABBITMQ_URL", ""),
		RabbitMQPrefetch:   getEnvInt("RABBITMQ_PREFETCH", 1),
		AnalysisTimezone:   getEnv("ANALYSIS_TIMEZONE", "UTC"),
		DedupeTTL:          getEnvDuration("EVENT_DEDUPE_TTL", 24*time.Hour),
		EnableHSTS:         getEnvBool("ENABLE_HSTS", false),
		ServerDebugMode:    getEnvBool("SERVER_DEBUG_MODE", false),
		WorkerDebugMode:    getEnvBool("WORKER_DEBUG_MODE", false),
		OTELEnabled:        getEnvBool("OTEL_ENABLED", false),
		OTELEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.RabbitMQURL == "" {
		return nil, fmt.Errorf("RABBITMQ_URL is required for durable log persistence")
	}

	if _, err := time.LoadLocation(cfg.AnalysisTimezone); err != nil {
		return nil, fmt.Errorf("ANALYSIS_TIMEZONE %q is not a valid IANA zone: %w", cfg.AnalysisTimezone, err)
	}

	return cfg, nil
}

// Location resolves the configured analysis timezone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.AnalysisTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
