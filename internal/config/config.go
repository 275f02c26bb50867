package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Port        string
	MongoURI    string
	Environment string
	LogLevel    string
}

// mongoURIEnvVars are the environment variable names recognized for the
// MongoDB connection string, checked in order; the first non-empty one wins.
var mongoURIEnvVars = []string{
	"MONGO_URI",
	"MONGO_URL",
	"MONGODB_URI",
	"MONGODB_URL",
	"mango_Url",
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "8080"),
		MongoURI:    firstNonEmptyEnv(mongoURIEnvVars),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("Mongo connection string missing. Set MONGO_URI (recommended) or MONGODB_URL in your environment or .env file")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstNonEmptyEnv(keys []string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// SlogLevel maps the configured log level onto a slog level, defaulting to
// info for unknown values.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
