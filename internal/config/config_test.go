package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearMongoEnv(t *testing.T) {
	t.Helper()
	for _, key := range mongoURIEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearMongoEnv(t)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigMissingMongoURI(t *testing.T) {
	clearMongoEnv(t)

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "Mongo connection string missing")
}

func TestLoadConfigURIPrecedence(t *testing.T) {
	clearMongoEnv(t)
	t.Setenv("MONGODB_URL", "mongodb://fourth")
	t.Setenv("MONGO_URL", "mongodb://second")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://second", cfg.MongoURI)

	t.Setenv("MONGO_URI", "mongodb://first")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://first", cfg.MongoURI)
}

func TestLoadConfigLegacyURIName(t *testing.T) {
	clearMongoEnv(t)
	t.Setenv("mango_Url", "mongodb://legacy")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://legacy", cfg.MongoURI)
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}
	for in, want := range cases {
		cfg := &Config{LogLevel: in}
		assert.Equal(t, want, cfg.SlogLevel(), "level %q", in)
	}
}
