package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_USER", "fyyur")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "booking")
	t.Setenv("DB_AUTO_MIGRATE", "yes")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	assert.True(t, cfg.IsProd())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DatabaseConfig{User: "fyyur", Host: "db", Port: "3307", Name: "booking", AutoMigrate: true}, cfg.Database)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadDatabaseDefaultsPort(t *testing.T) {
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "booking")
	t.Setenv("DB_PORT", "")
	assert.Equal(t, "3306", LoadDatabaseConfig().Port)
}

func TestLoadRateLimitConfig(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("RATE_LIMIT_REFILL_EVERY", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	t.Setenv("RATE_LIMIT_ENABLED", "off")

	rl := LoadRateLimitConfig()
	assert.False(t, rl.Enabled)
	assert.Equal(t, 5, rl.Capacity)
	assert.Equal(t, 1, rl.RefillTokens)
	assert.Equal(t, 2*time.Second, rl.RefillInterval)
	assert.Equal(t, 10*time.Second, rl.TTL)
	assert.Equal(t, "ip_route", rl.KeyStrategy)
}

func TestLoadRedisConfigPrefersHostPort(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")
	cfg := LoadRedisConfig()
	assert.Equal(t, "redis:6380", cfg.Addr)
	assert.Equal(t, 2, cfg.DB)
	assert.True(t, cfg.Enabled)
}

func TestLoadEventsConfigFallsBackToAMQPURL(t *testing.T) {
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("AMQP_URL", "amqp://mq:5672/")
	t.Setenv("EVENTS_ENABLED", "true")
	cfg := LoadEventsConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "amqp://mq:5672/", cfg.URL)
	assert.Equal(t, "booking.activity", cfg.Queue)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("VB_DOTENV_PROBE=from-file\n"), 0o600))
	t.Setenv("VB_DOTENV_PROBE", "")
	os.Unsetenv("VB_DOTENV_PROBE")

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-file", os.Getenv("VB_DOTENV_PROBE"))
}
