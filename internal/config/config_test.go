package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, "0.0.0.0", c.Server.Host)
	assert.Equal(t, 8082, c.Server.Port)
	assert.Empty(t, c.Database.Type)
	assert.True(t, c.Enrichment.Enabled)
	assert.Equal(t, 30, c.Enrichment.TimeoutSeconds)
	assert.True(t, c.Analysis.VarianceEnabled)
	assert.Equal(t, 3, c.Analysis.ComparableCount)
	assert.Equal(t, 90, c.Analysis.RetentionDays)
	assert.Equal(t, "USD", c.Analysis.Currency)
	assert.False(t, c.Analysis.DailyJobEnabled)
	assert.Equal(t, "02:00", c.Analysis.DailyJobTime)
	assert.Equal(t, 30, c.RateLimit.RequestsPerMinute)
	assert.Equal(t, 600, c.RateLimit.RequestsPerHour)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "does_not_exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Server.Port, c.Server.Port)
}

func TestLoadConfigFromFile(t *testing.T) {
	content := `
server:
  host: "127.0.0.1"
  port: 9090
database:
  type: "postgres"
  postgres:
    host: "db.internal"
    port: 5432
    user: "app"
    database: "valuations"
    sslmode: "require"
search:
  enabled: true
  meilisearch:
    host: "http://localhost:7700"
analysis:
  variance_enabled: false
  comparable_count: 5
  retention_days: 30
  currency: "EUR"
  daily_job_enabled: true
  daily_job_time: "03:30"
rate_limit:
  enabled: false
`
	path := filepath.Join(t.TempDir(), "api_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", c.Server.Host)
	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, "postgres", c.Database.Type)
	assert.Equal(t, "db.internal", c.Database.Postgres.Host)
	assert.Equal(t, "require", c.Database.Postgres.SSLMode)
	assert.True(t, c.Search.Enabled)
	assert.False(t, c.Analysis.VarianceEnabled)
	assert.Equal(t, 5, c.Analysis.ComparableCount)
	assert.Equal(t, 30, c.Analysis.RetentionDays)
	assert.Equal(t, "EUR", c.Analysis.Currency)
	assert.True(t, c.Analysis.DailyJobEnabled)
	assert.Equal(t, "03:30", c.Analysis.DailyJobTime)
	assert.False(t, c.RateLimit.Enabled)

	// Unset sections keep their defaults.
	assert.Equal(t, 3, c.Enrichment.BreakerFailures)
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: a: map"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("API_HOST", "10.0.0.5")
	t.Setenv("API_PORT", "7070")
	t.Setenv("DB_TYPE", "mysql")
	t.Setenv("AGENT_MODEL", "claude-sonnet-4-20250514")
	t.Setenv("CURRENCY", "INR")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEBUG", "true")

	c, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5", c.Server.Host)
	assert.Equal(t, 7070, c.Server.Port)
	assert.Equal(t, "mysql", c.Database.Type)
	assert.Equal(t, "claude-sonnet-4-20250514", c.Enrichment.Model)
	assert.Equal(t, "INR", c.Analysis.Currency)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.True(t, c.Logging.Debug)
}

func TestEnvOverrideIgnoresBadPort(t *testing.T) {
	t.Setenv("API_PORT", "not-a-port")

	c, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8082, c.Server.Port)
}

func TestDurationHelpers(t *testing.T) {
	e := EnrichmentConfig{TimeoutSeconds: 45, BreakerResetSeconds: 120}
	assert.Equal(t, 45*time.Second, e.GetTimeout())
	assert.Equal(t, 2*time.Minute, e.GetBreakerReset())
}
