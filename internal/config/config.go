package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Search     SearchConfig     `yaml:"search"`
	Enrichment EnrichmentConfig `yaml:"enrichment"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains database settings. Type selects between the MySQL
// store and the PostgreSQL store; empty disables persistence entirely.
type DatabaseConfig struct {
	Type     string         `yaml:"type"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// MySQLConfig contains MySQL connection settings
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// PostgresConfig contains PostgreSQL connection settings
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// SearchConfig contains search engine settings
type SearchConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Meilisearch MeilisearchConfig `yaml:"meilisearch"`
}

// MeilisearchConfig contains Meilisearch connection settings
type MeilisearchConfig struct {
	Host   string `yaml:"host"`
	APIKey string `yaml:"api_key"`
}

// EnrichmentConfig controls the optional advisory layer. The API key itself
// comes from the ANTHROPIC_API_KEY environment variable, never from the file.
type EnrichmentConfig struct {
	Enabled             bool   `yaml:"enabled"`
	Model               string `yaml:"model"`
	TimeoutSeconds      int    `yaml:"timeout_seconds"`
	BreakerFailures     int    `yaml:"breaker_failures"`
	BreakerResetSeconds int    `yaml:"breaker_reset_seconds"`
}

// AnalysisConfig controls engine and assembler behavior
type AnalysisConfig struct {
	VarianceEnabled bool   `yaml:"variance_enabled"`
	ComparableCount int    `yaml:"comparable_count"`
	RetentionDays   int    `yaml:"retention_days"`
	Currency        string `yaml:"currency"`
	DailyJobEnabled bool   `yaml:"daily_job_enabled"`
	DailyJobTime    string `yaml:"daily_job_time"`
}

// RateLimitConfig contains rate limiting settings for the analyze endpoint
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requests_per_minute"`
	RequestsPerHour   int  `yaml:"requests_per_hour"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level       string `yaml:"level"`
	LogRequests bool   `yaml:"log_requests"`
	Debug       bool   `yaml:"debug"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8082,
		},
		Enrichment: EnrichmentConfig{
			Enabled:             true,
			TimeoutSeconds:      30,
			BreakerFailures:     3,
			BreakerResetSeconds: 300,
		},
		Analysis: AnalysisConfig{
			VarianceEnabled: true,
			ComparableCount: 3,
			RetentionDays:   90,
			Currency:        "USD",
			DailyJobEnabled: false,
			DailyJobTime:    "02:00",
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 30,
			RequestsPerHour:   600,
		},
		Logging: LoggingConfig{
			Level:       "info",
			LogRequests: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file, falling back to defaults
// when the file is absent. Environment overrides are applied afterwards.
func LoadConfig(filepath string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		config.applyEnvOverrides()
		return config, nil
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnvOverrides()
	return config, nil
}

// applyEnvOverrides lets deployment environments override file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("API_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("API_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil && port > 0 {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("DB_TYPE"); v != "" {
		c.Database.Type = v
	}
	if v := os.Getenv("AGENT_MODEL"); v != "" {
		c.Enrichment.Model = v
	}
	if v := os.Getenv("CURRENCY"); v != "" {
		c.Analysis.Currency = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("DEBUG"); v == "true" || v == "1" {
		c.Logging.Debug = true
	}
}

// GetTimeout returns the enrichment call timeout as a duration
func (c *EnrichmentConfig) GetTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GetBreakerReset returns the circuit breaker reset window as a duration
func (c *EnrichmentConfig) GetBreakerReset() time.Duration {
	return time.Duration(c.BreakerResetSeconds) * time.Second
}
