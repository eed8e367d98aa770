package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/exercise-kit/internal/platform/config"
)

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  2 * time.Minute,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2,
			},
			CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 1},
		},
		Telemetry: config.TelemetryConfig{Exporter: "stdout"},
		Registration: config.RegistrationConfig{
			SessionTTL:     30 * time.Minute,
			MaxSessions:    100,
			SuccessMessage: "Registration Successful!",
		},
		Generator: config.GeneratorConfig{Mode: config.GeneratorTemplate, Workers: 4},
		Store:     config.StoreConfig{Driver: config.StoreMemory},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*config.Config)
		wantKey string // empty means valid
	}{
		{name: "defaults", modify: func(*config.Config) {}},
		{name: "port zero", modify: func(c *config.Config) { c.Server.Port = 0 }, wantKey: "server.port"},
		{name: "no read timeout", modify: func(c *config.Config) { c.Server.ReadTimeout = 0 }, wantKey: "server.read_timeout"},
		{name: "verbose log level", modify: func(c *config.Config) { c.Log.Level = "verbose" }, wantKey: "log.level"},
		{name: "xml log format", modify: func(c *config.Config) { c.Log.Format = "xml" }, wantKey: "log.format"},
		{name: "relative base url", modify: func(c *config.Config) { c.Client.BaseURL = "course-api" }, wantKey: "client.base_url"},
		{name: "no attempts", modify: func(c *config.Config) { c.Client.Retry.MaxAttempts = 0 }, wantKey: "client.retry.max_attempts"},
		{name: "negative rate", modify: func(c *config.Config) { c.Client.RateLimit.RequestsPerSecond = -1 }, wantKey: "client.rate_limit.requests_per_second"},
		{
			name: "rate without burst",
			modify: func(c *config.Config) {
				c.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 5}
			},
			wantKey: "client.rate_limit.burst_size",
		},
		{
			name: "otlp without endpoint",
			modify: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "otlp"
			},
			wantKey: "telemetry.endpoint",
		},
		{
			name: "disabled otlp may omit endpoint",
			modify: func(c *config.Config) {
				c.Telemetry.Exporter = "otlp"
			},
		},
		{name: "zero session ttl", modify: func(c *config.Config) { c.Registration.SessionTTL = 0 }, wantKey: "registration.session_ttl"},
		{name: "no sessions", modify: func(c *config.Config) { c.Registration.MaxSessions = 0 }, wantKey: "registration.max_sessions"},
		{name: "blank message", modify: func(c *config.Config) { c.Registration.SuccessMessage = "  " }, wantKey: "registration.success_message"},
		{name: "llm generator", modify: func(c *config.Config) { c.Generator.Mode = "llm" }, wantKey: "generator.mode"},
		{name: "no workers", modify: func(c *config.Config) { c.Generator.Workers = 0 }, wantKey: "generator.workers"},
		{name: "negative latency", modify: func(c *config.Config) { c.Generator.Latency = -time.Second }, wantKey: "generator.latency"},
		{name: "redis store", modify: func(c *config.Config) { c.Store.Driver = "redis" }, wantKey: "store.driver"},
		{name: "sqlite without dsn", modify: func(c *config.Config) { c.Store.Driver = config.StoreSQLite }, wantKey: "store.dsn"},
		{
			name: "sqlite with dsn",
			modify: func(c *config.Config) {
				c.Store = config.StoreConfig{Driver: config.StoreSQLite, DSN: "file:courses.db"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantKey == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey+": failed")
		})
	}
}

func TestValidate_ReportsEveryFailure(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Generator.Workers = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port: failed min=1 (got 0)")
	assert.Contains(t, err.Error(), "generator.workers: failed min=1 (got 0)")
}
