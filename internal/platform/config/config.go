// Package config loads and validates the settings shared by the server and
// the CLI. Values come from built-in defaults, configs/base.yaml, the
// profile's YAML file and APP_* environment variables, in that order.
package config

import "time"

// Config is the root of the configuration tree. Field constraints are
// validate tags checked by Validate.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`

	Registration RegistrationConfig `koanf:"registration"`
	Generator    GeneratorConfig    `koanf:"generator"`
	Store        StoreConfig        `koanf:"store"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"gt=0s"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0s"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url" validate:"required,url"`
	Timeout        time.Duration        `koanf:"timeout" validate:"gt=0s"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts" validate:"min=1"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier" validate:"gt=0"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures" validate:"min=1"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig throttles outgoing requests. A zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gte=0"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter" validate:"oneof=stdout otlp"`
	Endpoint    string `koanf:"endpoint" validate:"required_if=Enabled true Exporter otlp"`
	ServiceName string `koanf:"service_name"`
}

// RegistrationConfig holds registration form settings.
type RegistrationConfig struct {
	// SessionTTL is how long an untouched form session is kept.
	SessionTTL     time.Duration `koanf:"session_ttl" validate:"gt=0s"`
	MaxSessions    int           `koanf:"max_sessions" validate:"min=1"`
	SuccessMessage string        `koanf:"success_message" validate:"notblank"`
}

// Generator modes.
const (
	GeneratorTemplate = "template"
	GeneratorRemote   = "remote"
)

// GeneratorConfig selects and tunes the course generator.
type GeneratorConfig struct {
	Mode string `koanf:"mode" validate:"oneof=template remote"`
	// Latency is an artificial delay added by the template generator.
	Latency time.Duration `koanf:"latency" validate:"gte=0s"`
	Workers int           `koanf:"workers" validate:"min=1"`
}

// Store drivers.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreMySQL  = "mysql"
)

// StoreConfig selects where saved courses live.
type StoreConfig struct {
	Driver string `koanf:"driver" validate:"oneof=memory sqlite mysql"`
	DSN    string `koanf:"dsn" validate:"required_unless=Driver memory"`
}
