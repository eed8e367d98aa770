package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/exercise-kit/internal/platform/config"
)

const repoConfigs = "../../../configs"

func TestLoad_RepositoryProfiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		profile string
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			profile: "local",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "text", cfg.Log.Format)
				assert.Equal(t, 500*time.Millisecond, cfg.Generator.Latency)
				assert.False(t, cfg.Telemetry.Enabled)
				// inherited from base.yaml
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 3, cfg.Client.Retry.MaxAttempts)
				assert.Equal(t, config.StoreMemory, cfg.Store.Driver)
				assert.Equal(t, "Registration Successful!", cfg.Registration.SuccessMessage)
				assert.Equal(t, 30*time.Minute, cfg.Registration.SessionTTL)
			},
		},
		{
			profile: "prod",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "json", cfg.Log.Format)
				assert.True(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "otlp", cfg.Telemetry.Exporter)
				assert.NotEmpty(t, cfg.Telemetry.Endpoint)
				assert.Equal(t, config.GeneratorRemote, cfg.Generator.Mode)
				assert.Equal(t, config.StoreMySQL, cfg.Store.Driver)
				assert.InDelta(t, 20, cfg.Client.RateLimit.RequestsPerSecond, 0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Load(tt.profile, config.WithConfigDir(repoConfigs))
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		env   string
		value string
		check func(t *testing.T, cfg *config.Config)
	}{
		{"APP_SERVER_PORT", "9090", func(t *testing.T, c *config.Config) { assert.Equal(t, 9090, c.Server.Port) }},
		{"APP_SERVER_READ_TIMEOUT", "15s", func(t *testing.T, c *config.Config) {
			assert.Equal(t, 15*time.Second, c.Server.ReadTimeout)
		}},
		{"APP_CLIENT_RETRY_MAX_ATTEMPTS", "7", func(t *testing.T, c *config.Config) {
			assert.Equal(t, 7, c.Client.Retry.MaxAttempts)
		}},
		{"APP_REGISTRATION_SUCCESS_MESSAGE", "Welcome!", func(t *testing.T, c *config.Config) {
			assert.Equal(t, "Welcome!", c.Registration.SuccessMessage)
		}},
		{"APP_GENERATOR_WORKERS", "9", func(t *testing.T, c *config.Config) { assert.Equal(t, 9, c.Generator.Workers) }},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			cfg, err := config.Load("local", config.WithConfigDir(repoConfigs))
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "server:\n  port: 8080\n")
	writeFile(t, dir, "broken.yaml", "server: [unclosed\n")
	writeFile(t, dir, "invalid.yaml", "server:\n  port: 70000\n")

	tests := []struct {
		name    string
		profile string
		dir     string
		wantMsg string
	}{
		{name: "empty profile", profile: " ", dir: dir, wantMsg: "profile must not be empty"},
		{name: "path in profile", profile: "../etc/passwd", dir: dir, wantMsg: "plain name"},
		{name: "missing profile file", profile: "staging", dir: dir, wantMsg: "loading staging config"},
		{name: "missing base file", profile: "local", dir: t.TempDir(), wantMsg: "loading base config"},
		{name: "bad yaml", profile: "broken", dir: dir, wantMsg: "loading broken config"},
		{name: "fails validation", profile: "invalid", dir: dir, wantMsg: "server.port: failed max=65535 (got 70000)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(tt.profile, config.WithConfigDir(tt.dir))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDefaults_NeedNoFiles(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_GENERATOR_LATENCY", "250ms")

	cfg, err := config.Defaults()
	require.NoError(t, err)

	assert.Equal(t, config.GeneratorTemplate, cfg.Generator.Mode)
	assert.Equal(t, 250*time.Millisecond, cfg.Generator.Latency)
	assert.Equal(t, config.StoreMemory, cfg.Store.Driver)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}
