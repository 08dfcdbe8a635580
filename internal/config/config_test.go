package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
[database]
user = "booking"
password = "secret"
dbname = "salon_booking"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 6, cfg.Booking.ConfirmationCodeLength)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t,
		"host=localhost port=5432 user=booking password=secret dbname=salon_booking sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_OverridesFromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[server]
http_port = 9090

[rate_limit]
enabled = true
requests = 5
window_seconds = 10

[booking]
default_timezone = "America/Sao_Paulo"
confirmation_code_length = 8
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
	assert.Equal(t, "10s", cfg.RateLimit.Window().String())
	assert.Equal(t, 8, cfg.Booking.ConfirmationCodeLength)

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	path := writeConfig(t, minimalConfig+"\n[server]\nhttp_port = 7070\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[server\nhttp_port = 1"))
		assert.Error(t, err)
	})

	t.Run("missing database", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[server]\nhttp_port = 8080\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Database.User = "booking"
		cfg.Database.DBName = "salon_booking"
		return cfg
	}

	require.NoError(t, valid().Validate())

	longest := valid()
	longest.Booking.ConfirmationCodeLength = MaxConfirmationCodeLength
	require.NoError(t, longest.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "pool", mutate: func(c *Config) { c.Database.MaxOpenConns = 0 }},
		{name: "metrics path", mutate: func(c *Config) { c.Metrics.Path = "" }},
		{name: "rate limit without redis", mutate: func(c *Config) { c.RateLimit.Enabled = true; c.Redis.Addr = "" }},
		{name: "rate limit requests", mutate: func(c *Config) { c.RateLimit.Enabled = true; c.RateLimit.Requests = 0 }},
		{name: "code length too short", mutate: func(c *Config) { c.Booking.ConfirmationCodeLength = 2 }},
		{name: "code length wider than column", mutate: func(c *Config) { c.Booking.ConfirmationCodeLength = MaxConfirmationCodeLength + 1 }},
		{name: "timezone", mutate: func(c *Config) { c.Booking.DefaultTimezone = "Mars/Olympus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
