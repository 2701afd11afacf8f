package config

import (
	"testing"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validValues() map[string]any {
	return map[string]any{
		"primary.env":                 "local",
		"server.port":                 "8080",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.cors_allowed_origins": []string{"http://localhost:3000"},
		"database.host":               "localhost",
		"database.port":               5432,
		"database.user":               "labber",
		"database.password":           "labber",
		"database.name":               "lightbnb",
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     2,
		"database.conn_max_lifetime":  300,
		"database.conn_max_idle_time": 60,
		"auth.secret_key":             "secret",
		"auth.token_ttl":              60,
	}
}

func load(t *testing.T, values map[string]any) (*Config, error) {
	t.Helper()
	k := koanf.New(".")
	require.NoError(t, k.Load(confmap.Provider(values, "."), nil))
	return fromKoanf(k)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "database.host", envKey("LIGHTBNB_DATABASE__HOST"))
	assert.Equal(t, "server.read_timeout", envKey("LIGHTBNB_SERVER__READ_TIMEOUT"))
	assert.Equal(t, "primary.env", envKey("LIGHTBNB_PRIMARY__ENV"))
}

func TestFromKoanf_AppliesObservabilityDefaults(t *testing.T) {
	cfg, err := load(t, validValues())
	require.NoError(t, err)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
	assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	assert.True(t, cfg.IsLocal())
}

func TestFromKoanf_MissingRequired(t *testing.T) {
	values := validValues()
	delete(values, "database.host")

	_, err := load(t, values)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.SlowQueryThreshold = -time.Second
	assert.Error(t, cfg.Validate())
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "local"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}
