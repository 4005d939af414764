package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 0, cfg.Server.Port, "port has no default")
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Database.URI, "database URI has no default")
	assert.Equal(t, "todo", cfg.Database.Name)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_CascadesEnvironmentOverDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TODO_DB_NAME", "todo_test")
	t.Setenv("TODO_DB_QUERY_TIMEOUT", "2s")
	t.Setenv("TODO_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "todo_test", cfg.Database.Name)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Untouched settings keep their defaults
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
}

func TestLoad_MissingRequiredSettings(t *testing.T) {
	t.Run("Missing port", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

		_, err := Load()
		require.Error(t, err)

		configErr, ok := err.(*ConfigError)
		require.True(t, ok)
		assert.Equal(t, "server.port", configErr.Field)
	})

	t.Run("Missing database URI", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("MONGODB_URI", "")

		_, err := Load()
		require.Error(t, err)

		configErr, ok := err.(*ConfigError)
		require.True(t, ok)
		assert.Equal(t, "database.uri", configErr.Field)
	})
}

func TestLoad_MalformedValuesFailFast(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{"Non-numeric port", "PORT", "eighty", "server.port"},
		{"Bad shutdown timeout", "TODO_SHUTDOWN_TIMEOUT", "soon", "server.shutdown_timeout"},
		{"Bad connect timeout", "TODO_DB_CONNECT_TIMEOUT", "10", "database.connect_timeout"},
		{"Bad query timeout", "TODO_DB_QUERY_TIMEOUT", "fast", "database.query_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)

			configErr, ok := err.(*ConfigError)
			require.True(t, ok)
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := NewConfig()
		cfg.Server.Port = 8080
		cfg.Database.URI = "mongodb://localhost:27017"
		return cfg
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
		field       string
	}{
		{"Valid", func(c *Config) {}, false, ""},
		{"SRV scheme accepted", func(c *Config) { c.Database.URI = "mongodb+srv://cluster.example.com" }, false, ""},
		{"Port too large", func(c *Config) { c.Server.Port = 70000 }, true, "server.port"},
		{"Negative port", func(c *Config) { c.Server.Port = -1 }, true, "server.port"},
		{"Wrong URI scheme", func(c *Config) { c.Database.URI = "http://localhost" }, true, "database.uri"},
		{"Empty database name", func(c *Config) { c.Database.Name = "" }, true, "database.name"},
		{"Zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, true, "database.query_timeout"},
		{"Zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, true, "server.shutdown_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()

			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			configErr, ok := err.(*ConfigError)
			require.True(t, ok)
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestConfig_ListenAddress(t *testing.T) {
	cfg := NewConfig()
	cfg.Server.Port = 8080

	assert.Equal(t, ":8080", cfg.ListenAddress())
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Field: "server.port", Message: "PORT is required"}
	assert.Equal(t, "server.port: PORT is required", err.Error())
}
