package config

import (
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration options for the todo-list server
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int           `env:"PORT"`
	ShutdownTimeout time.Duration `env:"TODO_SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig holds document store configuration
type DatabaseConfig struct {
	URI            string        `env:"MONGODB_URI"`
	Name           string        `env:"TODO_DB_NAME"`
	ConnectTimeout time.Duration `env:"TODO_DB_CONNECT_TIMEOUT"`
	QueryTimeout   time.Duration `env:"TODO_DB_QUERY_TIMEOUT"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `env:"TODO_LOG_LEVEL"`
}

// NewConfig creates a new configuration with defaults for the optional
// settings. PORT and MONGODB_URI have no defaults; both are required at
// startup.
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Name:           "todo",
			ConnectTimeout: 10 * time.Second,
			QueryTimeout:   5 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables.
// Malformed values fail immediately rather than falling back.
func (c *Config) LoadFromEnvironment() error {
	if port := os.Getenv("PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil {
			return &ConfigError{Field: "server.port", Message: "PORT must be a number"}
		}
		c.Server.Port = n
	}
	if timeout := os.Getenv("TODO_SHUTDOWN_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return &ConfigError{Field: "server.shutdown_timeout", Message: "TODO_SHUTDOWN_TIMEOUT must be a duration"}
		}
		c.Server.ShutdownTimeout = d
	}

	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		c.Database.URI = uri
	}
	if name := os.Getenv("TODO_DB_NAME"); name != "" {
		c.Database.Name = name
	}
	if timeout := os.Getenv("TODO_DB_CONNECT_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return &ConfigError{Field: "database.connect_timeout", Message: "TODO_DB_CONNECT_TIMEOUT must be a duration"}
		}
		c.Database.ConnectTimeout = d
	}
	if timeout := os.Getenv("TODO_DB_QUERY_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return &ConfigError{Field: "database.query_timeout", Message: "TODO_DB_QUERY_TIMEOUT must be a duration"}
		}
		c.Database.QueryTimeout = d
	}

	if level := os.Getenv("TODO_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		return &ConfigError{Field: "server.port", Message: "PORT is required"}
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "PORT must be between 1 and 65535"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	if c.Database.URI == "" {
		return &ConfigError{Field: "database.uri", Message: "MONGODB_URI is required"}
	}
	if u, err := url.Parse(c.Database.URI); err != nil || (u.Scheme != "mongodb" && u.Scheme != "mongodb+srv") {
		return &ConfigError{Field: "database.uri", Message: "MONGODB_URI must be a mongodb:// or mongodb+srv:// URI"}
	}
	if c.Database.Name == "" {
		return &ConfigError{Field: "database.name", Message: "database name cannot be empty"}
	}
	if c.Database.ConnectTimeout <= 0 {
		return &ConfigError{Field: "database.connect_timeout", Message: "connect timeout must be positive"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	return nil
}

// Load loads configuration using the cascading strategy: defaults, then
// environment variables, then validation. The process fails fast before any
// connection is attempted.
func Load() (*Config, error) {
	cfg := NewConfig()

	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ListenAddress returns the address the HTTP server binds to
func (c *Config) ListenAddress() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
