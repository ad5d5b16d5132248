package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when neither -config nor CONFIG_PATH is given.
const DefaultConfigPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" envconfig:"PORT"`
		Mode            string `yaml:"mode" envconfig:"SERVER_MODE"`
		ReadTimeout     string `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
		IdleTimeout     string `yaml:"idle_timeout" envconfig:"SERVER_IDLE_TIMEOUT"`
		ShutdownTimeout string `yaml:"shutdown_timeout" envconfig:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" envconfig:"DB_HOST"`
		Port            string `yaml:"port" envconfig:"DB_PORT"`
		User            string `yaml:"user" envconfig:"DB_USER"`
		Password        string `yaml:"password" envconfig:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" envconfig:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" envconfig:"DB_SSLMODE"`
		MaxConns        int    `yaml:"max_conns" envconfig:"DB_MAX_CONNS"`
		MinConns        int    `yaml:"min_conns" envconfig:"DB_MIN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" envconfig:"DB_CONN_MAX_LIFETIME"`
		TraceQueries    bool   `yaml:"trace_queries" envconfig:"DB_TRACE_QUERIES"`
	} `yaml:"database"`

	Logging struct {
		Level      string `yaml:"level" envconfig:"LOG_LEVEL"`
		Format     string `yaml:"format" envconfig:"LOG_FORMAT"`
		FilePath   string `yaml:"file_path" envconfig:"LOG_FILE_PATH"`
		MaxSizeMB  int    `yaml:"max_size_mb" envconfig:"LOG_MAX_SIZE_MB"`
		MaxBackups int    `yaml:"max_backups" envconfig:"LOG_MAX_BACKUPS"`
		MaxAgeDays int    `yaml:"max_age_days" envconfig:"LOG_MAX_AGE_DAYS"`
		Compress   bool   `yaml:"compress" envconfig:"LOG_COMPRESS"`
	} `yaml:"logging"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins" envconfig:"CORS_ALLOWED_ORIGINS"`
	} `yaml:"cors"`

	Features struct {
		// ConflictPrecheck runs a SELECT before unique inserts so the common duplicate
		// case is answered without an insert attempt. The unique constraint stays authoritative.
		ConflictPrecheck bool `yaml:"conflict_precheck" envconfig:"CONFLICT_PRECHECK"`
	} `yaml:"features"`
}

// LoadConfig loads configuration from a file, a .env file and environment variables,
// in increasing order of precedence.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// ResolvePath picks the config file location: an explicit flag value wins, then CONFIG_PATH.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := strings.TrimSpace(os.Getenv("CONFIG_PATH")); env != "" {
		return env
	}
	return DefaultConfigPath
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"
	config.Server.IdleTimeout = "120s"
	config.Server.ShutdownTimeout = "10s"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "students"
	config.Database.SSLMode = "disable"
	config.Database.MaxConns = 10
	config.Database.MinConns = 1
	config.Database.ConnMaxLifetime = "1h"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.MaxSizeMB = 100
	config.Logging.MaxBackups = 3
	config.Logging.MaxAgeDays = 28

	config.CORS.AllowedOrigins = []string{"*"}

	config.Features.ConflictPrecheck = true
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Database.MaxConns < 1 {
		return fmt.Errorf("database max_conns must be at least 1")
	}

	if config.Database.MinConns < 0 || config.Database.MinConns > config.Database.MaxConns {
		return fmt.Errorf("database min_conns must be between 0 and max_conns")
	}

	durations := map[string]string{
		"database conn_max_lifetime": config.Database.ConnMaxLifetime,
		"server read_timeout":        config.Server.ReadTimeout,
		"server write_timeout":       config.Server.WriteTimeout,
		"server idle_timeout":        config.Server.IdleTimeout,
		"server shutdown_timeout":    config.Server.ShutdownTimeout,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Host + ":" + c.Database.Port,
		Path:     "/" + c.Database.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

// IsProduction reports whether gin should run in release mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}
