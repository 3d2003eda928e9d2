// Package config provides configuration management using Viper.
// It loads configuration from environment variables, .env files, and config files.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerPort     = 8080
	defaultServerHost     = "0.0.0.0"
	defaultReadTimeout    = 30 * time.Second
	defaultWriteTimeout   = 30 * time.Second
	defaultDatabasePath   = "./data/vitrine.db"
	defaultLogLevel       = "info"
	defaultLogPretty      = false
	defaultSessionTTL     = 24 * time.Hour
	defaultWebhookTimeout = 10 * time.Second
	defaultStorageRegion  = "auto"
	envPrefix             = "VITRINE"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Webhook  WebhookConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Path           string
	MigrationsPath string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Pretty bool
}

// AuthConfig holds session and admin gate configuration.
// AdminSecret is the shared secret the dashboard's admin mode compares
// against; it gates UI capabilities only and is not a security boundary.
type AuthConfig struct {
	JWTSecret   string
	SessionTTL  time.Duration
	AdminSecret string
}

// StorageConfig holds blob storage (S3-compatible) configuration.
// PublicBaseURL overrides the endpoint/bucket-derived public URL when the
// bucket is served through a CDN or custom domain.
type StorageConfig struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

// WebhookConfig holds the registration webhook configuration.
// An empty RegistrationURL disables the webhook entirely.
type WebhookConfig struct {
	RegistrationURL string
	Timeout         time.Duration
}

// Load reads configuration from .env file, config files, environment variables, and defaults
func Load() (*Config, error) {
	// .env files are optional in production and CI where env vars are set directly
	_ = godotenv.Load() // nolint:errcheck // .env file is optional

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/vitrine")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Config file is optional; defaults and env vars cover everything
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", defaultServerPort)
	v.SetDefault("server.host", defaultServerHost)
	v.SetDefault("server.readtimeout", defaultReadTimeout)
	v.SetDefault("server.writetimeout", defaultWriteTimeout)

	// Database defaults
	v.SetDefault("database.path", defaultDatabasePath)
	v.SetDefault("database.migrationspath", "file://./migrations")

	// Logging defaults
	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.pretty", defaultLogPretty)

	// Auth defaults; secrets have no defaults and must come from the environment
	v.SetDefault("auth.sessionttl", defaultSessionTTL)

	// Storage defaults
	v.SetDefault("storage.region", defaultStorageRegion)

	// Webhook defaults
	v.SetDefault("webhook.timeout", defaultWebhookTimeout)
}

// Validate checks that configuration values are valid
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be between 1 and 65535)", c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("invalid read timeout: %v (must be > 0)", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("invalid write timeout: %v (must be > 0)", c.Server.WriteTimeout)
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.Logging.Level, strings.Join(validLevels, ", "))
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth JWT secret is required (set %s_AUTH_JWTSECRET)", envPrefix)
	}
	if c.Auth.AdminSecret == "" {
		return fmt.Errorf("admin secret is required (set %s_AUTH_ADMINSECRET)", envPrefix)
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("invalid session TTL: %v (must be > 0)", c.Auth.SessionTTL)
	}

	// Storage endpoint/bucket validation happens when the S3 client is built;
	// tests and link-only deployments run without blob storage configured

	if c.Webhook.Timeout <= 0 {
		return fmt.Errorf("invalid webhook timeout: %v (must be > 0)", c.Webhook.Timeout)
	}

	return nil
}

// contains checks if a string slice contains a specific value
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
