// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/flight-lookup/flight-lookup-service/internal/infrastructure/logger"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`

	// CORSAllowOrigins applies to the lookup routes only.
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
}

// UpstreamConfig holds settings for the flight-data API.
type UpstreamConfig struct {
	// APIKey is sent as access_key; an empty key fails every lookup at request time
	APIKey            string        `env:"FLIGHT_API_KEY"`
	BaseURL           string        `env:"FLIGHT_API_BASE_URL" envDefault:"https://api.aviationstack.com/v1"`
	Timeout           time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
	CacheMaxAge       time.Duration `env:"UPSTREAM_CACHE_MAX_AGE" envDefault:"5m"`
	RetryAttempts     int           `env:"UPSTREAM_RETRY_ATTEMPTS" envDefault:"1"`
	RetryInitialDelay time.Duration `env:"UPSTREAM_RETRY_INITIAL_DELAY" envDefault:"200ms"`
}

// HasAPIKey reports whether an upstream access key is configured.
func (u UpstreamConfig) HasAPIKey() bool {
	return u.APIKey != ""
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Format      string `env:"LOG_FORMAT" envDefault:"json"`
	Caller      bool   `env:"LOG_CALLER" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"flight-lookup"`
}

// LoggerConfig converts the settings to a logger.Config.
func (l LoggingConfig) LoggerConfig() logger.Config {
	return logger.Config{
		Level:        l.Level,
		Format:       l.Format,
		EnableCaller: l.Caller,
		ServiceName:  l.ServiceName,
	}
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Namespace string `env:"METRICS_NAMESPACE" envDefault:"flight_lookup"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// A .env file is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.L().Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if err := validateUpstream(cfg.Upstream); err != nil {
		return err
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Namespace == "" {
		return fmt.Errorf("METRICS_NAMESPACE must not be empty when metrics are enabled")
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

func validateUpstream(u UpstreamConfig) error {
	parsed, err := url.Parse(u.BaseURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("FLIGHT_API_BASE_URL must be an absolute http(s) URL, got %q", u.BaseURL)
	}
	if u.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	if u.CacheMaxAge < 0 {
		return fmt.Errorf("UPSTREAM_CACHE_MAX_AGE cannot be negative")
	}
	if u.RetryAttempts < 1 {
		return fmt.Errorf("UPSTREAM_RETRY_ATTEMPTS must be at least 1, got %d", u.RetryAttempts)
	}
	if u.RetryInitialDelay < 0 {
		return fmt.Errorf("UPSTREAM_RETRY_INITIAL_DELAY cannot be negative")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
