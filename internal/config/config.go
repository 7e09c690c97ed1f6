// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	SkyAPI  SkyAPIConfig
	Search  SearchConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// SkyAPIConfig holds the remote flight data API settings. The key is a
// static credential resolved at deployment time.
type SkyAPIConfig struct {
	BaseURL string        `env:"SKYAPI_BASE_URL" envDefault:"https://sky-scrapper.p.rapidapi.com/api/v1"`
	Key     string        `env:"SKYAPI_KEY"`
	Host    string        `env:"SKYAPI_HOST" envDefault:"sky-scrapper.p.rapidapi.com"`
	Timeout time.Duration `env:"SKYAPI_TIMEOUT" envDefault:"10s"`
}

// SearchConfig holds retrieval policy settings.
type SearchConfig struct {
	// EnableRemote turns the remote API on; when false every flight search
	// is served synthetically and airport search is local-only.
	EnableRemote bool `env:"ENABLE_REMOTE" envDefault:"true"`

	// PreferLocal makes airport search serve local directory matches
	// without consulting the remote at all.
	PreferLocal bool `env:"PREFER_LOCAL" envDefault:"true"`

	// MinQueryLength is the minimum airport query length before any lookup.
	MinQueryLength int `env:"MIN_QUERY_LENGTH" envDefault:"3"`

	// CacheTTL is how long airport search results are reused.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"10m"`

	// SyntheticLatency is the artificial delay before synthetic results,
	// keeping the UX consistent with remote round-trips.
	SyntheticLatency time.Duration `env:"SYNTHETIC_LATENCY" envDefault:"800ms"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
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
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
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

	if cfg.SkyAPI.Timeout <= 0 {
		return fmt.Errorf("SKYAPI_TIMEOUT must be positive")
	}
	if cfg.Search.EnableRemote && cfg.SkyAPI.Key == "" {
		return fmt.Errorf("SKYAPI_KEY is required when ENABLE_REMOTE is true")
	}

	if cfg.Search.MinQueryLength < 1 {
		return fmt.Errorf("MIN_QUERY_LENGTH must be at least 1, got %d", cfg.Search.MinQueryLength)
	}
	if cfg.Search.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if cfg.Search.SyntheticLatency < 0 {
		return fmt.Errorf("SYNTHETIC_LATENCY cannot be negative")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
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
