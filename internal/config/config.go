package config

import (
	"fmt"
	"log"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
)

const (
	defaultAdminPIN  = "1234"
	defaultJWTSecret = "change-me-jwt-secret"
)

const (
	BackendSQL    = "sql"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	AppEnv             string        `env:"APP_ENV" envDefault:"dev"`
	HTTPAddr           string        `env:"HTTP_ADDR" envDefault:":8080"`
	DatabaseURL        string        `env:"DATABASE_URL" envDefault:"hoodbook.db"`
	StoreBackend       string        `env:"STORE_BACKEND" envDefault:"sql"`
	RedisURL           string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	AdminPIN           string        `env:"ADMIN_PIN" envDefault:"1234"`
	JWTSecret          string        `env:"JWT_SECRET" envDefault:"change-me-jwt-secret"`
	AdminTokenTTL      time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"12h"`
	Timezone           string        `env:"TIMEZONE" envDefault:"Asia/Kuala_Lumpur"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	loc *time.Location
}

// Location is the academy time zone used for calendar dates.
func (c *Config) Location() *time.Location { return c.loc }

func (c *Config) IsProduction() bool { return isProdLike(c.AppEnv) }

// Load reads the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads only the given variables; used by tests and tools.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	cfg.AdminPIN = strings.TrimSpace(cfg.AdminPIN)
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE value %q: %w", cfg.Timezone, err)
	}
	cfg.loc = loc

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s store=%s tz=%s", cfg.AppEnv, cfg.StoreBackend, cfg.Timezone)
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.StoreBackend {
	case BackendSQL, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("STORE_BACKEND must be one of: sql, redis, memory")
	}
	if cfg.StoreBackend == BackendSQL && strings.TrimSpace(cfg.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL must not be empty for the sql store")
	}
	if cfg.StoreBackend == BackendRedis && strings.TrimSpace(cfg.RedisURL) == "" {
		return fmt.Errorf("REDIS_URL must not be empty for the redis store")
	}
	if cfg.AdminPIN == "" {
		return fmt.Errorf("ADMIN_PIN must not be empty")
	}
	if cfg.AdminTokenTTL <= 0 {
		return fmt.Errorf("ADMIN_TOKEN_TTL must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.AdminPIN, defaultAdminPIN) {
			return fmt.Errorf("in prod/release ADMIN_PIN must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}
