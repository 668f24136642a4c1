// Package config loads service settings from the environment.
// A .env file in the working directory is read first when present; real
// environment variables always win over it.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"5175"`
	AppEnv          string        `env:"APP_ENV" envDefault:"development"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	DatabasePath    string        `env:"DATABASE_PATH" envDefault:"./data/app.db"`
	JWTSecret       string        `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	JWTExpiresDays  int           `env:"JWT_EXPIRES_DAYS" envDefault:"14"`
	CookieName      string        `env:"COOKIE_NAME" envDefault:"wordle_token"`
	DailySalt       string        `env:"DAILY_SALT" envDefault:"local_dev_salt"`
	AnswersFile     string        `env:"WORDS_ANSWERS_FILE"`
	AllowedFile     string        `env:"WORDS_ALLOWED_FILE"`
	AdminKeyHash    string        `env:"ADMIN_KEY_HASH"`
	GameRows        int           `env:"GAME_ROWS" envDefault:"6"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	GameTTL         time.Duration `env:"GAME_TTL" envDefault:"24h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load reads .env (if any) and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse(env.Options{})
}

// Parse parses the environment with opts; tests pass Environment to isolate it.
func Parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that parse fine but cannot be served.
func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if c.JWTExpiresDays <= 0 {
		errs = append(errs, fmt.Errorf("JWT_EXPIRES_DAYS must be positive, got %d", c.JWTExpiresDays))
	}
	if c.GameRows <= 0 {
		errs = append(errs, fmt.Errorf("GAME_ROWS must be positive, got %d", c.GameRows))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("REQUEST_TIMEOUT must be positive"))
	}
	if c.GameTTL <= 0 {
		errs = append(errs, errors.New("GAME_TTL must be positive"))
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat))
	}
	if c.Production() && c.JWTSecret == "dev_secret_change_me" {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Production reports whether APP_ENV is "production".
func (c *Config) Production() bool { return strings.EqualFold(c.AppEnv, "production") }

// TokenTTL is the lifetime of issued player tokens.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiresDays) * 24 * time.Hour
}

// Addr is the listen address.
func (c *Config) Addr() string { return ":" + c.Port }
