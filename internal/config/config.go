package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Arty-Facts/profilecard/internal/card"
	"github.com/Arty-Facts/profilecard/internal/render"
)

type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	ProfileFile   string        `env:"PROFILE_FILE"`
	Layout        string        `env:"LAYOUT" envDefault:"grid"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"60m"`
	RateLimit     int           `env:"RATE_LIMIT" envDefault:"500"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	StylesheetURL string        `env:"STYLESHEET_URL"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads configuration from the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StylesheetURL == "" {
		cfg.StylesheetURL = render.DefaultStylesheetURL
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := card.LayoutByName(c.Layout); err != nil {
		return fmt.Errorf("invalid LAYOUT: %w", err)
	}
	if c.RateLimit <= 0 {
		return errors.New("invalid RATE_LIMIT: must be positive")
	}
	if c.CacheTTL < 0 {
		return errors.New("invalid CACHE_TTL: must not be negative")
	}
	return nil
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
