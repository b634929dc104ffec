package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config keeps runtime settings for the bot.
type Config struct {
	TelegramToken string `env:"TELEGRAM_TOKEN"`
	DatabaseURL   string `env:"DATABASE_URL" envDefault:"taskmate.db"`

	// PublicBaseURL is the web origin invite links are built on,
	// e.g. https://taskmate.app.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"https://taskmate.app"`

	// MediaDir holds uploaded avatar images; files under it are served
	// publicly beneath PublicBaseURL.
	MediaDir string `env:"MEDIA_DIR" envDefault:"media"`

	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1h"`
	DigestTime    string        `env:"DIGEST_TIME" envDefault:"09:00"`
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TelegramToken == "" {
		return cfg, fmt.Errorf("TELEGRAM_TOKEN is required")
	}
	return cfg, nil
}
