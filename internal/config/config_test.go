package config

import (
	"testing"
	"time"
)

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	if _, err := Load(); err == nil {
		t.Fatal("Load accepted an empty token")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "taskmate.db" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.PublicBaseURL != "https://taskmate.app" {
		t.Errorf("PublicBaseURL = %q", cfg.PublicBaseURL)
	}
	if cfg.SweepInterval != time.Hour {
		t.Errorf("SweepInterval = %v", cfg.SweepInterval)
	}
	if cfg.DigestTime != "09:00" {
		t.Errorf("DigestTime = %q", cfg.DigestTime)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("SWEEP_INTERVAL", "15m")
	t.Setenv("PUBLIC_BASE_URL", "https://example.org")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SweepInterval != 15*time.Minute {
		t.Errorf("SweepInterval = %v", cfg.SweepInterval)
	}
	if cfg.PublicBaseURL != "https://example.org" {
		t.Errorf("PublicBaseURL = %q", cfg.PublicBaseURL)
	}
}
