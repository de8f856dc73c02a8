package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "")
	t.Setenv("RATE_LIMIT_WINDOW", "")
	t.Setenv("RATE_LIMIT_FAIL_OPEN", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("RESTAURANT_TIMEZONE", "")

	cfg := Load()

	if cfg.RateLimitMax != 3 {
		t.Errorf("RateLimitMax = %d, want 3", cfg.RateLimitMax)
	}
	if cfg.RateLimitWindow != 24*time.Hour {
		t.Errorf("RateLimitWindow = %v, want 24h", cfg.RateLimitWindow)
	}
	if cfg.RateLimitStoreTimeout != 2*time.Second {
		t.Errorf("RateLimitStoreTimeout = %v, want 2s", cfg.RateLimitStoreTimeout)
	}
	if cfg.RateLimitFailOpen {
		t.Error("RateLimitFailOpen should default to false")
	}
	if cfg.Timezone != "America/Toronto" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "1h")
	t.Setenv("RATE_LIMIT_FAIL_OPEN", "true")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ADMIN_EMAIL", "  Owner@Everest.ca ")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")

	cfg := Load()

	if cfg.RateLimitMax != 5 || cfg.RateLimitWindow != time.Hour || !cfg.RateLimitFailOpen {
		t.Errorf("rate limit config = %d %v %v", cfg.RateLimitMax, cfg.RateLimitWindow, cfg.RateLimitFailOpen)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.AdminEmail != "owner@everest.ca" {
		t.Errorf("AdminEmail = %q", cfg.AdminEmail)
	}
	if cfg.SMTPAddr() != "smtp.example.com:2525" {
		t.Errorf("SMTPAddr() = %q", cfg.SMTPAddr())
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "lots")
	t.Setenv("RATE_LIMIT_WINDOW", "-5m")
	t.Setenv("RATE_LIMIT_FAIL_OPEN", "maybe")

	cfg := Load()

	if cfg.RateLimitMax != 3 || cfg.RateLimitWindow != 24*time.Hour || cfg.RateLimitFailOpen {
		t.Errorf("fallbacks not applied: %d %v %v", cfg.RateLimitMax, cfg.RateLimitWindow, cfg.RateLimitFailOpen)
	}
}
