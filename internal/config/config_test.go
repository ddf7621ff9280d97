package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "BACKEND_URL", "BACKEND_TIMEOUT", "SESSION_IDLE_TIMEOUT", "CONFIRM_PIN", "CORS_ORIGINS", "DATABASE_URL", "REDIS_ADDR", "COOKIE_SECURE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default HTTP_ADDR, got %s", cfg.HTTPAddr)
	}
	if cfg.SessionIdleTimeout != time.Hour {
		t.Fatalf("expected 1h idle timeout, got %s", cfg.SessionIdleTimeout)
	}
	if cfg.ConfirmPIN != "8496" {
		t.Fatalf("expected default PIN, got %s", cfg.ConfirmPIN)
	}
	if cfg.DatabaseURL != "" || cfg.RedisAddr != "" {
		t.Fatalf("expected optional stores to be disabled")
	}
	if cfg.CookieSecure {
		t.Fatalf("expected COOKIE_SECURE to default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":18080")
	t.Setenv("BACKEND_URL", "https://backend.example")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("SESSION_IDLE_TIMEOUT", "")
	t.Setenv("SESSION_IDLE_TIMEOUT_SECONDS", "900")
	t.Setenv("CONFIRM_PIN", "1234")
	t.Setenv("CORS_ORIGINS", "https://admin.example, https://trainer.example,")
	t.Setenv("ROSTER_ABORT_ON_ERROR", "true")
	t.Setenv("COOKIE_SECURE", "1")

	cfg := Load()
	if cfg.HTTPAddr != ":18080" {
		t.Fatalf("expected HTTP_ADDR override, got %s", cfg.HTTPAddr)
	}
	if cfg.BackendURL != "https://backend.example" {
		t.Fatalf("expected BACKEND_URL override, got %s", cfg.BackendURL)
	}
	if cfg.BackendTimeout != 5*time.Second {
		t.Fatalf("expected BACKEND_TIMEOUT 5s, got %s", cfg.BackendTimeout)
	}
	if cfg.SessionIdleTimeout != 15*time.Minute {
		t.Fatalf("expected SESSION_IDLE_TIMEOUT 15m, got %s", cfg.SessionIdleTimeout)
	}
	if cfg.ConfirmPIN != "1234" {
		t.Fatalf("expected CONFIRM_PIN override, got %s", cfg.ConfirmPIN)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://trainer.example" {
		t.Fatalf("unexpected CORS_ORIGINS: %v", cfg.CORSOrigins)
	}
	if !cfg.AbortOnError {
		t.Fatalf("expected ROSTER_ABORT_ON_ERROR true")
	}
	if !cfg.CookieSecure {
		t.Fatalf("expected COOKIE_SECURE true")
	}
}
