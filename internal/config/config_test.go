package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.ServerPort)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("unexpected default model %s", cfg.GeminiModel)
	}
	if cfg.ERPTimeout != 30*time.Second {
		t.Errorf("unexpected ERP timeout %s", cfg.ERPTimeout)
	}
	if cfg.RateLimitRequests != 60 {
		t.Errorf("unexpected rate limit %d", cfg.RateLimitRequests)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ERP_BASE_URL", "https://script.example/exec")
	t.Setenv("ERP_TIMEOUT", "5s")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("RATE_LIMIT_REQUESTS", "not-a-number")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.ServerPort)
	}
	if cfg.ERPBaseURL != "https://script.example/exec" {
		t.Errorf("unexpected ERP base URL %s", cfg.ERPBaseURL)
	}
	if cfg.ERPTimeout != 5*time.Second {
		t.Errorf("unexpected ERP timeout %s", cfg.ERPTimeout)
	}
	if !cfg.TracingEnabled {
		t.Error("expected tracing enabled")
	}
	if cfg.RateLimitRequests != 60 {
		t.Errorf("malformed int must fall back to the default, got %d", cfg.RateLimitRequests)
	}
}
